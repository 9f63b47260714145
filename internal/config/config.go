package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"digicards/internal/auth"
	"digicards/pkg/database"
)

// Duration reads "5s"-style values from TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type Config struct {
	HTTP     HTTPConfig `toml:"http"`
	DB       DBConfig   `toml:"db"`
	Auth     AuthConfig `toml:"auth"`
	Log      LogConfig  `toml:"log"`
	SeedPath string     `toml:"seed_path"`
}

type HTTPConfig struct {
	Addr            string   `toml:"addr"`
	GinMode         string   `toml:"gin_mode"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

type DBConfig struct {
	Driver       string   `toml:"driver"`
	DSN          string   `toml:"dsn"`
	Host         string   `toml:"host"`
	Port         string   `toml:"port"`
	User         string   `toml:"user"`
	Password     string   `toml:"password"`
	Name         string   `toml:"name"`
	SSLMode      string   `toml:"sslmode"`
	Path         string   `toml:"path"`
	MaxOpenConns int      `toml:"max_open_conns"`
	QueryTimeout Duration `toml:"query_timeout"`
}

type AuthConfig struct {
	APIKey     string `toml:"api_key"`
	APIKeyHash string `toml:"api_key_hash"`
	JWTSecret  string `toml:"jwt_secret"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Addr:            ":8000",
			GinMode:         "release",
			ShutdownTimeout: Duration{10 * time.Second},
		},
		DB: DBConfig{
			Driver:       database.DriverMySQL,
			QueryTimeout: Duration{5 * time.Second},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// LoadDotenv copies the keys of the .env file at path into the process
// environment. Variables that are already set keep their value.
func LoadDotenv(path string) error {
	return godotenv.Load(path)
}

// Load layers the TOML file at path (skipped when it does not exist)
// and then the process environment over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("open config: %w", err)
		default:
			defer f.Close()
			if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
				return Config{}, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	str := map[string]*string{
		"HTTP_ADDR":    &c.HTTP.Addr,
		"GIN_MODE":     &c.HTTP.GinMode,
		"DB_DRIVER":    &c.DB.Driver,
		"DB_DSN":       &c.DB.DSN,
		"DB_HOST":      &c.DB.Host,
		"DB_PORT":      &c.DB.Port,
		"DB_USER":      &c.DB.User,
		"DB_PASSWORD":  &c.DB.Password,
		"DB_NAME":      &c.DB.Name,
		"DB_SSLMODE":   &c.DB.SSLMode,
		"DB_PATH":      &c.DB.Path,
		"API_KEY":      &c.Auth.APIKey,
		"API_KEY_HASH": &c.Auth.APIKeyHash,
		"JWT_SECRET":   &c.Auth.JWTSecret,
		"LOG_LEVEL":    &c.Log.Level,
		"LOG_FORMAT":   &c.Log.Format,
		"SEED_PATH":    &c.SeedPath,
	}
	for key, dst := range str {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	durations := map[string]*Duration{
		"QUERY_TIMEOUT":    &c.DB.QueryTimeout,
		"SHUTDOWN_TIMEOUT": &c.HTTP.ShutdownTimeout,
	}
	for key, dst := range durations {
		if v := os.Getenv(key); v != "" {
			if err := dst.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
	}

	if v := os.Getenv("DB_MAX_OPEN_CONNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DB_MAX_OPEN_CONNS: %w", err)
		}
		c.DB.MaxOpenConns = n
	}
	return nil
}

func (c Config) Validate() error {
	switch c.DB.Driver {
	case database.DriverMySQL, database.DriverPostgres:
		if c.DB.DSN == "" && (c.DB.Host == "" || c.DB.User == "" || c.DB.Name == "") {
			return fmt.Errorf("%s needs DB_DSN or DB_HOST, DB_USER and DB_NAME", c.DB.Driver)
		}
	case database.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	switch c.HTTP.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported GIN_MODE %q", c.HTTP.GinMode)
	}
	if c.DB.QueryTimeout.Duration <= 0 {
		return errors.New("QUERY_TIMEOUT must be positive")
	}
	if c.DB.MaxOpenConns < 0 {
		return errors.New("DB_MAX_OPEN_CONNS must not be negative")
	}
	return nil
}

func (c Config) Database() database.Config {
	return database.Config{
		Driver:       c.DB.Driver,
		DSN:          c.DB.DSN,
		Host:         c.DB.Host,
		Port:         c.DB.Port,
		User:         c.DB.User,
		Password:     c.DB.Password,
		Name:         c.DB.Name,
		SSLMode:      c.DB.SSLMode,
		Path:         c.DB.Path,
		MaxOpenConns: c.DB.MaxOpenConns,
		QueryTimeout: c.DB.QueryTimeout.Duration,
	}
}

func (c Config) Keys() auth.Keys {
	return auth.Keys{
		APIKey:     c.Auth.APIKey,
		APIKeyHash: c.Auth.APIKeyHash,
		JWTSecret:  c.Auth.JWTSecret,
	}
}
