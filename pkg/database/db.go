package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"digicards/pkg/logging"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

const pingTimeout = 5 * time.Second

// Config describes how to reach the store. DSN wins over the discrete
// fields when set.
type Config struct {
	Driver       string
	DSN          string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	Path         string
	MaxOpenConns int
	QueryTimeout time.Duration
}

// Store hands out one connection per logical operation.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
	timeout time.Duration
	logger  *slog.Logger
}

// Open connects to the configured store and verifies it with a ping.
func Open(cfg Config, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dialect, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	dsn, err := cfg.dataSource()
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}
	switch {
	case cfg.Driver == DriverSQLite:
		// SQLite serializes writers anyway.
		db.SetMaxOpenConns(1)
	case cfg.MaxOpenConns > 0:
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		logger.Error("ping database failed", "driver", cfg.Driver, "error", err)
		return nil, fmt.Errorf("ping %s: %w: %w", cfg.Driver, ErrUnavailable, err)
	}

	return &Store{
		db:      db,
		dialect: dialect,
		timeout: cfg.QueryTimeout,
		logger:  logger,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Ping checks the store is reachable through the same path as every
// other operation.
func (s *Store) Ping(ctx context.Context) error {
	return s.Do(ctx, "store.ping", func(ctx context.Context, conn *sqlx.Conn) error {
		return conn.PingContext(ctx)
	})
}

// Do runs fn on a connection checked out for this call only and
// released before Do returns. The query timeout bounds the whole call.
// Errors come back classified as ErrNotFound, ErrConflict or
// ErrUnavailable, prefixed with op.
func (s *Store) Do(ctx context.Context, op string, fn func(ctx context.Context, conn *sqlx.Conn) error) error {
	ql := logging.NewQueryLogger(s.logger, op)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	conn, err := s.db.Connx(ctx)
	if err != nil {
		err = fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
		ql.Log(err)
		return err
	}
	defer conn.Close()

	err = classify(op, fn(ctx, conn))
	if errors.Is(err, ErrUnavailable) {
		ql.Log(err)
	} else {
		ql.Log(nil)
	}
	return err
}

func (c Config) dataSource() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		return c.mysqlDSN()
	case DriverPostgres:
		return c.postgresDSN()
	case DriverSQLite:
		if c.DSN != "" {
			return c.DSN, nil
		}
		path := c.Path
		if path == "" {
			path = "./data/digicards.db"
		}
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=%d", path, c.timeoutMillis()), nil
	}
	return "", fmt.Errorf("unsupported driver %q", c.Driver)
}

func (c Config) mysqlDSN() (string, error) {
	var mc *mysql.Config
	if c.DSN != "" {
		parsed, err := mysql.ParseDSN(c.DSN)
		if err != nil {
			return "", fmt.Errorf("parse mysql dsn: %w", err)
		}
		mc = parsed
	} else {
		if c.Host == "" || c.User == "" || c.Name == "" {
			return "", errors.New("DB_HOST, DB_USER and DB_NAME are required")
		}
		mc = mysql.NewConfig()
		mc.User = c.User
		mc.Passwd = c.Password
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.Host, orDefault(c.Port, "3306"))
		mc.DBName = c.Name
		mc.Timeout = pingTimeout
		mc.ReadTimeout = c.QueryTimeout
		mc.WriteTimeout = c.QueryTimeout
	}
	mc.ParseTime = true
	// An UPDATE that sets the same quantity still reports the matched row.
	mc.ClientFoundRows = true
	return mc.FormatDSN(), nil
}

func (c Config) postgresDSN() (string, error) {
	if c.DSN != "" {
		return c.DSN, nil
	}
	if c.Host == "" || c.User == "" || c.Name == "" {
		return "", errors.New("DB_HOST, DB_USER and DB_NAME are required")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, orDefault(c.Port, "5432")),
		Path:   "/" + c.Name,
	}
	q := url.Values{}
	q.Set("sslmode", orDefault(c.SSLMode, "require"))
	if ms := c.timeoutMillis(); ms > 0 {
		q.Set("statement_timeout", strconv.FormatInt(ms, 10))
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c Config) timeoutMillis() int64 {
	if c.QueryTimeout <= 0 {
		return 5000
	}
	return c.QueryTimeout.Milliseconds()
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
