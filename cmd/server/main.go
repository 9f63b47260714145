package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"digicards/internal/api"
	"digicards/internal/card"
	"digicards/internal/collection"
	"digicards/internal/config"
	"digicards/internal/deck"
	"digicards/internal/reference"
	"digicards/pkg/database"
	"digicards/pkg/logging"
)

func main() {
	migrate := flag.Bool("migrate", false, "create missing tables before serving")
	seedPath := flag.String("seed", "", "catalog JSON to load before serving (overrides SEED_PATH)")
	flag.Parse()

	bootLog := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// .env is optional; values already in the environment win.
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = ".env"
	}
	if err := config.LoadDotenv(envPath); err != nil {
		bootLog.Debug("no .env loaded", "path", envPath, "error", err)
	} else {
		bootLog.Info(".env loaded", "path", envPath)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		bootLog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		bootLog.Error("init logger failed", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, logger, *migrate, *seedPath); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger, migrate bool, seedPath string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DB.Driver == database.DriverSQLite && cfg.DB.Path == "" && cfg.DB.DSN == "" {
		if err := os.MkdirAll("./data", 0o755); err != nil {
			return err
		}
	}

	store, err := database.Open(cfg.Database(), logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if seedPath == "" {
		seedPath = cfg.SeedPath
	}
	if migrate || seedPath != "" {
		if err := store.Migrate(ctx); err != nil {
			return err
		}
	}
	if seedPath != "" {
		catalog, err := database.LoadCatalogFromJSON(seedPath)
		if err != nil {
			return err
		}
		n, err := store.Seed(ctx, catalog)
		if err != nil {
			return err
		}
		logger.Info("catalog seeded", "path", seedPath, "rows", n)
	}

	keys := cfg.Keys()
	if keys.Empty() {
		logger.Warn("no API_KEY, API_KEY_HASH or JWT_SECRET configured; every request will be refused")
	}

	gin.SetMode(cfg.HTTP.GinMode)
	router := api.NewRouter(api.Deps{
		Cards:      card.NewRepo(store),
		References: reference.NewRepo(store),
		Collection: collection.NewRepo(store),
		Decks:      deck.NewRepo(store),
		Store:      store,
	}, keys, logger)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("HTTP API listening", "addr", cfg.HTTP.Addr, "driver", cfg.DB.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout.Duration)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
