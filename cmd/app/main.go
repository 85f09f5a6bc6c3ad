package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/newsroom/config"
	"github.com/daniilsolovey/newsroom/docs"
	"github.com/daniilsolovey/newsroom/internal/app"
	"github.com/daniilsolovey/newsroom/internal/db"
)

var (
	flConfig    = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug     = flag.Bool("debug", false, "enable debug mode")
	flMigrate   = flag.Bool("migrate", false, "apply database migrations before start")
	flEnv       = flag.String("env", "", "environment name, overrides Env from the config file (ENV)")
	flDatabase  = flag.String("database-url", "", "postgres connection URL (DATABASE_URL)")
	flRedis     = flag.String("redis-url", "", "redis connection URL (REDIS_URL)")
	flAccessKey = flag.String("storage-access-key", "", "object storage access key (STORAGE_ACCESS_KEY)")
	flSecretKey = flag.String("storage-secret-key", "", "object storage secret key (STORAGE_SECRET_KEY)")
	flSearchURL = flag.String("search-url", "", "meilisearch URL, empty disables search (SEARCH_URL)")
	flSearchKey = flag.String("search-api-key", "", "search api key (SEARCH_API_KEY)")
	cfg         config.Config
	lg          *slog.Logger
)

// @title Newsroom API
// @version 1.0
// @description News portal reading and editorial API
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	exitOnError(err)
	applyOverrides(&cfg)

	warnings, err := cfg.Validate()
	exitOnError(err)
	for _, w := range warnings {
		lg.Warn("insecure configuration", "env", cfg.Env, "problem", w)
	}

	ctx := context.Background()

	if *flMigrate {
		if err := db.Migrate(ctx, cfg.Database.ConnString(), docs.Patches, "patches"); err != nil {
			exitOnError(err)
		}
		lg.Info("migrations applied")
	}

	dbc := pg.Connect(&cfg.Database.Options)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service, err := app.New(ctx, &cfg, dbc, lg)
	if err != nil {
		dbc.Close()
		exitOnError(err)
	}
	service.Seed(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

// applyOverrides lets flags and environment replace credentials from the config file.
func applyOverrides(c *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&c.Env, *flEnv)
	set(&c.Database.URL, *flDatabase)
	set(&c.Redis.URL, *flRedis)
	set(&c.Storage.AccessKey, *flAccessKey)
	set(&c.Storage.SecretKey, *flSecretKey)
	set(&c.Search.URL, *flSearchURL)
	set(&c.Search.APIKey, *flSearchKey)
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
