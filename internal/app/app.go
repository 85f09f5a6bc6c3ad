package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/newsroom/config"
	"github.com/daniilsolovey/newsroom/internal/analytics"
	"github.com/daniilsolovey/newsroom/internal/db"
	"github.com/daniilsolovey/newsroom/internal/newsportal"
	"github.com/daniilsolovey/newsroom/internal/rest"
	"github.com/daniilsolovey/newsroom/internal/rpc"
	"github.com/daniilsolovey/newsroom/internal/search"
	"github.com/daniilsolovey/newsroom/internal/storage"
)

// SystemActor signs changes the service makes on its own, like seeding defaults.
const SystemActor = "system"

type App struct {
	DB       *db.Repository
	Logger   *slog.Logger
	Echo     *echo.Echo
	RPC      *zenrpc.Server
	Config   *config.Config
	Featured *newsportal.FeaturedManager

	redis *redis.Client
}

func New(ctx context.Context, cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	if cfg.Database.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}
	repo := db.New(dbConnect)

	objects, err := storage.New(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	redisClient, err := analytics.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	var (
		indexer  newsportal.Indexer
		searcher newsportal.Searcher
	)
	if cfg.Search.URL != "" {
		meili := search.NewMeili(cfg.Search.URL, cfg.Search.APIKey, logger)
		indexer, searcher = meili, meili
	} else {
		logger.Warn("search is disabled, no search url configured")
	}

	managers := rest.Managers{
		News:       newsportal.NewNewsManager(repo, indexer, logger),
		Featured:   newsportal.NewFeaturedManager(repo, logger),
		Categories: newsportal.NewCategoryManager(repo, logger),
		Tags:       newsportal.NewTagManager(repo, logger),
		Banners:    newsportal.NewBannerManager(repo, analytics.NewBannerCounter(redisClient), logger),
		Media:      newsportal.NewMediaManager(repo, objects, logger),
		Users:      newsportal.NewUserManager(repo, logger),
		Settings:   newsportal.NewSettingsManager(repo, logger),
		Roadmap:    newsportal.NewRoadmapManager(newsportal.RoadmapRepo{Repository: repo}, logger),
		Newsletter: newsportal.NewNewsletterManager(repo, logger),
		Search:     newsportal.NewSearchManager(searcher),
	}

	handler := rest.NewHandler(managers, repo, logger)
	e := handler.RegisterRoutes()

	rpcServer := rpc.New(logger, managers.News, managers.Categories, managers.Tags, managers.Featured)
	e.Any("/v1/rpc/", echo.WrapHandler(rpc.WithActor(rpcServer)))

	return &App{
		DB:       repo,
		Logger:   logger,
		Echo:     e,
		RPC:      rpcServer,
		Config:   cfg,
		Featured: managers.Featured,
		redis:    redisClient,
	}, nil
}

// Seed creates data the public pages expect to exist.
func (a *App) Seed(ctx context.Context) {
	created, err := a.Featured.EnsureDefault(ctx, SystemActor)
	if err != nil {
		a.Logger.WarnContext(ctx, "failed to seed featured news", "error", err)
		return
	}
	if created {
		a.Logger.InfoContext(ctx, "featured news seeded with the latest news")
	}
}

func (a *App) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "service starting", "addr", addr)

	err := a.Echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}

	if rerr := a.redis.Close(); rerr != nil {
		err = errors.Join(err, fmt.Errorf("close redis: %w", rerr))
	}
	if derr := a.DB.Close(); derr != nil {
		err = errors.Join(err, fmt.Errorf("close database: %w", derr))
	}

	return err
}
