package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"womenhub/internal/assistant"
	"womenhub/internal/cache"
	"womenhub/internal/catalog"
	"womenhub/internal/config"
	"womenhub/internal/database"
	"womenhub/internal/events"
	handlers "womenhub/internal/handler"
	"womenhub/internal/repository"
	"womenhub/internal/service"
	"womenhub/internal/storage"
)

// App holds every long-lived dependency of the API process.
type App struct {
	Cfg       *config.Config
	Logger    *zap.Logger
	DB        *database.DB
	Repo      *repository.Repository
	Cache     cache.Cache
	Publisher events.Publisher
	Assistant *assistant.Assistant
	Services  *service.Service
	Handlers  *handlers.Handlers
}

// New wires the application. Only an unusable assistant configuration or an
// invalid catalog is fatal; a missing database, cache, object store or broker
// leaves the process running in a degraded mode.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Cfg: cfg, Logger: logger}

	gen, err := assistant.NewGenerator(ctx, cfg.AI)
	if err != nil {
		var cfgErr *assistant.ConfigError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		logger.Warn("assistant provider unavailable, serving fallback responses", zap.Error(err))
		gen = nil
	}
	a.Assistant = assistant.New(gen, cfg.AI, logger)

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	a.DB, a.Repo = openRepository(ctx, cfg, logger)
	a.Cache = openCache(ctx, cfg, logger)
	a.Publisher = events.NewPublisher(cfg.Kafka, logger)

	loader := cache.NewLoader(a.Cache, cfg.Cache.TTL, logger.Named("cache"))
	a.Services = service.NewService(a.Repo, cfg, loader, a.Publisher, openStorage(ctx, cfg, logger), logger)
	a.Handlers = handlers.NewHandlers(a.Services, a.Assistant, cat, cfg, logger)

	logger.Info("application wired",
		zap.Bool("database", a.DB != nil),
		zap.String("assistant", a.Assistant.Mode()),
		zap.String("model", a.Assistant.Model()),
	)
	return a, nil
}

func openRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*database.DB, *repository.Repository) {
	db, err := database.Open(ctx, cfg.DB, logger)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			logger.Warn("no database configured, reads return empty lists and writes are refused")
		} else {
			logger.Error("database unreachable, running without persistence", zap.Error(err))
		}
		return nil, repository.NewOffline()
	}
	return db, repository.NewRepository(db)
}

func openCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) cache.Cache {
	if cfg.Redis.Addr != "" {
		r, err := cache.NewRedis(ctx, cfg.Redis)
		if err == nil {
			logger.Info("using redis cache", zap.String("addr", cfg.Redis.Addr))
			return r
		}
		logger.Warn("redis unreachable, using in-memory cache", zap.Error(err))
	}
	return cache.NewMemory(cfg.Cache.MaxEntries, 0)
}

// openStorage returns nil when no object store is usable; story image uploads
// then answer 503.
func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) storage.Storage {
	if cfg.MinIO.Endpoint == "" {
		logger.Info("MINIO_ENDPOINT not set, story image uploads disabled")
		return nil
	}
	client, err := storage.NewMinIOClient(ctx, cfg.MinIO, cfg.MaxUploadSize)
	if err != nil {
		logger.Error("object storage unavailable, story image uploads disabled", zap.Error(err))
		return nil
	}
	return client
}

// Close releases dependencies in reverse order of creation.
func (a *App) Close() error {
	var errs []error
	if a.Publisher != nil {
		errs = append(errs, a.Publisher.Close())
	}
	if a.Cache != nil {
		errs = append(errs, a.Cache.Close())
	}
	if a.DB != nil {
		errs = append(errs, a.DB.CloseDB())
	}
	return errors.Join(errs...)
}
