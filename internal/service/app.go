// README: Application wiring; builds the catalog, pricing strategy and selection store from config.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"wasalny/internal/config"
	"wasalny/internal/infra"
	"wasalny/internal/modules/booking"
	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
)

// App holds the long-lived services shared by the API and the CLI.
type App struct {
	Catalog *catalog.Catalog
	Pricing *pricing.Service
	Booking booking.Deps

	redis *redis.Client
}

func NewApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cat, err := LoadCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return newApp(ctx, cfg, cat, cfg.Pricing.Strategy, logger)
}

// WithStrategy returns an App over the same catalog priced by another
// strategy. The selection store is shared.
func (a *App) WithStrategy(name string, cfg config.Config) (*App, error) {
	s, err := pricing.NewStrategy(name, a.Catalog, strategyOptions(cfg))
	if err != nil {
		return nil, err
	}
	b := *a
	b.Pricing = pricing.NewService(s, a.Booking.Logger)
	b.Booking.Env.Strategy = s
	return &b, nil
}

func newApp(ctx context.Context, cfg config.Config, cat *catalog.Catalog, strategy string, logger *zap.Logger) (*App, error) {
	opts := strategyOptions(cfg)
	s, err := pricing.NewStrategy(strategy, cat, opts)
	if err != nil {
		return nil, err
	}

	app := &App{
		Catalog: cat,
		Pricing: pricing.NewService(s, logger),
		Booking: booking.Deps{
			Env:    booking.Env{Catalog: cat, Strategy: s, Location: opts.Location},
			Logger: logger,
		},
	}

	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured; booking selections kept in memory")
		app.Booking.Store = booking.NewMemoryStore()
		return app, nil
	}
	app.redis = infra.NewRedis(cfg.Redis.Addr)
	if err := infra.PingRedis(ctx, app.redis); err != nil {
		app.redis.Close()
		return nil, err
	}
	app.Booking.Store = booking.NewRedisStore(app.redis, cfg.Booking.PersistKey, cfg.Redis.TTL)
	return app, nil
}

func strategyOptions(cfg config.Config) pricing.Options {
	return pricing.Options{
		Location:            cfg.Location(),
		EnforceStackability: cfg.Pricing.EnforceStackability,
	}
}

func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	return a.redis.Close()
}

// LoadCatalog reads the catalog from the configured source. The postgres
// source fills calendar, services, discounts and settings from the built-in
// data.
func LoadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	switch cfg.Catalog.Source {
	case config.SourceBuiltin, "":
		return catalog.Default(), nil
	case config.SourceFile:
		return catalog.LoadFile(cfg.Catalog.File)
	case config.SourcePostgres:
		db, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return catalog.NewStore(db).Load(ctx, catalog.DefaultData())
	default:
		return nil, fmt.Errorf("service: %w: %q", errUnknownSource, cfg.Catalog.Source)
	}
}

var errUnknownSource = errors.New("unknown catalog source")
