package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"go.uber.org/zap/zaptest"

	"wasalny/internal/config"
	"wasalny/internal/modules/booking"
	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
)

func baseConfig() config.Config {
	var cfg config.Config
	cfg.Catalog.Source = config.SourceBuiltin
	cfg.Pricing.Strategy = pricing.StrategyFixed
	cfg.Pricing.Timezone = "UTC"
	cfg.Booking.PersistKey = booking.DefaultPersistKey
	return cfg
}

func TestNewApp_MemoryStore(t *testing.T) {
	app, err := NewApp(context.Background(), baseConfig(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	if _, ok := app.Booking.Store.(*booking.MemoryStore); !ok {
		t.Errorf("store = %T, want *booking.MemoryStore", app.Booking.Store)
	}
	if app.Pricing.Strategy().Name() != pricing.StrategyFixed || app.Booking.Env.Strategy.Name() != pricing.StrategyFixed {
		t.Errorf("strategy not wired")
	}

	dyn, err := app.WithStrategy(pricing.StrategyDynamic, baseConfig())
	if err != nil {
		t.Fatal(err)
	}
	if dyn.Pricing.Strategy().Name() != pricing.StrategyDynamic || app.Pricing.Strategy().Name() != pricing.StrategyFixed {
		t.Error("WithStrategy changed the original app")
	}
}

func TestNewApp_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := baseConfig()
	cfg.Redis.Addr = mr.Addr()

	app, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	if _, ok := app.Booking.Store.(*booking.RedisStore); !ok {
		t.Errorf("store = %T, want *booking.RedisStore", app.Booking.Store)
	}

	mr.Close()
	if _, err := NewApp(context.Background(), cfg, zaptest.NewLogger(t)); err == nil {
		t.Error("NewApp() with unreachable redis succeeded")
	}
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := catalog.Default().WriteYAML(f); err != nil {
		t.Fatal(err)
	}
	f.Close()

	tests := []struct {
		name    string
		source  string
		file    string
		wantErr bool
	}{
		{"builtin", config.SourceBuiltin, "", false},
		{"file", config.SourceFile, path, false},
		{"missing file", config.SourceFile, filepath.Join(dir, "none.yaml"), true},
		{"unknown source", "s3", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Catalog.Source = tt.source
			cfg.Catalog.File = tt.file
			cat, err := LoadCatalog(context.Background(), cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadCatalog() error = %v", err)
			}
			if err == nil && len(cat.Locations()) != 20 {
				t.Errorf("locations = %d", len(cat.Locations()))
			}
		})
	}
}

func TestNewApp_UnknownStrategy(t *testing.T) {
	cfg := baseConfig()
	cfg.Pricing.Strategy = "surge"
	if _, err := NewApp(context.Background(), cfg, nil); err == nil {
		t.Error("NewApp() accepted an unknown strategy")
	}
}
