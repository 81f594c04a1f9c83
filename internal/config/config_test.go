package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.Catalog.Source != SourceBuiltin || cfg.Pricing.Strategy != "fixed" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Booking.PersistKey != "wasalny_pricing_v1" || cfg.Redis.TTL != 30*24*time.Hour {
		t.Errorf("booking/redis defaults = %+v %+v", cfg.Booking, cfg.Redis)
	}
	if cfg.Location().String() != "Africa/Cairo" {
		t.Errorf("Location() = %s", cfg.Location())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WASALNY_HTTP_ADDR", ":9090")
	t.Setenv("WASALNY_PRICING_STRATEGY", "dynamic")
	t.Setenv("WASALNY_PRICING_ENFORCE_STACKABILITY", "true")
	t.Setenv("WASALNY_REDIS_TTL", "2h")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.Pricing.Strategy != "dynamic" || !cfg.Pricing.EnforceStackability || cfg.Redis.TTL != 2*time.Hour {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "custom.yaml")
	body := "catalog:\n  source: file\n  file: catalog.yaml\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Catalog.Source != SourceFile || cfg.Catalog.File != "catalog.yaml" || cfg.Log.Level != "debug" {
		t.Errorf("file values not applied: %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("explicit missing config file accepted")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown catalog source", map[string]string{"WASALNY_CATALOG_SOURCE": "s3"}},
		{"file source without a file", map[string]string{"WASALNY_CATALOG_SOURCE": "file"}},
		{"bad timezone", map[string]string{"WASALNY_PRICING_TIMEZONE": "Mars/Olympus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := Load(""); err == nil {
				t.Error("Load() accepted invalid configuration")
			}
		})
	}
}
