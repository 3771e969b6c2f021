package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Embed.ContainerID != "xgrid-ambassador-map" {
		t.Errorf("expected default container id, got %q", cfg.Embed.ContainerID)
	}
	if cfg.Embed.FallbackOrigin != "https://main.d3d9zn9ueor3c9.amplifyapp.com" {
		t.Errorf("expected default fallback origin, got %q", cfg.Embed.FallbackOrigin)
	}
	if cfg.Embed.DefaultWidth != "100%" || cfg.Embed.DefaultHeight != "800px" {
		t.Errorf("expected 100%%/800px, got %s/%s", cfg.Embed.DefaultWidth, cfg.Embed.DefaultHeight)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.ambassador-map.yml")

	original := DefaultConfig()
	original.Server.Port = 8088
	original.Server.FrameAncestors = []string{"'self'", "https://dealer.example.com"}
	original.Embed.FallbackOrigin = "https://maps.example.com"
	original.Public.Include = []string{"**/*.png", "**/*.svg"}
	original.OutputDir = "out"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 8088 {
		t.Errorf("port: got %d, want 8088", loaded.Server.Port)
	}
	if loaded.Embed.FallbackOrigin != original.Embed.FallbackOrigin {
		t.Errorf("fallback_origin: got %q, want %q", loaded.Embed.FallbackOrigin, original.Embed.FallbackOrigin)
	}
	if loaded.OutputDir != "out" {
		t.Errorf("output_dir: got %q", loaded.OutputDir)
	}
	if len(loaded.Server.FrameAncestors) != 2 || loaded.Server.FrameAncestors[1] != "https://dealer.example.com" {
		t.Errorf("frame_ancestors: got %v", loaded.Server.FrameAncestors)
	}
	if len(loaded.Public.Include) != 2 {
		t.Errorf("include: got %v", loaded.Public.Include)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yml"))
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yml")
	if err := os.WriteFile(path, []byte("embed:\n  default_height: 600px\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Embed.DefaultHeight != "600px" {
		t.Errorf("default_height = %q", cfg.Embed.DefaultHeight)
	}
	if cfg.Embed.DefaultWidth != "100%" {
		t.Errorf("default_width should keep its default, got %q", cfg.Embed.DefaultWidth)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("AMBASSADOR_MAP_SERVER__PORT", "9090")
	t.Setenv("AMBASSADOR_MAP_LOG_LEVEL", "debug")
	t.Setenv("AMBASSADOR_MAP_EMBED__FALLBACK_ORIGIN", "https://staging.example.com")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("env override failed: port %d", loaded.Server.Port)
	}
	if loaded.LogLevel != "debug" {
		t.Errorf("env override failed: log_level %q", loaded.LogLevel)
	}
	if loaded.Embed.FallbackOrigin != "https://staging.example.com" {
		t.Errorf("env override failed: fallback_origin %q", loaded.Embed.FallbackOrigin)
	}
}

func TestValidateValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"allowed origin with path", func(c *Config) { c.Server.AllowedOrigins = []string{"https://a.example.com/x"} }},
		{"frame ancestor with separator", func(c *Config) { c.Server.FrameAncestors = []string{"a; script-src *"} }},
		{"container id with space", func(c *Config) { c.Embed.ContainerID = "my map" }},
		{"fallback with path", func(c *Config) { c.Embed.FallbackOrigin = "https://maps.example.com/app" }},
		{"fallback not http", func(c *Config) { c.Embed.FallbackOrigin = "ftp://maps.example.com" }},
		{"unitless width", func(c *Config) { c.Embed.DefaultWidth = "100" }},
		{"bad height", func(c *Config) { c.Embed.DefaultHeight = "tall" }},
		{"blank title", func(c *Config) { c.Embed.Title = " " }},
		{"bad include", func(c *Config) { c.Public.Include = []string{"[oops"} }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"bad log level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEmbedOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Embed.Title = "Dealers"
	opts := cfg.EmbedOptions()
	if opts.Title != "Dealers" || opts.ContainerID != cfg.Embed.ContainerID {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("level = %v", cfg.SlogLevel())
	}
	cfg.LogLevel = "nonsense"
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("unknown level should map to info, got %v", cfg.SlogLevel())
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" https://a.example.com, ,https://b.example.com ")
	if len(got) != 2 || got[0] != "https://a.example.com" || got[1] != "https://b.example.com" {
		t.Errorf("splitAndTrim = %v", got)
	}
}
