package config

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/xgrid/ambassador-map/internal/embed"
	"github.com/xgrid/ambassador-map/internal/walker"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (AMBASSADOR_MAP_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// AMBASSADOR_MAP_SERVER__PORT -> server.port
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels maps recognized log_level values to slog levels.
var validLogLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var (
	elementID = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_:.-]*$`)
	cssLength = regexp.MustCompile(`^\d+(\.\d+)?(px|rem|em|%|vh|vw)$`)
)

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	for _, o := range c.Server.AllowedOrigins {
		if o != "*" && embed.ResolveOrigin(o, "") != o {
			return fmt.Errorf("server.allowed_origins: %q is not an origin", o)
		}
	}
	for _, a := range c.Server.FrameAncestors {
		if strings.TrimSpace(a) == "" || strings.ContainsAny(a, ";,") {
			return fmt.Errorf("server.frame_ancestors: invalid source %q", a)
		}
	}

	if !elementID.MatchString(c.Embed.ContainerID) {
		return fmt.Errorf("embed.container_id %q is not a valid element id", c.Embed.ContainerID)
	}
	if embed.ResolveOrigin(c.Embed.FallbackOrigin, "") != c.Embed.FallbackOrigin {
		return fmt.Errorf("embed.fallback_origin %q must be a bare http(s) origin", c.Embed.FallbackOrigin)
	}
	if !cssLength.MatchString(c.Embed.DefaultWidth) {
		return fmt.Errorf("embed.default_width %q is not a CSS length", c.Embed.DefaultWidth)
	}
	if !cssLength.MatchString(c.Embed.DefaultHeight) {
		return fmt.Errorf("embed.default_height %q is not a CSS length", c.Embed.DefaultHeight)
	}
	if strings.TrimSpace(c.Embed.Title) == "" {
		return fmt.Errorf("embed.title is required")
	}

	if err := walker.ValidatePatterns(c.Public.Include); err != nil {
		return fmt.Errorf("public.include: %w", err)
	}
	if err := walker.ValidatePatterns(c.Public.Exclude); err != nil {
		return fmt.Errorf("public.exclude: %w", err)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if _, ok := validLogLevels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	return nil
}

// EmbedOptions converts the embed section to widget options.
func (c *Config) EmbedOptions() embed.Options {
	return embed.Options{
		ContainerID:    c.Embed.ContainerID,
		FallbackOrigin: c.Embed.FallbackOrigin,
		DefaultWidth:   c.Embed.DefaultWidth,
		DefaultHeight:  c.Embed.DefaultHeight,
		Title:          c.Embed.Title,
	}
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := validLogLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelInfo
}
