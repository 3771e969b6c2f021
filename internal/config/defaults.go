package config

import "github.com/xgrid/ambassador-map/internal/embed"

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".ambassador-map.yml"

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: AMBASSADOR_MAP_SERVER__PORT sets server.port.
const EnvPrefix = "AMBASSADOR_MAP_"

// DefaultExcludes are glob patterns never published from the public dir.
var DefaultExcludes = []string{
	"**/*.map",
	"**/.gitkeep",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           3000,
			AllowedOrigins: []string{"*"},
			FrameAncestors: []string{"*"},
		},
		Embed: EmbedConfig{
			ContainerID:    embed.DefaultContainerID,
			FallbackOrigin: embed.DefaultFallbackOrigin,
			DefaultWidth:   embed.DefaultWidth,
			DefaultHeight:  embed.DefaultHeight,
			Title:          embed.DefaultTitle,
		},
		Public: PublicConfig{
			Dir:     "public",
			Include: []string{"**"},
			Exclude: append([]string(nil), DefaultExcludes...),
		},
		ThemeFile: "theme.yml",
		OutputDir: "dist",
		LogLevel:  "info",
	}
}
