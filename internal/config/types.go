package config

// Config is the top-level configuration, corresponding to .ambassador-map.yml.
type Config struct {
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Embed     EmbedConfig  `yaml:"embed" koanf:"embed"`
	Public    PublicConfig `yaml:"public" koanf:"public"`
	ThemeFile string       `yaml:"theme_file" koanf:"theme_file"`
	OutputDir string       `yaml:"output_dir" koanf:"output_dir"`
	LogLevel  string       `yaml:"log_level" koanf:"log_level"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port" koanf:"port"`
	// AllowedOrigins limits which origins may fetch the script and theme
	// with CORS. "*" allows any.
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
	// FrameAncestors is sent as the CSP frame-ancestors list so third-party
	// pages may frame the map.
	FrameAncestors []string `yaml:"frame_ancestors" koanf:"frame_ancestors"`
}

// EmbedConfig holds the widget defaults baked into embed.js.
type EmbedConfig struct {
	ContainerID    string `yaml:"container_id" koanf:"container_id"`
	FallbackOrigin string `yaml:"fallback_origin" koanf:"fallback_origin"`
	DefaultWidth   string `yaml:"default_width" koanf:"default_width"`
	DefaultHeight  string `yaml:"default_height" koanf:"default_height"`
	Title          string `yaml:"title" koanf:"title"`
}

// PublicConfig selects static files published next to the page.
type PublicConfig struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}
