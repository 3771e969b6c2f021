package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/xgrid/ambassador-map/internal/config"
	"github.com/xgrid/ambassador-map/internal/site"
	"github.com/xgrid/ambassador-map/internal/theme"
	"github.com/xgrid/ambassador-map/internal/walker"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `ambassador-map init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// setupLogger installs the process-wide slog logger.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// buildBundle loads the theme file and renders every generated file.
func buildBundle(cfg *config.Config, render site.RenderOptions) (*site.Bundle, error) {
	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		return nil, fmt.Errorf("loading theme: %w", err)
	}
	b, err := site.Build(site.BuildOptions{
		Page:   site.DefaultPage(),
		Theme:  th,
		Embed:  cfg.EmbedOptions(),
		Render: render,
	})
	if err != nil {
		return nil, fmt.Errorf("building site: %w", err)
	}
	return b, nil
}

// walkPublic selects the public assets published next to the generated files.
func walkPublic(cfg *config.Config) ([]walker.Asset, error) {
	assets, err := walker.Walk(walker.Config{
		RootDir:  cfg.Public.Dir,
		Include:  cfg.Public.Include,
		Exclude:  cfg.Public.Exclude,
		Reserved: reservedNames(),
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", cfg.Public.Dir, err)
	}
	return assets, nil
}

func reservedNames() []string {
	return []string{site.IndexFile, site.EmbedFile, site.ThemeCSSFile, site.ThemeJSONFile, site.ManifestFile}
}
