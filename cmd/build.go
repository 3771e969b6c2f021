package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xgrid/ambassador-map/internal/progress"
	"github.com/xgrid/ambassador-map/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the site as a static bundle",
	Long: `Writes index.html, embed.js, theme.css, theme.json and the selected public
assets to the output directory, together with a build.json manifest. The
result can be deployed to any static host.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg)

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	bundle, err := buildBundle(cfg, site.RenderOptions{})
	if err != nil {
		return err
	}
	assets, err := walkPublic(cfg)
	if err != nil {
		return err
	}

	exporter := &site.Exporter{
		OutputDir: outputDir,
		Bundle:    bundle,
		Assets:    assets,
		Reporter:  progress.NewReporter(),
	}
	m, err := exporter.Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d files, build %s)\n", outputDir, len(m.Files), m.BuildID)
	return nil
}
