package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xgrid/ambassador-map/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ambassador-map",
	Short: "Serve and embed the XGrid Campers Ambassador Map",
	Long: `ambassador-map serves the XGrid Campers Ambassador Map landing page,
the embed script that third-party sites use to show the map in an iframe,
and the design tokens of the XGrid theme. It can also export the whole
site as a static bundle.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
