package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xgrid/ambassador-map/internal/theme"
)

var (
	tokensFormat string
	tokensWrite  bool
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the theme's design tokens",
	Long: `Prints the resolved design tokens (defaults overlaid with the theme file)
as CSS custom properties or JSON. With --write the resolved theme is saved
to the theme file so it can be edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		th, err := theme.Load(cfg.ThemeFile)
		if err != nil {
			return fmt.Errorf("loading theme: %w", err)
		}

		if tokensWrite {
			if err := th.Save(cfg.ThemeFile); err != nil {
				return fmt.Errorf("saving theme: %w", err)
			}
			fmt.Printf("Theme written to %s\n", cfg.ThemeFile)
			return nil
		}

		switch tokensFormat {
		case "css":
			fmt.Print(th.CSS())
		case "json":
			data, err := th.JSON()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		default:
			return fmt.Errorf("unknown format %q (want css or json)", tokensFormat)
		}
		return nil
	},
}

func init() {
	tokensCmd.Flags().StringVar(&tokensFormat, "format", "css", "output format: css or json")
	tokensCmd.Flags().BoolVar(&tokensWrite, "write", false, "save the resolved theme to the theme file")
	rootCmd.AddCommand(tokensCmd)
}
