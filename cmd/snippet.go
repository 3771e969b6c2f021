package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xgrid/ambassador-map/internal/embed"
	"github.com/xgrid/ambassador-map/internal/site"
)

var snippetScriptURL string

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Print the HTML a third-party page pastes to embed the map",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		scriptURL := snippetScriptURL
		if scriptURL == "" {
			scriptURL = strings.TrimSuffix(cfg.Embed.FallbackOrigin, "/") + "/" + site.EmbedFile
		}
		if origin := embed.ResolveOrigin(scriptURL, ""); origin == "" {
			return fmt.Errorf("script URL %q is not an absolute http(s) URL", scriptURL)
		}

		out, err := embed.Snippet(scriptURL, cfg.EmbedOptions())
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	snippetCmd.Flags().StringVar(&snippetScriptURL, "script-url", "", "URL the embed script is served from (defaults to the fallback origin)")
	rootCmd.AddCommand(snippetCmd)
}
