package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xgrid/ambassador-map/internal/reload"
	"github.com/xgrid/ambassador-map/internal/server"
	"github.com/xgrid/ambassador-map/internal/site"
)

var (
	servePort  int
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server for the page, embed script and theme",
	Long: `Serves the landing page at /, the embed script at /embed.js, the theme
at /theme.css and /theme.json, a host-page preview at /embed/preview and the
files of the public directory. With --watch the theme file and the public
directory are watched and open pages reload on change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}
		logger := setupLogger(cfg)

		var hub *reload.Hub
		var render site.RenderOptions
		if serveWatch {
			hub = reload.NewHub(logger)
			render.ReloadPath = server.ReloadPath
		}

		bundle, err := buildBundle(cfg, render)
		if err != nil {
			return err
		}
		assets, err := walkPublic(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:           cfg.Server.Port,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			FrameAncestors: cfg.Server.FrameAncestors,
			Embed:          cfg.EmbedOptions(),
		}, bundle, assets, hub, logger)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if serveWatch {
			rebuild := func() {
				b, err := buildBundle(cfg, render)
				if err != nil {
					logger.Error("rebuild failed, keeping previous site", "err", err)
					return
				}
				a, err := walkPublic(cfg)
				if err != nil {
					logger.Error("rescan failed, keeping previous assets", "err", err)
					return
				}
				srv.SetBundle(b)
				srv.SetAssets(a)
				hub.Broadcast()
			}
			if err := reload.Watch(ctx, []string{cfg.ThemeFile, cfg.Public.Dir}, reload.DefaultDebounce, logger, rebuild); err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
		}

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		fmt.Fprintf(os.Stderr, "ambassador-map %s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Theme: %s\n", cfg.ThemeFile)
		fmt.Fprintf(os.Stderr, "  Public assets: %d\n", len(assets))
		fmt.Fprintf(os.Stderr, "  Embed: <script src=\"http://localhost:%d/%s\"></script>\n", cfg.Server.Port, site.EmbedFile)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3000, "port to listen on (overrides server.port)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "reload open pages when the theme or public files change")
	rootCmd.AddCommand(serveCmd)
}
