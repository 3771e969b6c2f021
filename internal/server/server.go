package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/xgrid/ambassador-map/internal/embed"
	"github.com/xgrid/ambassador-map/internal/reload"
	"github.com/xgrid/ambassador-map/internal/site"
	"github.com/xgrid/ambassador-map/internal/walker"
)

// ReloadPath is where pages connect for live reload.
const ReloadPath = "/ws/reload"

// Config holds server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string // CORS origins for the script and theme; "*" allows any.
	FrameAncestors []string // Content-Security-Policy frame-ancestors sources for the page.
	Embed          embed.Options
}

// Server serves the landing page, the embed script, the theme and public assets.
type Server struct {
	cfg        Config
	bundle     atomic.Pointer[site.Bundle]
	assets     atomic.Pointer[map[string]walker.Asset]
	hub        *reload.Hub
	logger     *slog.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server for bundle. hub may be nil when live reload is off.
func New(cfg Config, bundle *site.Bundle, assets []walker.Asset, hub *reload.Hub, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		hub:    hub,
		logger: logger,
	}
	s.SetBundle(bundle)
	s.SetAssets(assets)
	s.router = s.buildRouter()
	return s
}

// SetBundle swaps the served bundle. Requests in flight keep the old one.
func (s *Server) SetBundle(b *site.Bundle) { s.bundle.Store(b) }

// SetAssets swaps the public asset index.
func (s *Server) SetAssets(assets []walker.Asset) {
	idx := walker.Index(assets)
	s.assets.Store(&idx)
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "If-None-Match"},
		ExposedHeaders: []string{"ETag"},
		MaxAge:         300,
	}))

	// Hijacked connections must not sit behind the timeout handler.
	if s.hub != nil {
		r.Get(ReloadPath, s.hub.Handler)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/", s.handlePage)
		r.Get("/"+site.IndexFile, s.handlePage)
		r.Get("/"+site.EmbedFile, s.handleBundleFile(site.EmbedFile, "public, max-age=300"))
		r.Get("/"+site.ThemeCSSFile, s.handleBundleFile(site.ThemeCSSFile, "public, max-age=300"))
		r.Get("/"+site.ThemeJSONFile, s.handleBundleFile(site.ThemeJSONFile, "public, max-age=300"))
		r.Get("/embed/preview", s.handlePreview)
	})

	r.NotFound(s.handleAsset)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("ambassador-map server listening", "addr", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
