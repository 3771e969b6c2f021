package server

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/xgrid/ambassador-map/internal/site"
)

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	if len(s.cfg.FrameAncestors) > 0 {
		w.Header().Set("Content-Security-Policy", "frame-ancestors "+strings.Join(s.cfg.FrameAncestors, " "))
	}
	s.serveBundleFile(w, r, site.IndexFile, "no-cache")
}

func (s *Server) handleBundleFile(name, cacheControl string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.serveBundleFile(w, r, name, cacheControl)
	}
}

func (s *Server) serveBundleFile(w http.ResponseWriter, r *http.Request, name, cacheControl string) {
	b := s.bundle.Load()
	if b == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "site not built"})
		return
	}
	f, ok := b.File(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	w.Header().Set("ETag", f.ETag)
	w.Header().Set("Cache-Control", cacheControl)
	if etagMatches(r.Header.Get("If-None-Match"), f.ETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", f.ContentType)
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(f.Body)
	}
}

// handleAsset serves files from the public directory.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	idx := s.assets.Load()
	if idx == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	asset, ok := (*idx)[strings.TrimPrefix(r.URL.Path, "/")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	f, err := os.Open(asset.Path)
	if err != nil {
		s.logger.Warn("public asset vanished", "path", asset.RelPath, "err", err)
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stat failed"})
		return
	}

	w.Header().Set("ETag", `"`+asset.ContentHash+`"`)
	w.Header().Set("Content-Type", asset.ContentType)
	http.ServeContent(w, r, asset.RelPath, info.ModTime(), f)
}

// etagMatches implements the weak comparison used for If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
