// Package walker selects the static assets published alongside the page
// from the public directory.
package walker

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
)

// DefaultMaxFileSize is the largest asset published (10 MB).
const DefaultMaxFileSize int64 = 10 << 20

// Asset is one file selected from the public directory.
type Asset struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the root; also the URL path.
	Size        int64
	ContentType string
	ContentHash string // SHA-256 hex digest.
}

// Config controls Walk.
type Config struct {
	RootDir     string
	Include     []string // Glob patterns; only matching files are published.
	Exclude     []string // Glob patterns; matching files are skipped.
	Reserved    []string // Relative paths owned by the application (index.html, embed.js, ...).
	MaxFileSize int64    // 0 = DefaultMaxFileSize.
}

// Walk returns the assets under cfg.RootDir that pass filtering, sorted by
// RelPath. A missing root yields no assets.
func Walk(cfg Config) ([]Asset, error) {
	if cfg.RootDir == "" {
		return nil, nil
	}
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}
	if err := ValidatePatterns(append(append([]string{}, cfg.Include...), cfg.Exclude...)); err != nil {
		return nil, err
	}

	maxSize := cfg.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	reserved := make(map[string]bool, len(cfg.Reserved))
	for _, r := range cfg.Reserved {
		reserved[filepath.ToSlash(r)] = true
	}

	var assets []Asset
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && shouldExcludeName(name) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || shouldExcludeName(name) {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if reserved[relPath] {
			return nil
		}
		if !MatchesInclude(relPath, cfg.Include) || MatchesExclude(relPath, cfg.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil || info.Size() > maxSize {
			return nil
		}

		hash, err := hashFile(path)
		if err != nil {
			return nil
		}

		assets = append(assets, Asset{
			Path:        path,
			RelPath:     relPath,
			Size:        info.Size(),
			ContentType: contentType(name),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].RelPath < assets[j].RelPath })
	return assets, nil
}

// Index maps each asset's RelPath to the asset.
func Index(assets []Asset) map[string]Asset {
	m := make(map[string]Asset, len(assets))
	for _, a := range assets {
		m[a.RelPath] = a
	}
	return m
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
