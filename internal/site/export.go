package site

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/xgrid/ambassador-map/internal/progress"
	"github.com/xgrid/ambassador-map/internal/walker"
)

// ManifestFile is written last into every export.
const ManifestFile = "build.json"

// Manifest lists what an export wrote.
type Manifest struct {
	BuildID string          `json:"build_id"`
	Files   []ManifestEntry `json:"files"`
}

// ManifestEntry describes one exported file.
type ManifestEntry struct {
	Path   string `json:"path"`
	Size   int64  `json:"size"`
	SHA256 string `json:"sha256"`
}

// Exporter writes a Bundle and the selected public assets into a directory
// that any static host can serve.
type Exporter struct {
	OutputDir string
	Bundle    *Bundle
	Assets    []walker.Asset
	Reporter  progress.Reporter
}

// Export writes every file and the manifest.
func (e *Exporter) Export() (*Manifest, error) {
	if e.Bundle == nil {
		return nil, fmt.Errorf("export: no bundle")
	}
	reporter := e.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	names := e.Bundle.Names()
	total := len(names) + len(e.Assets)
	reporter.Start(total)
	defer reporter.Finish()

	m := &Manifest{BuildID: uuid.NewString()}
	done := 0

	for _, name := range names {
		f, _ := e.Bundle.File(name)
		if err := os.WriteFile(filepath.Join(e.OutputDir, name), f.Body, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
		sum := sha256.Sum256(f.Body)
		m.Files = append(m.Files, ManifestEntry{Path: name, Size: int64(len(f.Body)), SHA256: hex.EncodeToString(sum[:])})
		done++
		reporter.Update(done, name)
	}

	for _, a := range e.Assets {
		dst := filepath.Join(e.OutputDir, filepath.FromSlash(a.RelPath))
		if err := copyFile(a.Path, dst); err != nil {
			return nil, fmt.Errorf("copying %s: %w", a.RelPath, err)
		}
		m.Files = append(m.Files, ManifestEntry{Path: a.RelPath, Size: a.Size, SHA256: a.ContentHash})
		done++
		reporter.Update(done, a.RelPath)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.OutputDir, ManifestFile), append(data, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	return m, nil
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
