package site

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/xgrid/ambassador-map/internal/embed"
	"github.com/xgrid/ambassador-map/internal/theme"
)

// Names of the generated files.
const (
	IndexFile     = "index.html"
	EmbedFile     = "embed.js"
	ThemeCSSFile  = "theme.css"
	ThemeJSONFile = "theme.json"
)

// File is one generated file.
type File struct {
	Name        string
	ContentType string
	Body        []byte
	ETag        string
}

// Bundle is the set of generated files: the page, the embed script and the
// theme in CSS and JSON form.
type Bundle struct {
	files map[string]File
}

// BuildOptions collects the inputs of Build.
type BuildOptions struct {
	Page   Page
	Theme  *theme.Theme
	Embed  embed.Options
	Render RenderOptions
}

// Build renders every generated file.
func Build(opts BuildOptions) (*Bundle, error) {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}

	page, err := RenderPage(opts.Page, th, opts.Render)
	if err != nil {
		return nil, err
	}
	script, err := embed.Script(opts.Embed)
	if err != nil {
		return nil, err
	}
	tokens, err := th.JSON()
	if err != nil {
		return nil, err
	}

	b := &Bundle{files: make(map[string]File, 4)}
	b.add(IndexFile, "text/html; charset=utf-8", page)
	b.add(EmbedFile, "text/javascript; charset=utf-8", script)
	b.add(ThemeCSSFile, "text/css; charset=utf-8", []byte(th.CSS()))
	b.add(ThemeJSONFile, "application/json", tokens)
	return b, nil
}

func (b *Bundle) add(name, contentType string, body []byte) {
	b.files[name] = File{
		Name:        name,
		ContentType: contentType,
		Body:        body,
		ETag:        etag(body),
	}
}

// File returns the named file.
func (b *Bundle) File(name string) (File, bool) {
	f, ok := b.files[name]
	return f, ok
}

// Names lists the generated file names in sorted order.
func (b *Bundle) Names() []string {
	names := make([]string, 0, len(b.files))
	for n := range b.files {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// etag is a strong validator derived from the content.
func etag(body []byte) string {
	sum := sha256.Sum256(body)
	return fmt.Sprintf(`"%s"`, hex.EncodeToString(sum[:8]))
}
