// Package site renders the landing page and assembles the files the server
// and the static export publish.
package site

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/xgrid/ambassador-map/internal/theme"
)

// RenderOptions adjusts the rendered page.
type RenderOptions struct {
	// ReloadPath, when set, adds a client that reloads the page on a
	// websocket "reload" message from that path.
	ReloadPath string
}

// pageData holds the data passed to the page template.
type pageData struct {
	Page       Page
	ThemeCSS   template.CSS
	LayoutCSS  template.CSS
	StatusHTML template.HTML
	ReloadPath string
}

var (
	tmpl = template.Must(template.New("page").Parse(pageTemplate))

	markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
)

// RenderPage renders the landing page. Equal inputs always produce equal
// bytes.
func RenderPage(page Page, th *theme.Theme, opts RenderOptions) ([]byte, error) {
	if th == nil {
		th = theme.Default()
	}

	var status bytes.Buffer
	if err := markdown.Convert([]byte(page.StatusMarkdown), &status); err != nil {
		return nil, fmt.Errorf("converting status markdown: %w", err)
	}

	data := pageData{
		Page:       page,
		ThemeCSS:   template.CSS(th.CSS()),
		LayoutCSS:  template.CSS(layoutCSS),
		StatusHTML: template.HTML(status.String()),
		ReloadPath: opts.ReloadPath,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	return buf.Bytes(), nil
}
