package server

import (
	"bytes"
	"net/http"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/xgrid/ambassador-map/internal/embed"
	"github.com/xgrid/ambassador-map/internal/site"
)

const previewSkeleton = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Embed preview</title>
</head>
<body>
<h1>Third-party host page</h1>
<p>The map below is embedded with a single script tag.</p>
</body>
</html>`

// handlePreview renders a host page with the embed already applied, the same
// way the browser script would do it. The optional width and height query
// parameters pre-declare the container with those inline dimensions.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, err := html.Parse(strings.NewReader(previewSkeleton))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	body := embed.FindByAtom(doc, atom.Body)

	opts := s.cfg.Embed
	if opts.ContainerID == "" {
		opts.ContainerID = embed.DefaultContainerID
	}

	q := r.URL.Query()
	if style := declaredStyle(q.Get("width"), q.Get("height")); style != "" {
		body.AppendChild(&html.Node{
			Type:     html.ElementNode,
			Data:     "div",
			DataAtom: atom.Div,
			Attr: []html.Attribute{
				{Key: "id", Val: opts.ContainerID},
				{Key: "style", Val: style},
			},
		})
	}

	scriptURL := requestOrigin(r) + "/" + site.EmbedFile
	script := &html.Node{
		Type:     html.ElementNode,
		Data:     "script",
		DataAtom: atom.Script,
		Attr: []html.Attribute{
			{Key: "src", Val: scriptURL},
			{Key: "data-manual", Val: ""},
		},
	}
	body.AppendChild(script)

	opts.Anchor = script
	opts.ScriptSrc = scriptURL
	res, err := embed.Initialize(doc, opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.logger.Debug("embed preview rendered", "origin", res.Origin, "created", res.Created)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// declaredStyle builds the inline style for a pre-declared container. Values
// carrying declaration separators are ignored.
func declaredStyle(width, height string) string {
	var parts []string
	if width != "" && !strings.ContainsAny(width, ";:{}\"") {
		parts = append(parts, "width: "+width)
	}
	if height != "" && !strings.ContainsAny(height, ";:{}\"") {
		parts = append(parts, "height: "+height)
	}
	return strings.Join(parts, "; ")
}

// requestOrigin reconstructs the origin the client used to reach the server.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
