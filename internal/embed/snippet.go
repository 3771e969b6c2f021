package embed

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Snippet returns the HTML a third-party page pastes to show the map: the
// container, already holding the iframe so the map shows without
// JavaScript, followed by the script tag that loads from scriptURL.
func Snippet(scriptURL string, opts Options) (string, error) {
	root := &html.Node{Type: html.DocumentNode}
	script := newElement(atom.Script, html.Attribute{Key: "src", Val: scriptURL})
	root.AppendChild(script)

	opts.Anchor = script
	opts.ScriptSrc = scriptURL
	opts.AnchorID = ""
	if _, err := Initialize(root, opts); err != nil {
		return "", err
	}

	var b strings.Builder
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("rendering snippet: %w", err)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}
