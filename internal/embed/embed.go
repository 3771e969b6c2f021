// Package embed places the ambassador map into a host document as an
// iframe. Initialize works on an x/net/html tree and is what the preview
// page and snippet generator use; Script renders the browser-side
// equivalent served at /embed.js.
package embed

import (
	"errors"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// ErrNoAnchor means the document has no container and no anchor to
	// insert a new container next to.
	ErrNoAnchor = errors.New("embed: no container and no anchor element")
	// ErrNilDocument is returned when Initialize is given no document.
	ErrNilDocument = errors.New("embed: nil document")
)

// Result describes what Initialize did to the document.
type Result struct {
	Container *html.Node
	IFrame    *html.Node
	// Created is true when the container was inserted by this call.
	Created bool
	Origin  string
}

// Initialize ensures the widget container exists, gives it default
// dimensions where none are set, and replaces its content with a single
// iframe pointing at the resolved origin. It is safe to call repeatedly on
// the same document: an existing container is reused.
func Initialize(doc *html.Node, opts Options) (*Result, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	opts = opts.withDefaults()

	res := &Result{Origin: ResolveOrigin(opts.ScriptSrc, opts.FallbackOrigin)}

	container := FindByID(doc, opts.ContainerID)
	if container == nil {
		anchor := opts.Anchor
		if anchor == nil {
			anchor = FindByID(doc, opts.AnchorID)
		}
		if anchor == nil || anchor.Parent == nil {
			return nil, fmt.Errorf("%w: container %q", ErrNoAnchor, opts.ContainerID)
		}
		container = newElement(atom.Div, html.Attribute{Key: "id", Val: opts.ContainerID})
		anchor.Parent.InsertBefore(container, anchor)
		res.Created = true
	}

	style := parseInlineStyle(Attr(container, "style"))
	if style.Get("width") == "" {
		style.Set("width", opts.DefaultWidth)
	}
	if style.Get("height") == "" {
		style.Set("height", opts.DefaultHeight)
	}
	SetAttr(container, "style", style.String())

	iframe := newElement(atom.Iframe,
		html.Attribute{Key: "src", Val: res.Origin},
		html.Attribute{Key: "style", Val: "width: 100%; height: 100%; border: none; display: block"},
		html.Attribute{Key: "frameborder", Val: "0"},
		html.Attribute{Key: "allowfullscreen", Val: "true"},
		html.Attribute{Key: "title", Val: opts.Title},
	)

	removeChildren(container)
	container.AppendChild(iframe)

	res.Container = container
	res.IFrame = iframe
	return res, nil
}
