package embed

import "golang.org/x/net/html"

// Defaults for the stock widget.
const (
	DefaultContainerID    = "xgrid-ambassador-map"
	DefaultFallbackOrigin = "https://main.d3d9zn9ueor3c9.amplifyapp.com"
	DefaultWidth          = "100%"
	DefaultHeight         = "800px"
	DefaultTitle          = "XGrid Ambassador Map"
)

// Options controls a single widget initialization.
type Options struct {
	// ContainerID is the id of the element that receives the iframe.
	ContainerID string
	// AnchorID names the element a new container is inserted before when
	// the document has no container yet. Anchor takes precedence.
	AnchorID string
	Anchor   *html.Node
	// ScriptSrc is the URL the embed script was loaded from. Its origin
	// becomes the iframe source.
	ScriptSrc      string
	FallbackOrigin string
	DefaultWidth   string
	DefaultHeight  string
	Title          string
}

// DefaultOptions returns the stock widget options.
func DefaultOptions() Options {
	return Options{
		ContainerID:    DefaultContainerID,
		FallbackOrigin: DefaultFallbackOrigin,
		DefaultWidth:   DefaultWidth,
		DefaultHeight:  DefaultHeight,
		Title:          DefaultTitle,
	}
}

// withDefaults fills every empty field that has a stock value.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ContainerID == "" {
		o.ContainerID = d.ContainerID
	}
	if o.FallbackOrigin == "" {
		o.FallbackOrigin = d.FallbackOrigin
	}
	if o.DefaultWidth == "" {
		o.DefaultWidth = d.DefaultWidth
	}
	if o.DefaultHeight == "" {
		o.DefaultHeight = d.DefaultHeight
	}
	if o.Title == "" {
		o.Title = d.Title
	}
	return o
}
