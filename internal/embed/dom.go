package embed

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FindByID returns the first element under n whose id attribute equals id,
// in document order.
func FindByID(n *html.Node, id string) *html.Node {
	if n == nil || id == "" {
		return nil
	}
	if n.Type == html.ElementNode && Attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// FindByAtom returns the first element under n of the given kind, in
// document order.
func FindByAtom(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := FindByAtom(c, a); found != nil {
			return found
		}
	}
	return nil
}

// CountByID reports how many elements under n carry the given id.
func CountByID(n *html.Node, id string) int {
	if n == nil {
		return 0
	}
	count := 0
	if n.Type == html.ElementNode && Attr(n, "id") == id {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += CountByID(c, id)
	}
	return count
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

// declaration is one property: value pair of an inline style.
type declaration struct {
	property string
	value    string
}

// inlineStyle is a parsed style attribute. Declaration order is kept so a
// rewritten attribute only differs where a value was added.
type inlineStyle struct {
	decls []declaration
}

func parseInlineStyle(s string) *inlineStyle {
	st := &inlineStyle{}
	for _, part := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		val = strings.TrimSpace(val)
		if prop == "" || val == "" {
			continue
		}
		st.Set(prop, val)
	}
	return st
}

// Get returns the value of prop, or "" when unset.
func (s *inlineStyle) Get(prop string) string {
	for _, d := range s.decls {
		if d.property == prop {
			return d.value
		}
	}
	return ""
}

func (s *inlineStyle) Set(prop, val string) {
	for i, d := range s.decls {
		if d.property == prop {
			s.decls[i].value = val
			return
		}
	}
	s.decls = append(s.decls, declaration{property: prop, value: val})
}

func (s *inlineStyle) String() string {
	parts := make([]string, len(s.decls))
	for i, d := range s.decls {
		parts[i] = d.property + ": " + d.value
	}
	return strings.Join(parts, "; ")
}

// StyleValue returns the inline style value of prop on n, or "".
func StyleValue(n *html.Node, prop string) string {
	return parseInlineStyle(Attr(n, "style")).Get(strings.ToLower(prop))
}
