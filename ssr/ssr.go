// Package ssr renders yew node graphs to HTML.
//
// Elements, text and fragments map one-to-one onto gomponents nodes, so
// escaping and void-element handling follow gomponents. Components are
// rendered with their bound properties. Listeners, keys and refs have no
// HTML form and are dropped.
package ssr

import (
	"io"
	"net/http"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	yew "github.com/grindlemire/go-yew"
)

// Lower converts a node graph to a gomponents node.
func Lower(n yew.Node) g.Node {
	switch x := n.(type) {
	case *yew.VTag:
		if x == nil {
			return g.Group(nil)
		}
		return lowerTag(x)
	case *yew.VText:
		if x == nil {
			return g.Group(nil)
		}
		return g.Text(x.Text)
	case *yew.VList:
		if x == nil {
			return g.Group(nil)
		}
		return lowerChildren(x.Children)
	case *yew.VComp:
		if x == nil {
			return g.Group(nil)
		}
		return Lower(x.Render())
	}
	return g.Group(nil)
}

func lowerTag(t *yew.VTag) g.Node {
	nodes := make([]g.Node, 0, len(t.Attrs)+2)
	if t.Class != "" {
		nodes = append(nodes, g.Attr("class", t.Class))
	}
	for _, a := range t.Attrs {
		if a.Bool {
			nodes = append(nodes, g.Attr(a.Name))
			continue
		}
		nodes = append(nodes, g.Attr(a.Name, a.Value))
	}
	if len(t.Children) > 0 {
		nodes = append(nodes, lowerChildren(t.Children))
	}
	return g.El(t.Tag, nodes...)
}

func lowerChildren(children []yew.Node) g.Group {
	out := make(g.Group, 0, len(children))
	for _, c := range children {
		out = append(out, Lower(c))
	}
	return out
}

// Render writes n as an HTML fragment.
func Render(w io.Writer, n yew.Node) error {
	return Lower(n).Render(w)
}

// String renders n as an HTML fragment.
func String(n yew.Node) (string, error) {
	var sb strings.Builder
	if err := Render(&sb, n); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Document writes n preceded by the HTML5 doctype. n is normally an <html>
// element.
func Document(w io.Writer, n yew.Node) error {
	return html.Doctype(Lower(n)).Render(w)
}

// Handler serves the document built by page for each request.
func Handler(page func(*http.Request) yew.Node) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := Document(w, page(r)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
