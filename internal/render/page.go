package render

import (
	"bytes"
	_ "embed"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
)

//go:embed assets/callbacks.js
var callbackScript string

// DefaultStylesheet is the Bootstrap build the component markup targets.
const DefaultStylesheet = "https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css"

// Page describes a complete HTML document.
type Page struct {
	Title      string
	Stylesheet string
	// Interactive adds the client script that drives registered callbacks.
	Interactive bool
	Nodes       []component.Node
}

// RenderPage writes a complete HTML document for p.
func (r *Renderer) RenderPage(w io.Writer, p Page) error {
	content, err := r.Tree(p.Nodes)
	if err != nil {
		return err
	}

	head := elem(atom.Head,
		withAttrs(elem(atom.Meta), "charset", "utf-8"),
		withAttrs(elem(atom.Meta), "name", "viewport", "content", "width=device-width, initial-scale=1"),
		elem(atom.Title, text(p.Title)),
	)
	stylesheet := p.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}
	head.AppendChild(withAttrs(elem(atom.Link), "rel", "stylesheet", "href", stylesheet))

	if r.highlighter != nil {
		var css bytes.Buffer
		if err := r.highlighter.CSS(&css); err != nil {
			return errors.WrapError(err, errors.CategoryRender, "failed to generate highlight stylesheet").Build()
		}
		head.AppendChild(elem(atom.Style, text(css.String())))
	}

	container := withAttrs(elem(atom.Div), "class", "container py-4")
	for _, n := range content {
		container.AppendChild(n)
	}
	body := elem(atom.Body, container)
	if p.Interactive {
		body.AppendChild(elem(atom.Script, text(callbackScript)))
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(withAttrs(elem(atom.Html, head, body), "lang", "en"))

	if err := html.Render(w, doc); err != nil {
		return errors.WrapError(err, errors.CategoryRender, "failed to write html document").Build()
	}
	return nil
}

func elem(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// withAttrs appends key/value attribute pairs to n.
func withAttrs(n *html.Node, kv ...string) *html.Node {
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}
