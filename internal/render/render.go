// Package render turns page node trees into HTML.
//
// Nodes are converted into a golang.org/x/net/html tree and serialised with
// html.Render. Markdown and highlighted code are produced as HTML strings by
// their converters and re-parsed as fragments, so every byte written passes
// through the same serialiser.
package render

import (
	"io"
	"maps"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
)

// maxExpandDepth bounds chains of composite nodes that expand into composites.
const maxExpandDepth = 32

// MarkdownConverter converts markdown source to an HTML fragment.
type MarkdownConverter interface {
	ToHTML(src string) (string, error)
}

// Highlighter converts source text to syntax-coloured HTML.
type Highlighter interface {
	HTML(source, language string) (string, error)
	CSS(w io.Writer) error
}

// Renderer renders node trees.
type Renderer struct {
	markdown    MarkdownConverter
	highlighter Highlighter
}

// New creates a Renderer.
func New(md MarkdownConverter, hl Highlighter) *Renderer {
	return &Renderer{markdown: md, highlighter: hl}
}

// Tree converts nodes into HTML nodes, in order.
func (r *Renderer) Tree(nodes []component.Node) ([]*html.Node, error) {
	out := make([]*html.Node, 0, len(nodes))
	for i, n := range nodes {
		converted, err := r.convert(n, 0)
		if err != nil {
			if c, ok := errors.AsClassified(err); ok {
				return nil, c.WithContext("index", i)
			}
			return nil, err
		}
		out = append(out, converted...)
	}
	return out, nil
}

// RenderFragment writes the nodes as an HTML fragment.
func (r *Renderer) RenderFragment(w io.Writer, nodes []component.Node) error {
	tree, err := r.Tree(nodes)
	if err != nil {
		return err
	}
	for _, n := range tree {
		if err := html.Render(w, n); err != nil {
			return errors.WrapError(err, errors.CategoryRender, "failed to write html").Build()
		}
	}
	return nil
}

func (r *Renderer) convert(n component.Node, depth int) ([]*html.Node, error) {
	switch v := n.(type) {
	case nil:
		return nil, nil
	case component.Text:
		return []*html.Node{{Type: html.TextNode, Data: string(v)}}, nil
	case component.Markdown:
		if r.markdown == nil {
			return nil, errors.InternalError("renderer has no markdown converter").Build()
		}
		out, err := r.markdown.ToHTML(string(v))
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryRender, "failed to convert markdown").Build()
		}
		return r.wrapFragment("markdown", out)
	case *component.Code:
		if r.highlighter == nil {
			return nil, errors.InternalError("renderer has no highlighter").Build()
		}
		out, err := r.highlighter.HTML(v.Source, v.Language)
		if err != nil {
			return nil, errors.WrapError(err, errors.CategoryRender, "failed to highlight source").
				WithContext("language", v.Language).
				Build()
		}
		return r.wrapFragment("highlight", out)
	case *component.Element:
		el, err := r.element(v, depth)
		if err != nil {
			return nil, err
		}
		return []*html.Node{el}, nil
	case component.Expander:
		if depth >= maxExpandDepth {
			return nil, errors.RenderError("composite node expansion too deep").
				WithContext("kind", v.Kind()).
				Build()
		}
		return r.convert(v.Expand(), depth+1)
	default:
		return nil, errors.RenderError("unsupported node").
			WithContext("kind", n.Kind()).
			Build()
	}
}

func (r *Renderer) element(e *component.Element, depth int) (*html.Node, error) {
	if e.Tag == "" {
		return nil, errors.RenderError("element has no tag").Build()
	}
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     e.Tag,
		DataAtom: atom.Lookup([]byte(e.Tag)),
	}
	if e.ID != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "id", Val: e.ID})
	}
	if e.Class != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "class", Val: e.Class})
	}
	if style := e.Style.String(); style != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: style})
	}
	for _, k := range slices.Sorted(maps.Keys(e.Attrs)) {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: e.Attrs[k]})
	}

	for _, c := range e.Children {
		var kids []*html.Node
		var err error
		if md, ok := c.(component.Markdown); ok && e.Tag == "p" {
			kids, err = r.inlineMarkdown(md)
		} else {
			kids, err = r.convert(c, depth)
		}
		if err != nil {
			return nil, err
		}
		for _, k := range kids {
			el.AppendChild(k)
		}
	}
	return el, nil
}

// wrapFragment parses generated HTML into a div tagged with the producer name.
func (r *Renderer) wrapFragment(kind, fragment string) ([]*html.Node, error) {
	wrapper := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "class", Val: kind}},
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), wrapper)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to parse generated html").
			WithContext("kind", kind).
			Build()
	}
	for _, n := range nodes {
		wrapper.AppendChild(n)
	}
	return []*html.Node{wrapper}, nil
}

// inlineMarkdown converts markdown placed inside a paragraph. A block element
// cannot appear in <p>, so goldmark's single wrapping paragraph is dropped and
// its inline content returned. Anything else is wrapped in a span.
func (r *Renderer) inlineMarkdown(md component.Markdown) ([]*html.Node, error) {
	if r.markdown == nil {
		return nil, errors.InternalError("renderer has no markdown converter").Build()
	}
	out, err := r.markdown.ToHTML(string(md))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to convert markdown").Build()
	}
	parent := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(out), parent)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to parse generated html").
			WithContext("kind", "markdown").
			Build()
	}

	var blocks []*html.Node
	for _, n := range nodes {
		if n.Type == html.TextNode && strings.TrimSpace(n.Data) == "" {
			continue
		}
		blocks = append(blocks, n)
	}
	if len(blocks) == 1 && blocks[0].Type == html.ElementNode && blocks[0].DataAtom == atom.P {
		var inline []*html.Node
		for c := blocks[0].FirstChild; c != nil; {
			next := c.NextSibling
			blocks[0].RemoveChild(c)
			inline = append(inline, c)
			c = next
		}
		return inline, nil
	}

	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr:     []html.Attribute{{Key: "class", Val: "markdown"}},
	}
	for _, n := range nodes {
		span.AppendChild(n)
	}
	return []*html.Node{span}, nil
}
