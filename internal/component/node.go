package component

import (
	"maps"
	"slices"
	"strings"
)

// Kinds reported by the primitive node types.
const (
	KindText     = "text"
	KindMarkdown = "markdown"
	KindCode     = "code"
)

// Node is a unit of renderable content in a page tree.
type Node interface {
	// Kind identifies the node for renderers and tests. Elements report their tag.
	Kind() string
}

// Expander is implemented by composite nodes that reduce to a tree of primitives.
type Expander interface {
	Node
	Expand() Node
}

// Arg is accepted by the element builders. Child nodes and options both satisfy it.
type Arg interface {
	applyTo(e *Element)
}

// Style holds inline CSS declarations keyed by property name.
type Style map[string]string

// String renders the declarations sorted by property so output is stable.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(s))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+s[k])
	}
	return strings.Join(parts, "; ")
}

// Element is an HTML element with optional children.
type Element struct {
	Tag      string
	ID       string
	Class    string
	Style    Style
	Attrs    map[string]string
	Children []Node
}

// Kind returns the element tag.
func (e *Element) Kind() string { return e.Tag }

func (e *Element) applyTo(parent *Element) { parent.Children = append(parent.Children, e) }

// Text is a literal text node. It is escaped when rendered.
type Text string

// Kind implements Node.
func (Text) Kind() string { return KindText }

func (t Text) applyTo(parent *Element) { parent.Children = append(parent.Children, t) }

// Markdown holds inline markdown source that is converted to HTML when rendered.
type Markdown string

// Kind implements Node.
func (Markdown) Kind() string { return KindMarkdown }

func (m Markdown) applyTo(parent *Element) { parent.Children = append(parent.Children, m) }

// Code is a block of literal source shown with syntax highlighting.
type Code struct {
	Language string
	Source   string
}

// Kind implements Node.
func (*Code) Kind() string { return KindCode }

func (c *Code) applyTo(parent *Element) { parent.Children = append(parent.Children, c) }

// child adapts any Node, including composites from other packages, into an Arg.
type child struct{ node Node }

func (c child) applyTo(parent *Element) {
	if c.node != nil {
		parent.Children = append(parent.Children, c.node)
	}
}

// Child wraps an arbitrary node so it can be passed to the element builders.
func Child(n Node) Arg { return child{node: n} }

// Children wraps several nodes at once.
func Children(nodes ...Node) Arg {
	return option(func(e *Element) {
		for _, n := range nodes {
			if n != nil {
				e.Children = append(e.Children, n)
			}
		}
	})
}

// Walk visits n and its descendants depth-first. Composite nodes are visited
// as themselves and are not expanded. Returning false from fn skips the
// children of the current node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	if e, ok := n.(*Element); ok {
		for _, c := range e.Children {
			Walk(c, fn)
		}
	}
}
