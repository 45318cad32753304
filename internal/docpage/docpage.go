// Package docpage provides the wrappers documentation pages use to show a live
// example next to the source that produced it.
package docpage

import "git.home.luguber.info/inful/componentdocs/internal/component"

const (
	KindExample = "example"
	KindSource  = "source"
)

// Example wraps a live example for display.
type Example struct {
	Example component.Node
}

// ExampleContainer wraps a pre-built example value.
func ExampleContainer(example component.Node) *Example {
	return &Example{Example: example}
}

// Kind implements component.Node.
func (*Example) Kind() string { return KindExample }

// Expand renders the example inside a bordered container.
func (e *Example) Expand() component.Node {
	return component.Div(
		component.Class("example-container", "border", "rounded", "p-3", "mb-2"),
		component.Div(component.Class("example"), component.Child(e.Example)),
	)
}

// Source holds literal source text for syntax-highlighted display. The text is
// kept byte-for-byte as given.
type Source struct {
	Source   string
	Language string
}

// HighlightedSource wraps Go source text for display.
func HighlightedSource(source string) *Source {
	return &Source{Source: source, Language: "go"}
}

// Kind implements component.Node.
func (*Source) Kind() string { return KindSource }

// Expand returns the code block inside a source container.
func (s *Source) Expand() component.Node {
	return component.Div(
		component.Class("source-container", "mb-4"),
		&component.Code{Language: s.Language, Source: s.Source},
	)
}
