// Package highlight renders source text as syntax-coloured HTML using chroma.
package highlight

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = "github"

// Options configures a Highlighter.
type Options struct {
	Style       string
	LineNumbers bool
}

// Highlighter emits class-based HTML; the matching stylesheet comes from CSS.
type Highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// New creates a Highlighter. Unknown style names fall back to chroma's default style.
func New(opts Options) *Highlighter {
	name := opts.Style
	if name == "" {
		name = DefaultStyle
	}
	return &Highlighter{
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.WithLineNumbers(opts.LineNumbers),
			chromahtml.TabWidth(4),
		),
		style: styles.Get(name),
	}
}

// HTML highlights source. An unknown language is rendered as plain text.
func (h *Highlighter) HTML(source, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CSS writes the stylesheet for the configured style.
func (h *Highlighter) CSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

// StyleName returns the resolved style name.
func (h *Highlighter) StyleName() string {
	return h.style.Name
}
