package render

import (
	"bytes"
	stderrors "errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/docpage"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/highlight"
	"git.home.luguber.info/inful/componentdocs/internal/markdown"
)

func newRenderer() *Renderer {
	return New(markdown.NewConverter(), highlight.New(highlight.Options{}))
}

func renderString(t *testing.T, r *Renderer, nodes ...component.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.RenderFragment(&buf, nodes))
	return buf.String()
}

func TestRenderFragment_Elements(t *testing.T) {
	out := renderString(t, newRenderer(),
		component.H2(component.Class("display-4"), component.Text("Spinners & more")),
		component.Div(
			component.ID("x"),
			component.Styles(component.Style{"width": "3rem", "height": "3rem"}),
			component.Attr("role", "status"),
			component.Hr(),
		),
	)
	require.Equal(t,
		`<h2 class="display-4">Spinners &amp; more</h2>`+
			`<div id="x" style="height: 3rem; width: 3rem" role="status"><hr/></div>`,
		out)
}

func TestRenderFragment_Markdown(t *testing.T) {
	out := renderString(t, newRenderer(), component.P(component.Markdown("Use `dbc.Spinner()`.")))
	require.Equal(t, `<p>Use <code>dbc.Spinner()</code>.</p>`, out)
}

func TestRenderFragment_BlockMarkdownInParagraph(t *testing.T) {
	out := renderString(t, newRenderer(), component.P(component.Markdown("first\n\nsecond")))
	require.True(t, strings.HasPrefix(out, `<p><span class="markdown"><p>first</p>`), out)
	require.NotContains(t, out, `<div class="markdown">`)
}

func TestRenderFragment_MarkdownOutsideParagraph(t *testing.T) {
	out := renderString(t, newRenderer(), component.Div(component.Markdown("Use `x`.")))
	require.Equal(t, `<div><div class="markdown"><p>Use <code>x</code>.</p>`+"\n</div></div>", out)
}

func TestRenderFragment_ExpandsComposites(t *testing.T) {
	out := renderString(t, newRenderer(),
		docpage.ExampleContainer(component.Span(component.Text("live"))),
		docpage.HighlightedSource("package spinner\n"),
	)
	require.Contains(t, out, `<div class="example-container border rounded p-3 mb-2"><div class="example"><span>live</span></div></div>`)
	require.Contains(t, out, `<div class="source-container mb-4"><div class="highlight">`)
	require.Contains(t, out, "chroma")
}

type unknownNode struct{}

func (unknownNode) Kind() string { return "mystery" }

type loopNode struct{}

func (loopNode) Kind() string            { return "loop" }
func (l loopNode) Expand() component.Node { return l }

func TestTree_Errors(t *testing.T) {
	r := newRenderer()

	_, err := r.Tree([]component.Node{component.Text("ok"), unknownNode{}})
	require.True(t, errors.HasCategory(err, errors.CategoryRender))
	c, _ := errors.AsClassified(err)
	idx, _ := c.Context().Get("index")
	require.Equal(t, 1, idx)

	_, err = r.Tree([]component.Node{loopNode{}})
	require.True(t, errors.HasCategory(err, errors.CategoryRender))

	_, err = r.Tree([]component.Node{&component.Element{}})
	require.Error(t, err)
}

type failingHighlighter struct{}

func (failingHighlighter) HTML(string, string) (string, error) { return "", stderrors.New("lexer broke") }
func (failingHighlighter) CSS(io.Writer) error                 { return nil }

func TestTree_HighlighterFailure(t *testing.T) {
	r := New(markdown.NewConverter(), failingHighlighter{})
	_, err := r.Tree([]component.Node{docpage.HighlightedSource("x")})
	require.True(t, errors.HasCategory(err, errors.CategoryRender))
}

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := newRenderer().RenderPage(&buf, Page{
		Title:       "Spinner",
		Interactive: true,
		Nodes:       []component.Node{component.H2(component.Text("Spinners"))},
	})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "<title>Spinner</title>")
	require.Contains(t, out, DefaultStylesheet)
	require.Contains(t, out, `<div class="container py-4"><h2>Spinners</h2></div>`)
	require.Contains(t, out, "_dash-update-component")
	require.Contains(t, out, ".chroma")
}

func findElement(n *html.Node, tag, class string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		for _, a := range n.Attr {
			if a.Key == "class" && a.Val == class {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag, class); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func TestRenderPage_LeadParagraphSurvivesReparse(t *testing.T) {
	var buf bytes.Buffer
	err := newRenderer().RenderPage(&buf, Page{
		Title: "Spinner",
		Nodes: []component.Node{
			component.P(
				component.Class("lead"),
				component.Markdown("Indicate the loading state with the `Spinner` component."),
			),
		},
	})
	require.NoError(t, err)

	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	lead := findElement(doc, "p", "lead")
	require.NotNil(t, lead)
	require.Equal(t, "Indicate the loading state with the Spinner component.", textContent(lead))
	require.NotNil(t, lead.FirstChild)
	require.Equal(t, html.TextNode, lead.FirstChild.Type)
}

func TestRenderPage_StaticOmitsScript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newRenderer().RenderPage(&buf, Page{Title: "x", Stylesheet: "/bootstrap.css"}))
	require.NotContains(t, buf.String(), "<script>")
	require.Contains(t, buf.String(), `href="/bootstrap.css"`)
}
