package docpage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/componentdocs/internal/component"
)

func TestExampleContainer_ExpandsAroundExample(t *testing.T) {
	live := component.Div(component.Text("hello"))
	ex := ExampleContainer(live)
	require.Equal(t, KindExample, ex.Kind())

	root, ok := ex.Expand().(*component.Element)
	require.True(t, ok)
	require.Contains(t, root.Class, "example-container")
	inner := root.Children[0].(*component.Element)
	require.Same(t, live, inner.Children[0])
}

func TestHighlightedSource_KeepsTextVerbatim(t *testing.T) {
	src := "package spinner\n\nvar x = 1 \t\n"
	s := HighlightedSource(src)
	require.Equal(t, KindSource, s.Kind())

	root := s.Expand().(*component.Element)
	code := root.Children[0].(*component.Code)
	require.Equal(t, src, code.Source)
	require.Equal(t, "go", code.Language)
}
