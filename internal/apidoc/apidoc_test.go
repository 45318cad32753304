package apidoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/metadata"
)

func TestFormatType(t *testing.T) {
	tests := []struct {
		name string
		in   *metadata.PropType
		want string
	}{
		{"nil", nil, ""},
		{"bool", &metadata.PropType{Name: "bool"}, "boolean"},
		{"object", &metadata.PropType{Name: "object"}, "dict"},
		{"enum", &metadata.PropType{Name: "enum", Enum: []string{"'sm'", "'lg'"}}, "a value equal to: 'sm', 'lg'"},
		{"union", &metadata.PropType{Name: "union", Union: []*metadata.PropType{{Name: "string"}, {Name: "number"}}}, "string | number"},
		{"arrayOf", &metadata.PropType{Name: "arrayOf", Elem: &metadata.PropType{Name: "string"}}, "list of strings"},
		{"objectOf", &metadata.PropType{Name: "objectOf", Elem: &metadata.PropType{Name: "number"}}, "dict with strings as keys and values of type number"},
		{"shape", &metadata.PropType{Name: "shape", Fields: []metadata.Field{{Name: "a"}, {Name: "b"}}}, "dict containing keys 'a', 'b'"},
		{"custom", &metadata.PropType{Name: "custom", Raw: "fn"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatType(tt.in))
		})
	}
}

func TestPropLine(t *testing.T) {
	line := PropLine(metadata.Prop{
		Name:         "type",
		Type:         &metadata.PropType{Name: "string"},
		Description:  "The type of spinner.\nOptions 'border' and 'grow'.",
		DefaultValue: &metadata.DefaultValue{Value: "'border'"},
	})
	require.Equal(t, "- **type** (_string_; optional; default `'border'`): The type of spinner. Options 'border' and 'grow'.", line)

	required := PropLine(metadata.Prop{Name: "id", Type: &metadata.PropType{Name: "string"}, Required: true})
	require.Equal(t, "- **id** (_string_; required)", required)
}

func TestReference_SpinnerFromDefaultMetadata(t *testing.T) {
	store, err := metadata.Default()
	require.NoError(t, err)
	meta, err := store.Component("src/components/Spinner.js")
	require.NoError(t, err)

	ref := New(meta, "Spinner")
	require.Equal(t, KindReference, ref.Kind())

	md := ref.Markdown()
	require.NotContains(t, md, "setProps")
	require.True(t, strings.HasPrefix(md, "- **children** (_a list of or a singular dash component, string or number_; optional)"))
	require.Contains(t, md, "- **loading_state** (_dict containing keys 'is_loading', 'prop_name', 'component_name'_; optional)")

	root := ref.Expand().(*component.Element)
	heading := root.Children[0].(*component.Element)
	require.Equal(t, []component.Node{component.Text("Keyword arguments for Spinner")}, heading.Children)
	require.Equal(t, component.Markdown(md), root.Children[len(root.Children)-1])
}

func TestNew_DefaultsNameFromMetadata(t *testing.T) {
	ref := New(&metadata.Component{DisplayName: "Button"}, "")
	require.Equal(t, "Button", ref.Name)
}
