package apidoc

import (
	"strings"

	"git.home.luguber.info/inful/componentdocs/internal/metadata"
)

var simpleTypes = map[string]string{
	"array":   "list",
	"bool":    "boolean",
	"number":  "number",
	"string":  "string",
	"object":  "dict",
	"any":     "boolean | number | string | dict | list",
	"element": "dash component",
	"node":    "a list of or a singular dash component, string or number",
	"func":    "function",
}

// FormatType describes a prop type in the wording of Dash's Python docstrings.
// Unknown and custom types yield an empty string.
func FormatType(t *metadata.PropType) string {
	if t == nil {
		return ""
	}
	if s, ok := simpleTypes[t.Name]; ok {
		return s
	}

	switch t.Name {
	case "enum":
		return "a value equal to: " + strings.Join(t.Enum, ", ")
	case "union":
		parts := make([]string, 0, len(t.Union))
		for _, u := range t.Union {
			if s := FormatType(u); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " | ")
	case "arrayOf":
		if inner := FormatType(t.Elem); inner != "" {
			return "list of " + inner + "s"
		}
		return "list"
	case "objectOf":
		if inner := FormatType(t.Elem); inner != "" {
			return "dict with strings as keys and values of type " + inner
		}
		return "dict"
	case "shape", "exact":
		keys := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			keys = append(keys, "'"+f.Name+"'")
		}
		if len(keys) == 0 {
			return "dict"
		}
		return "dict containing keys " + strings.Join(keys, ", ")
	default:
		return ""
	}
}
