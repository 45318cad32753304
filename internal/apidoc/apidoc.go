// Package apidoc builds the keyword-argument reference section of a component page.
package apidoc

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/metadata"
)

// KindReference identifies API reference nodes.
const KindReference = "api-reference"

// hiddenProps are framework plumbing and never documented.
var hiddenProps = map[string]bool{"setProps": true}

// Reference is the API documentation block for one component.
type Reference struct {
	Name     string
	Metadata *metadata.Component
}

// New builds the reference for a component. name is the display name used in
// the heading; when empty the metadata display name is used.
func New(meta *metadata.Component, name string) *Reference {
	if name == "" && meta != nil {
		name = meta.DisplayName
	}
	return &Reference{Name: name, Metadata: meta}
}

// Kind implements component.Node.
func (*Reference) Kind() string { return KindReference }

// Expand renders the heading and one markdown bullet per documented prop.
func (r *Reference) Expand() component.Node {
	root := component.Div(
		component.Class("api-docs", "mt-5"),
		component.H4(component.Text("Keyword arguments for " + r.Name)),
	)
	if r.Metadata != nil && r.Metadata.Description != "" {
		root.With(component.P(component.Markdown(flatten(r.Metadata.Description))))
	}
	if md := r.Markdown(); md != "" {
		root.With(component.Markdown(md))
	}
	return root
}

// Markdown returns the prop list as a markdown bullet list.
func (r *Reference) Markdown() string {
	if r.Metadata == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Metadata.Props {
		if hiddenProps[p.Name] {
			continue
		}
		b.WriteString(PropLine(p))
		b.WriteByte('\n')
	}
	return b.String()
}

// PropLine formats one prop, for example:
//
//	- **size** (_string_; optional): The spinner size.
func PropLine(p metadata.Prop) string {
	var details []string
	if t := FormatType(p.Type); t != "" {
		details = append(details, "_"+t+"_")
	}
	if p.Required {
		details = append(details, "required")
	} else {
		details = append(details, "optional")
	}
	if p.DefaultValue != nil && !p.DefaultValue.Computed && p.DefaultValue.Value != "" {
		details = append(details, fmt.Sprintf("default `%s`", p.DefaultValue.Value))
	}

	line := fmt.Sprintf("- **%s** (%s)", p.Name, strings.Join(details, "; "))
	if desc := flatten(p.Description); desc != "" {
		line += ": " + desc
	}
	return line
}

func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
