// Package bootstrap builds Bootstrap-styled component markup for page examples.
package bootstrap

import (
	"slices"

	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/normalization"
)

// ContextualColors are the theme colors that map to text-* utility classes.
var ContextualColors = []string{"primary", "secondary", "success", "warning", "danger", "info", "light", "dark"}

var (
	spinnerTypes = normalization.New("spinner type", map[string]string{"border": "border", "grow": "grow"}, "border")
	spinnerSizes = normalization.New("spinner size", map[string]bool{"sm": true}, false)
)

// SpinnerProps mirrors the keyword arguments of the Spinner component.
type SpinnerProps struct {
	ID string
	// Color is a contextual color name or any CSS color value.
	Color string
	// Type is "border" (default) or "grow".
	Type string
	// Size "sm" renders a small spinner. Other values fall back to the default size.
	Size      string
	ClassName string
	Style     component.Style
	// SpinnerStyle and SpinnerClassName apply to the spinner itself when it
	// wraps children. Without children they are merged into the spinner.
	SpinnerStyle     component.Style
	SpinnerClassName string
}

// Spinner returns the markup for a spinner. With children it behaves as a
// loading wrapper: a full-width container with vertical margin holds the
// spinner, followed by the children it stands in for.
func Spinner(p SpinnerProps, children ...component.Node) *component.Element {
	kind := spinnerTypes.Normalize(p.Type)
	classes := []string{"spinner-" + kind}
	if spinnerSizes.Normalize(p.Size) {
		classes = append(classes, "spinner-"+kind+"-sm")
	}
	style := component.Style{}
	switch {
	case p.Color == "":
	case slices.Contains(ContextualColors, p.Color):
		classes = append(classes, "text-"+p.Color)
	default:
		style["color"] = p.Color
	}

	spinner := component.Div(
		component.Class(classes...),
		component.Attr("role", "status"),
		component.Styles(style),
		component.Span(component.Class("sr-only"), component.Text("Loading...")),
	)

	if len(children) == 0 {
		return spinner.With(
			component.ID(p.ID),
			component.Class(p.ClassName, p.SpinnerClassName),
			component.Styles(p.Style),
			component.Styles(p.SpinnerStyle),
		)
	}

	spinner.With(component.Class(p.SpinnerClassName), component.Styles(p.SpinnerStyle))

	overlay := component.Div(
		component.Class("d-flex", "justify-content-center", "my-3", "w-100"),
		component.Attr("data-spinner-overlay", ""),
		spinner,
	)
	return component.Div(
		component.ID(p.ID),
		component.Class(p.ClassName),
		component.Styles(p.Style),
		component.Attr("data-loading-wrapper", ""),
		overlay,
		component.Children(children...),
	)
}
