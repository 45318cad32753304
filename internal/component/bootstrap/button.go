package bootstrap

import (
	"strconv"

	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/normalization"
)

var buttonSizes = normalization.New("button size", map[string]string{"sm": "btn-sm", "lg": "btn-lg"}, "")

// ButtonProps mirrors the keyword arguments of the Button component.
type ButtonProps struct {
	ID string
	// Color is a contextual color name or "link". Defaults to "secondary".
	Color     string
	Outline   bool
	Size      string
	Disabled  bool
	ClassName string
	Style     component.Style
	// NClicks seeds the click counter sent with callback requests.
	NClicks int
}

// Button returns the markup for a Bootstrap button.
func Button(p ButtonProps, children ...component.Node) *component.Element {
	color := p.Color
	if color == "" {
		color = "secondary"
	}
	variant := "btn-" + color
	if p.Outline {
		variant = "btn-outline-" + color
	}

	args := []component.Arg{
		component.ID(p.ID),
		component.Class("btn", variant),
		component.Attr("type", "button"),
		component.Attr("data-n-clicks", strconv.Itoa(p.NClicks)),
		component.Styles(p.Style),
	}
	args = append(args, component.Class(buttonSizes.Normalize(p.Size)))
	if p.Disabled {
		args = append(args, component.Class("disabled"), component.Attr("disabled", ""))
	}
	args = append(args, component.Class(p.ClassName), component.Children(children...))
	return component.El("button", args...)
}
