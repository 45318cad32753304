package spinner

import (
	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/component/bootstrap"
)

func sizeSpinners() component.Node {
	return component.Div(
		bootstrap.Spinner(bootstrap.SpinnerProps{Size: "sm"}),
		component.Hr(),
		bootstrap.Spinner(bootstrap.SpinnerProps{
			SpinnerStyle: component.Style{"width": "3rem", "height": "3rem"},
		}),
	)
}
