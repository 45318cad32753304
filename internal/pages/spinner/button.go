package spinner

import (
	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/component/bootstrap"
)

func buttonSpinners() component.Node {
	return component.Div(
		bootstrap.Button(
			bootstrap.ButtonProps{Color: "primary", Disabled: true, ClassName: "mr-1"},
			bootstrap.Spinner(bootstrap.SpinnerProps{Size: "sm"}),
			component.Text(" Loading..."),
		),
		bootstrap.Button(
			bootstrap.ButtonProps{Color: "primary", Disabled: true},
			bootstrap.Spinner(bootstrap.SpinnerProps{Size: "sm", Type: "grow"}),
			component.Text(" Loading..."),
		),
	)
}
