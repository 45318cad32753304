package spinner

import (
	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/component/bootstrap"
)

func growSpinners() component.Node {
	return component.Div(
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "primary", Type: "grow"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "secondary", Type: "grow"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "success", Type: "grow"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "warning", Type: "grow"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "danger", Type: "grow"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "info", Type: "grow"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "light", Type: "grow"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "dark", Type: "grow"}),
	)
}
