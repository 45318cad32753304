package spinner

import (
	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/component/bootstrap"
)

func simpleSpinners() component.Node {
	return component.Div(
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "primary"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "secondary"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "success"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "warning"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "danger"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "info"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "light"}),
		bootstrap.Spinner(bootstrap.SpinnerProps{Color: "dark"}),
	)
}
