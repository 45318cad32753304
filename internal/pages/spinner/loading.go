package spinner

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/componentdocs/internal/app"
	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/component/bootstrap"
)

var loadDelay = time.Second

func loadingSpinner(a *app.App) (component.Node, error) {
	layout := component.Div(
		bootstrap.Button(bootstrap.ButtonProps{ID: "loading-button"}, component.Text("Load")),
		bootstrap.Spinner(bootstrap.SpinnerProps{}, component.Div(component.ID("loading-output"))),
	)

	err := a.Callback(
		app.Output("loading-output", "children"),
		[]app.Dependency{app.Input("loading-button", "n_clicks")},
		loadOutput,
	)
	if err != nil {
		return nil, err
	}
	return layout, nil
}

func loadOutput(ctx context.Context, inputs []any) (any, error) {
	n := app.IntInput(inputs, 0)
	if n == 0 {
		return "Output not reloaded yet", nil
	}

	select {
	case <-time.After(loadDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return fmt.Sprintf("Output loaded %d times", n), nil
}
