// Package spinner assembles the documentation page for the Spinner component.
package spinner

import (
	"git.home.luguber.info/inful/componentdocs/internal/apidoc"
	"git.home.luguber.info/inful/componentdocs/internal/app"
	"git.home.luguber.info/inful/componentdocs/internal/component"
	"git.home.luguber.info/inful/componentdocs/internal/docpage"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/metadata"
)

const (
	// Name identifies the page in URLs and logs.
	Name = "spinner"
	// Title is the document title.
	Title = "Spinners"
	// MetadataPath is the component implementation the API reference documents.
	MetadataPath = "src/components/Spinner.js"
	// ComponentName is the display name used in the API reference.
	ComponentName = "Spinner"
)

// GetContent returns the page as an ordered list of nodes. The loading example
// registers its callback on a, so a must not be nil. A fresh list is built on
// every call.
func GetContent(a *app.App, src *Sources, meta metadata.Lookup) ([]component.Node, error) {
	if src == nil {
		return nil, errors.InternalError("spinner page needs example sources").Build()
	}
	if meta == nil {
		return nil, errors.InternalError("spinner page needs a metadata lookup").Build()
	}

	loading, err := loadingSpinner(a)
	if err != nil {
		return nil, err
	}
	spinnerMeta, err := meta.Component(MetadataPath)
	if err != nil {
		return nil, err
	}

	return []component.Node{
		component.H2(component.Class("display-4"), component.Text("Spinners")),
		component.P(
			component.Class("lead"),
			component.Markdown("Indicate the loading state of a component or page with the `Spinner` component."),
		),
		component.P(component.Markdown(
			"The `Spinner` component can be used either to create a standalone spinner, " +
				"or used in the same way as [dcc.Loading](https://dash.plot.ly/dash-core-components/loading) " +
				"by passing children.",
		)),
		component.H4(component.Text("Basic usage")),
		component.P(component.Markdown(
			"To create a simple spinner, just add `dbc.Spinner()` to your layout. " +
				"By default, `Spinner` uses the current text color for its border color. " +
				"Override the color of the `Spinner` using the `color` argument and one of " +
				"the eight supported contextual color names.",
		)),
		docpage.ExampleContainer(simpleSpinners()),
		docpage.HighlightedSource(src.Get(SourceSimple)),

		component.H4(component.Text("Loading component")),
		component.P(component.Markdown(
			"If you pass children to `dbc.Spinner`, it will behave like `dcc.Loading`, " +
				"which is to say it will render a spinner until the children component have loaded.",
		)),
		component.P(component.Markdown(
			"The spinner is rendered inside a `html.Div`. The `html.Div` that the spinner is " +
				"rendered in will expand to fill the available width, and add a top and bottom " +
				"margin. This can be overridden using `spinner_style` or `spinnerClassName`.",
		)),
		docpage.ExampleContainer(loading),
		docpage.HighlightedSource(src.Get(SourceLoading)),

		component.H4(component.Text("Growing spinners")),
		component.P(component.Markdown(
			"There are two types of spinner, border and grow. Border spinners are the default " +
				"and can be seen above. To use grow spinners set `type=\"grow\"`.",
		)),
		docpage.ExampleContainer(growSpinners()),
		docpage.HighlightedSource(src.Get(SourceGrow)),

		component.H4(component.Text("Size")),
		component.P(component.Markdown(
			"Create a small spinner with `size=\"sm\"` or use inline style arguments for full " +
				"control of the size of the spinner.",
		)),
		docpage.ExampleContainer(sizeSpinners()),
		docpage.HighlightedSource(src.Get(SourceSize)),

		component.H4(component.Text("Buttons")),
		component.P(component.Markdown(
			"The `Spinner` component can be used inside buttons to indicate that an action " +
				"is currently processing or taking place.",
		)),
		docpage.ExampleContainer(buttonSpinners()),
		docpage.HighlightedSource(src.Get(SourceButton)),

		apidoc.New(spinnerMeta, ComponentName),
	}, nil
}
