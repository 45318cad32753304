package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/componentdocs/cmd/componentdocs/commands"
	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
	"git.home.luguber.info/inful/componentdocs/internal/version"
)

func main() {
	cli := &commands.CLI{}
	global := &commands.Global{}
	ctx := kong.Parse(cli,
		kong.Name("componentdocs"),
		kong.Description("Render and preview the Spinner component documentation page."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)

	global.Logger = slog.Default()
	if err := ctx.Run(global, cli); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err)
	}
}
