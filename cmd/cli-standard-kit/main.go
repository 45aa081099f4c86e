package main

import (
	"github.com/alecthomas/kong"

	"github.com/c3nk/cli-standard-kit/directories"
	"github.com/c3nk/cli-standard-kit/scaffold"
)

func main() {
	var cli struct {
		Init   scaffold.InitProjectCmd `cmd:"" name:"init" help:"Create a new CLI project from the standard cookiecutter template."`
		Layout directories.LayoutCmd   `cmd:"" name:"layout" help:"Create the standard inputs/outputs/logs directory layout."`
	}

	ctx := kong.Parse(
		&cli,
		kong.Name("cli-standard-kit"),
		kong.Description("Shared toolkit for standardized CLI projects."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
