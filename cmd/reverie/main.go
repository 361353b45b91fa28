package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/reverie/cmd/reverie/commands"
	foundationerrors "git.home.luguber.info/inful/reverie/internal/foundation/errors"
	"git.home.luguber.info/inful/reverie/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("reverie"),
		kong.Description("Build the content layer of a bilingual personal blog."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version + " (" + version.GitCommit + ", " + version.BuildTime + ")"},
	)
	if err := ctx.Run(&commands.Global{}, cli); err != nil {
		foundationerrors.NewCLIErrorAdapter(cli.Verbose, nil).HandleError(err)
	}
}
