package main

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/targetcheck/cmd/targetcheck/commands"
	tcerrors "git.home.luguber.info/inful/targetcheck/internal/errors"
	"git.home.luguber.info/inful/targetcheck/internal/version"
)

func main() {
	var cli commands.CLI

	ctx := kong.Parse(&cli,
		kong.Name("targetcheck"),
		kong.Description("Verify the build target configuration of a CMake project."),
		kong.UsageOnError(),
		kong.Vars{"version": versionString()},
	)

	global := &commands.Global{Logger: slog.Default()}

	if err := ctx.Run(global, &cli); err != nil {
		// HandleError prints the formatted message and exits non-zero.
		tcerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}

func versionString() string {
	return fmt.Sprintf("%s (commit %s, built %s)",
		version.Version, version.GitCommit, version.BuildTime)
}
