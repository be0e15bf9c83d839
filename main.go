package main

import (
	// Stdlib
	"fmt"
	"os"
	"os/signal"

	// Internal
	"github.com/yididiel7/fresh/app/appflags"
	bumpCmd "github.com/yididiel7/fresh/commands/bump"
	versionCmd "github.com/yididiel7/fresh/commands/version"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

const version = "1.0.0"

func main() {
	// Initialise the application.
	bump := gocli.NewApp("bump-version")
	bump.UsageLine = "bump-version [-log LEVEL] [patch|minor|major]"
	bump.Short = "interactive version bump and release helper"
	bump.Version = version
	bump.Long = `
  bump-version reads the project version from Cargo.toml, bumps it
  (patch by default), refreshes Cargo.lock by running cargo build and
  then walks the operator through committing, tagging and pushing
  the release.

  Examples:
    bump-version           bump the patch version: 0.1.0 -> 0.1.1
    bump-version patch     bump the patch version: 0.1.0 -> 0.1.1
    bump-version minor     bump the minor version: 0.1.0 -> 0.2.0
    bump-version major     bump the major version: 0.1.0 -> 1.0.0`

	// The bump flow is the root action so that the bump class can be
	// passed directly as the only argument.
	bump.Action = bumpCmd.Run

	// Register global flags.
	appflags.RegisterGlobalFlags(&bump.Flags)

	// Register subcommands.
	bump.MustRegisterSubcommand(versionCmd.Command)

	// Start processing signals.
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt)
	go catchSignals(signalCh)

	// Run the application.
	bump.Run(os.Args[1:])
}

func catchSignals(ch chan os.Signal) {
	<-ch
	fmt.Print(`
+-----------------------------------------------------+
| Signal received, the child processes were notified. |
| Send the signal again to exit immediately.          |
+-----------------------------------------------------+
	`)
	signal.Stop(ch)
}
