package versionCmd

import (
	// Stdlib
	"fmt"
	"os"

	// Internal
	"github.com/yididiel7/fresh/app"
	"github.com/yididiel7/fresh/app/appflags"
	"github.com/yididiel7/fresh/errs"
	"github.com/yididiel7/fresh/manifest"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

var Command = &gocli.Command{
	UsageLine: "version",
	Short:     "print the current project version",
	Long: `
  Print the project version as stored in the manifest file.

  To check the version of bump-version itself, use -version.
	`,
	Action: run,
}

func init() {
	// Register global flags.
	appflags.RegisterGlobalFlags(&Command.Flags)
}

func run(cmd *gocli.Command, args []string) {
	if len(args) != 0 {
		cmd.Usage()
		os.Exit(2)
	}

	app.Init()

	m, err := manifest.Load("")
	if err != nil {
		errs.Fatal(err)
	}

	fmt.Println(m.Version())
}
