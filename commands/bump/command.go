package bumpCmd

import (
	// Stdlib
	"os"

	// Internal
	"github.com/yididiel7/fresh/app"
	"github.com/yididiel7/fresh/cargo"
	"github.com/yididiel7/fresh/errs"
	"github.com/yididiel7/fresh/git"
	"github.com/yididiel7/fresh/prompt"
	"github.com/yididiel7/fresh/release"
	"github.com/yididiel7/fresh/version"

	// Other
	"gopkg.in/tchap/gocli.v2"
)

// Run is the application root action. The bump class is the only positional
// argument and it is optional, so this is not registered as a subcommand;
// 'bump-version minor' invokes it directly.
func Run(cmd *gocli.Command, args []string) {
	if len(args) > 1 {
		cmd.Usage()
		os.Exit(2)
	}

	class := version.BumpPatch
	if len(args) == 1 {
		var err error
		class, err = version.ParseBumpClass(args[0])
		if err != nil {
			cmd.Usage()
			os.Exit(2)
		}
	}

	app.Init()

	if err := runMain(class); err != nil {
		errs.Fatal(err)
	}
}

func runMain(class version.BumpClass) error {
	flow := &release.Flow{
		VC:     git.Tool{},
		Build:  cargo.BuildTool{},
		Prompt: prompt.Prompter{},
	}
	return flow.Run(class)
}
