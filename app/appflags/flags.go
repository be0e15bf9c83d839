package appflags

import (
	// Stdlib
	"flag"

	// Internal
	flags "github.com/yididiel7/fresh/flag"
	"github.com/yididiel7/fresh/log"
)

var FlagLog *flags.StringEnumFlag = flags.NewStringEnumFlag(
	log.LevelStrings(), log.MustLevelToString(log.Info))

func RegisterGlobalFlags(flags *flag.FlagSet) {
	flags.Var(FlagLog, "log", "set logging verbosity; {trace|debug|verbose|info|off}")
}
