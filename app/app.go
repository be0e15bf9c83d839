package app

import (
	// Internal
	"github.com/yididiel7/fresh/app/appflags"
	"github.com/yididiel7/fresh/log"
)

// Init sets up the global application state according to the global flags.
// It must be called at the beginning of every command action.
func Init() {
	log.SetV(log.MustStringToLevel(appflags.FlagLog.Value()))
}
