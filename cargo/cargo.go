package cargo

import (
	// Internal
	"github.com/yididiel7/fresh/errs"
	"github.com/yididiel7/fresh/shell"
)

// LockFilename is the lock artifact regenerated as a side effect of a build.
// It is never parsed, only committed alongside the manifest.
const LockFilename = "Cargo.lock"

// BuildTool runs the cargo executable. It is the build system capability
// of the release flow.
type BuildTool struct{}

// RefreshLock regenerates Cargo.lock by running a quiet build.
func (BuildTool) RefreshLock() error {
	task := "Run 'cargo build' to refresh " + LockFilename
	_, stderr, err := shell.Run("cargo", "build", "--quiet")
	if err != nil {
		return errs.NewErrorWithHint(task, err, stderr.String())
	}
	return nil
}
