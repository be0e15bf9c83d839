package release

import (
	// Stdlib
	"fmt"
	"strings"

	// Internal
	"github.com/yididiel7/fresh/asciiart"
	"github.com/yididiel7/fresh/cargo"
	"github.com/yididiel7/fresh/errs"
	"github.com/yididiel7/fresh/log"
	"github.com/yididiel7/fresh/manifest"
	"github.com/yididiel7/fresh/notes"
	"github.com/yididiel7/fresh/version"

	// Vendor
	"github.com/fatih/color"
)

// DefaultRemote is the remote the release branch and tag are pushed to.
const DefaultRemote = "origin"

const commitMessageFormat = "Bump version to %v"

// VersionControl is the subset of git operations the bump flow drives.
// The outputs are treated as opaque except for the single-line branch
// and ref names, which are expected to be trimmed already.
type VersionControl interface {
	EnsureInstalled() error
	CurrentBranch() (string, error)
	Diff(paths ...string) (string, error)
	ChangesRootRef() (string, error)
	Add(paths ...string) error
	Commit(message string) error
	Tag(name string) error
	TagAnnotated(name, message string) error
	Push(remote string, refs ...string) error
}

// BuildSystem regenerates the lock artifact after the manifest was rewritten.
type BuildSystem interface {
	RefreshLock() error
}

// Prompter asks the operator a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

var (
	colorHeader  = color.New(color.FgBlue)
	colorOld     = color.New(color.FgYellow)
	colorNew     = color.New(color.FgGreen)
	colorWarn    = color.New(color.FgYellow)
	colorCmd     = color.New(color.FgYellow)
	colorSuccess = color.New(color.FgGreen)
)

// Flow bundles the collaborators driving a version bump release.
type Flow struct {
	VC     VersionControl
	Build  BuildSystem
	Prompt Prompter

	// Dir is the directory holding the manifest and the release notes.
	// An empty string means the current working directory.
	Dir string

	// Remote overrides DefaultRemote when set.
	Remote string
}

// Run executes the bump flow for the given bump class. The flow is strictly
// linear: parse, compute, confirm, rewrite the manifest, refresh the lock,
// show the diff, load the notes, confirm again, then commit, tag and push.
//
// A nil error is returned both on full success and when the operator declines
// one of the confirmations; declining is a clean abort, not a failure.
func (flow *Flow) Run(class version.BumpClass) error {
	remote := flow.Remote
	if remote == "" {
		remote = DefaultRemote
	}

	// Load the manifest. This happens before anything else so that
	// a missing manifest or version line leaves the working tree intact.
	m, err := manifest.Load(flow.Dir)
	if err != nil {
		return err
	}

	current := m.Version()
	next := current.Bump(class)

	colorHeader.Printf("Version Bump (%v)\n", class)
	fmt.Println(strings.Repeat("━", 40))
	fmt.Printf("Current version: %v\n", colorOld.Sprint(current))
	fmt.Printf("New version:     %v\n", colorNew.Sprint(next))
	fmt.Println()

	confirmed, err := flow.Prompt.Confirm(
		fmt.Sprintf("Bump %v version %v -> %v?", class, current, next))
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	// Rewrite the manifest.
	task := fmt.Sprintf("Update %v", manifest.Filename)
	log.Run(task)
	if err := m.Rewrite(next); err != nil {
		return errs.NewError(task, err)
	}
	log.Ok(task)

	// Refresh the lock artifact. Failures here are advisory, the build tool
	// may well be complaining about something unrelated to the lock file.
	task = fmt.Sprintf("Refresh %v (running the build tool)", cargo.LockFilename)
	log.Run(task)
	if err := flow.Build.RefreshLock(); err != nil {
		log.Warn(task + " failed (this might be normal)")
		errs.Log(err)
	} else {
		log.Ok(task)
	}

	// Show the diff of the two mutated files (best-effort).
	diff, err := flow.VC.Diff(manifest.Filename, cargo.LockFilename)
	if err != nil {
		log.Warn("Could not compute the diff")
		errs.Log(err)
	} else {
		fmt.Println()
		fmt.Println("Git diff:")
		fmt.Println(diff)
	}

	if ref, err := flow.VC.ChangesRootRef(); err == nil && ref != "" {
		fmt.Printf("This release collects the changes since %v.\n", colorOld.Sprint(ref))
	}
	fmt.Println()

	// Check for release notes to be attached to the tag.
	content, notesFound, err := notes.Load(flow.Dir)
	if err != nil {
		return err
	}
	if notesFound {
		colorHeader.Printf("Found %v, the release tag will carry it.\n", notes.Filename)
	} else {
		colorWarn.Printf("Warning: %v not found. The tag will not include release notes.\n",
			notes.Filename)
	}

	tag := next.ReleaseTagString()
	confirmed, err = flow.Prompt.Confirm(fmt.Sprintf("Commit, tag, and push %v?", tag))
	if err != nil {
		return err
	}
	if !confirmed {
		flow.printManualCommands(next, notesFound)
		return nil
	}

	// A missing git executable deserves its own clearly labeled error,
	// so check for it before running the first git command.
	if err := flow.VC.EnsureInstalled(); err != nil {
		return err
	}

	task = "Get the current branch"
	branch, err := flow.VC.CurrentBranch()
	if err != nil {
		return errs.NewError(task, err)
	}

	task = "Commit the version bump"
	log.Run(task)
	if err := flow.VC.Add(manifest.Filename, cargo.LockFilename); err != nil {
		return errs.NewError(task, err)
	}
	if err := flow.VC.Commit(fmt.Sprintf(commitMessageFormat, next)); err != nil {
		return errs.NewError(task, err)
	}
	log.Ok(task)

	task = fmt.Sprintf("Create tag '%v'", tag)
	log.Run(task)
	if notesFound {
		err = flow.VC.TagAnnotated(tag, content)
	} else {
		err = flow.VC.Tag(tag)
	}
	if err != nil {
		return errs.NewError(task, err)
	}
	log.Ok(task)

	task = fmt.Sprintf("Push branch '%v' and tag '%v' to '%v'", branch, tag, remote)
	log.Run(task)
	if err := flow.VC.Push(remote, branch); err != nil {
		return errs.NewError(task, err)
	}
	if err := flow.VC.Push(remote, tag); err != nil {
		return errs.NewError(task, err)
	}
	log.Ok(task)

	asciiart.PrintThumbsUp()
	fmt.Println()
	colorSuccess.Printf("Version %v released!\n", next)
	fmt.Println()
	fmt.Println("The release workflow will automatically create a release from the tag.")
	fmt.Println("Once it completes, publish the npm package manually:")
	fmt.Printf("  %v\n", colorCmd.Sprintf(
		"npm publish https://github.com/yididiel7/fresh/releases/download/%v/fresh-editor-npm-package.tar.gz",
		tag))
	return nil
}

// printManualCommands tells the operator how to finish the release by hand.
// The manifest and the lock file are already updated at this point, only the
// git operations are left.
func (flow *Flow) printManualCommands(ver *version.Version, notesFound bool) {
	tag := ver.ReleaseTagString()

	fmt.Println()
	colorWarn.Println("Changes made but not committed.")
	fmt.Println()
	fmt.Println("To complete the release manually:")
	fmt.Printf("  1. Commit changes: %v\n", colorCmd.Sprintf(
		"git add %v %v && git commit -m 'Bump version to %v'",
		manifest.Filename, cargo.LockFilename, ver))
	if notesFound {
		fmt.Printf("  2. Create tag:     %v\n", colorCmd.Sprintf(
			"git tag -a %v -F %v", tag, notes.Filename))
	} else {
		fmt.Printf("  2. Create tag:     %v\n", colorCmd.Sprintf("git tag %v", tag))
	}
	fmt.Printf("  3. Push:           %v\n", colorCmd.Sprintf(
		"git push && git push origin %v", tag))
}
