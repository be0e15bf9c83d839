package git

import (
	// Stdlib
	"errors"
	"strings"

	// Internal
	"github.com/yididiel7/fresh/errs"
	"github.com/yididiel7/fresh/git/gitutil"
	"github.com/yididiel7/fresh/shell"
)

// ErrNotInstalled is returned when the git executable cannot be found.
var ErrNotInstalled = errors.New("git executable not found")

// EnsureInstalled makes sure the git executable is present in PATH.
func EnsureInstalled() error {
	task := "Make sure the git executable is available"
	if err := shell.Installed("git"); err != nil {
		hint := "Install git and make sure it can be found in PATH, then try again.\n"
		return errs.NewErrorWithHint(task, ErrNotInstalled, hint)
	}
	return nil
}

func Add(paths ...string) error {
	_, err := gitutil.RunCommand("add", paths...)
	return err
}

func Commit(message string) error {
	_, err := gitutil.RunCommand("commit", "-m", message)
	return err
}

func Tag(name string) error {
	_, err := gitutil.RunCommand("tag", name)
	return err
}

func TagAnnotated(name, message string) error {
	_, err := gitutil.RunCommand("tag", "-a", name, "-m", message)
	return err
}

func Push(remote string, refs ...string) error {
	argsList := make([]string, 2, 2+len(refs))
	argsList[0], argsList[1] = "push", remote
	argsList = append(argsList, refs...)
	_, err := gitutil.Run(argsList...)
	return err
}

func Diff(paths ...string) (string, error) {
	stdout, err := gitutil.RunCommand("diff", paths...)
	if err != nil {
		return "", err
	}
	return stdout.String(), nil
}

func CurrentBranch() (string, error) {
	stdout, err := gitutil.Run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// LatestTag returns the most recent tag reachable from HEAD.
func LatestTag() (string, error) {
	stdout, err := gitutil.RunCommand("describe", "--tags", "--abbrev=0")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

// RootCommit returns the hexsha of the repository root commit.
func RootCommit() (string, error) {
	stdout, err := gitutil.RunCommand("rev-list", "--max-parents=0", "HEAD")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(strings.TrimSpace(stdout.String()), "\n")
	return strings.TrimSpace(line), nil
}

// ChangesRootRef returns the ref the next release collects the changes from,
// i.e. the latest tag, or the root commit when the repository is not tagged yet.
func ChangesRootRef() (string, error) {
	tag, err := LatestTag()
	if err == nil {
		return tag, nil
	}
	return RootCommit()
}

// Tool exposes the package functions as a value so that they can be plugged
// into the release flow as its version control capability.
type Tool struct{}

func (Tool) EnsureInstalled() error {
	return EnsureInstalled()
}

func (Tool) Add(paths ...string) error {
	return Add(paths...)
}

func (Tool) Commit(message string) error {
	return Commit(message)
}

func (Tool) Tag(name string) error {
	return Tag(name)
}

func (Tool) TagAnnotated(name, message string) error {
	return TagAnnotated(name, message)
}

func (Tool) Push(remote string, refs ...string) error {
	return Push(remote, refs...)
}

func (Tool) Diff(paths ...string) (string, error) {
	return Diff(paths...)
}

func (Tool) CurrentBranch() (string, error) {
	return CurrentBranch()
}

func (Tool) ChangesRootRef() (string, error) {
	return ChangesRootRef()
}
