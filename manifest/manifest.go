package manifest

import (
	// Stdlib
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	// Internal
	"github.com/yididiel7/fresh/errs"
	"github.com/yididiel7/fresh/version"
)

// Filename is the manifest file holding the canonical project version.
const Filename = "Cargo.toml"

// versionLineRegexp matches the version line of the manifest. Only the first
// match is considered, which is the version of the package itself; dependency
// sections may contain version lines of their own.
var versionLineRegexp = regexp.MustCompile(`(?m)^version = "(.*)"`)

var ErrVersionNotFound = errors.New("version line not found in " + Filename)

// Manifest is the manifest file loaded into memory, together with the exact
// byte span of the version string so that Rewrite can replace just that and
// leave every other byte of the file intact.
type Manifest struct {
	path    string
	content []byte
	version *version.Version

	spanStart int
	spanEnd   int
}

// Load reads the manifest in the given directory and locates the version
// line. An empty dir means the current working directory.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, Filename)

	task := fmt.Sprintf("Read manifest file '%v'", path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	task = fmt.Sprintf("Locate the version line in '%v'", path)
	match := versionLineRegexp.FindSubmatchIndex(content)
	if match == nil {
		return nil, errs.NewError(task, ErrVersionNotFound)
	}

	task = fmt.Sprintf("Parse the version string stored in '%v'", path)
	ver, err := version.Parse(string(content[match[2]:match[3]]))
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	return &Manifest{
		path:      path,
		content:   content,
		version:   ver,
		spanStart: match[2],
		spanEnd:   match[3],
	}, nil
}

func (m *Manifest) Path() string {
	return m.path
}

func (m *Manifest) Version() *version.Version {
	return m.version
}

// Rewrite replaces the version string in the version line with the given
// version and writes the manifest back to disk.
func (m *Manifest) Rewrite(ver *version.Version) error {
	task := fmt.Sprintf("Write version %v into '%v'", ver, m.path)

	versionString := ver.String()
	content := make([]byte, 0, len(m.content)+len(versionString))
	content = append(content, m.content[:m.spanStart]...)
	content = append(content, versionString...)
	content = append(content, m.content[m.spanEnd:]...)

	info, err := os.Stat(m.path)
	if err != nil {
		return errs.NewError(task, err)
	}
	if err := os.WriteFile(m.path, content, info.Mode()); err != nil {
		return errs.NewError(task, err)
	}

	m.content = content
	m.spanEnd = m.spanStart + len(versionString)
	m.version = ver.Clone()
	return nil
}
