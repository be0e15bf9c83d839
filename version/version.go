package version

import (
	// Stdlib
	"fmt"

	// Vendor
	"github.com/blang/semver/v4"
)

// BumpClass determines which version component is incremented
// and which lower components are reset to zero.
type BumpClass string

const (
	BumpPatch BumpClass = "patch"
	BumpMinor BumpClass = "minor"
	BumpMajor BumpClass = "major"
)

// ParseBumpClass validates the given string against the recognized
// bump classes.
func ParseBumpClass(value string) (BumpClass, error) {
	switch class := BumpClass(value); class {
	case BumpPatch, BumpMinor, BumpMajor:
		return class, nil
	}
	return "", fmt.Errorf("invalid bump class: %v", value)
}

type Version struct {
	semver.Version
}

func Parse(versionString string) (*Version, error) {
	v, err := semver.Parse(versionString)
	if err != nil {
		return nil, err
	}
	return &Version{v}, nil
}

func (v *Version) Clone() *Version {
	return &Version{v.Version}
}

// Bump returns the next version for the given bump class.
// Pre-release and build metadata are dropped.
func (v *Version) Bump(class BumpClass) *Version {
	switch class {
	case BumpMinor:
		return v.IncrementMinor()
	case BumpMajor:
		return v.IncrementMajor()
	default:
		return v.IncrementPatch()
	}
}

func (v *Version) IncrementPatch() *Version {
	return &Version{semver.Version{
		Major: v.Major,
		Minor: v.Minor,
		Patch: v.Patch + 1,
	}}
}

func (v *Version) IncrementMinor() *Version {
	return &Version{semver.Version{
		Major: v.Major,
		Minor: v.Minor + 1,
	}}
}

func (v *Version) IncrementMajor() *Version {
	return &Version{semver.Version{
		Major: v.Major + 1,
	}}
}

func (v *Version) ReleaseTagString() string {
	return "v" + v.String()
}

// Set implements flag.Value interface.
func (v *Version) Set(versionString string) error {
	ver, err := Parse(versionString)
	if err != nil {
		return err
	}
	v.Version = ver.Version
	return nil
}
