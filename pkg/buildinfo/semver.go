package buildinfo

import (
	"github.com/Masterminds/semver/v3"
)

// Parsed returns the parsed semantic version, or nil if unparseable.
func Parsed() *semver.Version {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil
	}
	return v
}

// IsDevBuild returns true if this is a development build (no valid semver).
func IsDevBuild() bool {
	return Parsed() == nil
}

// Compare compares version a to version b.
// Returns: -1 if a < b, 0 if equal, 1 if a > b.
// Returns 0 if either version is unparseable.
func Compare(a, b string) int {
	av, err := semver.NewVersion(a)
	if err != nil {
		return 0
	}
	bv, err := semver.NewVersion(b)
	if err != nil {
		return 0
	}
	return av.Compare(bv)
}

// IsNewer returns true if candidate is a newer version than current.
// Returns false if either version is unparseable.
func IsNewer(candidate, current string) bool {
	return Compare(candidate, current) > 0
}
