// Package semver parses, formats and bumps the vMAJOR.MINOR.PATCH release
// versions used for git tags.
package semver

import (
	"errors"
	"fmt"
	"strings"

	mm "github.com/Masterminds/semver/v3"
	modsemver "golang.org/x/mod/semver"
)

var (
	// ErrInvalidVersionFormat is returned for text that is not a semantic
	// version.
	ErrInvalidVersionFormat = errors.New("invalid version format")
	// ErrInvalidBumpTarget is returned for a bump argument that is neither a
	// bump keyword nor an explicit version.
	ErrInvalidBumpTarget = errors.New("invalid bump target")
)

// Zero is the version assumed when a repository has no tags yet.
var Zero = New(0, 0, 0)

// Version is a semantic version. The numeric triple is kept without the
// "v" prefix; String always renders it with the prefix. Pre-release and
// build metadata are passed through untouched.
type Version struct {
	sv *mm.Version
}

// New builds a plain MAJOR.MINOR.PATCH version.
func New(major, minor, patch uint64) Version {
	return Version{sv: mm.New(major, minor, patch, "", "")}
}

// Parse parses prefix-free text such as "1.2.3" or "3.0.0-rc1".
func Parse(text string) (Version, error) {
	sv, err := mm.StrictNewVersion(text)
	if err != nil {
		return Version{}, fmt.Errorf("%w %q: %v", ErrInvalidVersionFormat, text, err)
	}
	return Version{sv: sv}, nil
}

// ParseTag parses a tag name such as "v1.2.3". The leading "v" is required.
func ParseTag(tag string) (Version, error) {
	if !strings.HasPrefix(tag, "v") || !modsemver.IsValid(tag) {
		return Version{}, fmt.Errorf("%w %q: expected vX.Y.Z", ErrInvalidVersionFormat, tag)
	}
	return Parse(tag[1:])
}

// Format renders v as a tag name.
func Format(v Version) string {
	return v.String()
}

func (v Version) core() *mm.Version {
	if v.sv == nil {
		return Zero.sv
	}
	return v.sv
}

func (v Version) Major() uint64 { return v.core().Major() }
func (v Version) Minor() uint64 { return v.core().Minor() }
func (v Version) Patch() uint64 { return v.core().Patch() }

// Prerelease returns the pre-release identifier without the leading "-".
func (v Version) Prerelease() string { return v.core().Prerelease() }

// String renders the version with its "v" prefix.
func (v Version) String() string {
	return "v" + v.core().String()
}

// Compare returns -1, 0 or 1 following semantic version precedence.
func (v Version) Compare(other Version) int {
	return v.core().Compare(other.core())
}

// Equal reports whether v and other have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less reports whether v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// MarshalText renders the tag form, so versions print as "v1.2.3" in JSON
// and toon output.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
