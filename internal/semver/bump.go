package semver

import "strings"

// BumpKind selects which part of a version a release changes.
type BumpKind int

const (
	BumpMajor BumpKind = iota + 1
	BumpMinor
	BumpPatch
	BumpExplicit
)

func (k BumpKind) String() string {
	switch k {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpPatch:
		return "patch"
	case BumpExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// BumpTarget is the parsed form of the release argument. Version is only
// set for BumpExplicit.
type BumpTarget struct {
	Kind    BumpKind
	Version Version
}

// TargetError reports a release argument that could not be understood. It
// matches ErrInvalidBumpTarget with errors.Is, and additionally
// ErrInvalidVersionFormat when the argument looked like an explicit version.
type TargetError struct {
	Target string
	Err    error
}

func (e *TargetError) Error() string {
	msg := "user-specified version should be major, minor, patch or of the form vX.Y.Z: " + e.Target
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *TargetError) Is(target error) bool {
	return target == ErrInvalidBumpTarget
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// ParseTarget turns a release argument into a BumpTarget.
func ParseTarget(arg string) (BumpTarget, error) {
	switch arg {
	case "major":
		return BumpTarget{Kind: BumpMajor}, nil
	case "minor":
		return BumpTarget{Kind: BumpMinor}, nil
	case "patch":
		return BumpTarget{Kind: BumpPatch}, nil
	}

	if !strings.HasPrefix(arg, "v") {
		return BumpTarget{}, &TargetError{Target: arg}
	}
	v, err := ParseTag(arg)
	if err != nil {
		return BumpTarget{}, &TargetError{Target: arg, Err: err}
	}
	return BumpTarget{Kind: BumpExplicit, Version: v}, nil
}

// Apply computes the version that follows latest. Keyword bumps zero every
// lower component and drop any pre-release of latest. Explicit targets are
// returned as-is, even when they do not sort after latest.
func (t BumpTarget) Apply(latest Version) Version {
	switch t.Kind {
	case BumpMajor:
		return New(latest.Major()+1, 0, 0)
	case BumpMinor:
		return New(latest.Major(), latest.Minor()+1, 0)
	case BumpPatch:
		return New(latest.Major(), latest.Minor(), latest.Patch()+1)
	default:
		return t.Version
	}
}

func (t BumpTarget) String() string {
	if t.Kind == BumpExplicit {
		return t.Version.String()
	}
	return t.Kind.String()
}

// Resolve parses arg and applies it to latest.
func Resolve(arg string, latest Version) (Version, error) {
	target, err := ParseTarget(arg)
	if err != nil {
		return Version{}, err
	}
	return target.Apply(latest), nil
}

