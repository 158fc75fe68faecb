package release

import "fmt"

// AdvisoryKind names a condition worth warning about that does not stop a
// release.
type AdvisoryKind string

const (
	NotOnDefaultBranch AdvisoryKind = "not-on-default-branch"
	NoTagsPresent      AdvisoryKind = "no-tags-present"
	ExplicitNotNewer   AdvisoryKind = "explicit-not-newer"
)

// Advisory is a non-fatal finding of a release run.
type Advisory struct {
	Kind    AdvisoryKind `json:"kind"`
	Message string       `json:"message"`
}

// CheckBranch reports NotOnDefaultBranch when current differs from the
// remote's default branch. Cutting a release elsewhere is allowed.
func CheckBranch(current, defaultBranch string) (Advisory, bool) {
	if current == defaultBranch {
		return Advisory{}, false
	}
	return Advisory{
		Kind:    NotOnDefaultBranch,
		Message: fmt.Sprintf("Not on %s.", defaultBranch),
	}, true
}
