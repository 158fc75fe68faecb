package release

// Plan is the printable summary of a release run, used by dry runs.
type Plan struct {
	Repository    string     `json:"repository"`
	CurrentBranch string     `json:"current_branch"`
	DefaultBranch string     `json:"default_branch"`
	LatestTag     string     `json:"latest_tag,omitempty"`
	Latest        string     `json:"latest"`
	Bump          string     `json:"bump"`
	Next          string     `json:"next"`
	Stage         string     `json:"stage"`
	Shortlog      string     `json:"shortlog,omitempty"`
	Advisories    []Advisory `json:"advisories,omitempty"`
}

// Plan summarizes the context.
func (c *Context) Plan() Plan {
	return Plan{
		Repository:    c.RepoName,
		CurrentBranch: c.CurrentBranch,
		DefaultBranch: c.DefaultBranch,
		LatestTag:     c.LatestTag,
		Latest:        c.Latest.String(),
		Bump:          c.Target.Kind.String(),
		Next:          c.Next.String(),
		Stage:         c.Stage.String(),
		Shortlog:      c.Shortlog,
		Advisories:    c.Advisories,
	}
}
