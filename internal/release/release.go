// Package release cuts a new version of a project: it syncs the branch,
// computes the next semantic version from the latest tag, runs the
// project's version-stamping hook and creates an annotated tag whose
// message is seeded with the shortlog since the previous release.
//
// Every step is a hard stop on failure. Nothing is rolled back; whatever the
// hook already changed stays for the operator to inspect.
package release

import (
	"errors"
	"fmt"

	"github.com/pders01/belt/internal/logger"
	"github.com/pders01/belt/internal/semver"
)

var (
	// ErrPullFailed means the branch could not be synced with upstream.
	ErrPullFailed = errors.New("failed to update branch from upstream")
	// ErrHookFailed means the project's version hook failed. No tag was
	// created.
	ErrHookFailed = errors.New("version hook failed")
	// ErrTagFailed means git refused to create the release tag.
	ErrTagFailed = errors.New("failed to create release tag")
)

// HookHint is appended to hook failures.
const HookHint = "Does this project have any specific release requirements?"

// DefaultHook is the project-relative script run before tagging.
const DefaultHook = "contrib/_incr_version"

// Repository is what the driver needs from version control.
type Repository interface {
	CurrentBranch() (string, error)
	DefaultBranch(remote string) (string, error)
	PullRebase() error
	LatestTag() (string, bool)
	Shortlog(since string) (string, error)
	Name() (string, error)
	RunHook(path string, args ...string) error
	MessageFile(content string) (path string, cleanup func(), err error)
	CreateAnnotatedTag(name, messageFile string, edit bool) error
}

// Stage is a step of a release run.
type Stage int

const (
	StageStart Stage = iota
	StageBranchChecked
	StageUpdated
	StageTagDiscovered
	StageVersionComputed
	StageShortlogBuilt
	StageHookRun
	StageTagged
	StageAborted
)

var stageNames = map[Stage]string{
	StageStart:           "start",
	StageBranchChecked:   "branch-checked",
	StageUpdated:         "updated",
	StageTagDiscovered:   "tag-discovered",
	StageVersionComputed: "version-computed",
	StageShortlogBuilt:   "shortlog-built",
	StageHookRun:         "hook-run",
	StageTagged:          "tagged",
	StageAborted:         "aborted",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Options configures one run.
type Options struct {
	// Target is the bump keyword or explicit version from the command line.
	Target string
	// Hook is the project-relative version hook. Defaults to DefaultHook.
	Hook string
	// Remote whose HEAD branch is the expected release branch.
	Remote string
	// Edit opens the editor on the tag message.
	Edit bool
	// DryRun stops once the next version and shortlog are known. Nothing
	// is pulled, run or tagged.
	DryRun bool
}

// Context is everything learned during one run.
type Context struct {
	Stage         Stage
	Target        semver.BumpTarget
	CurrentBranch string
	DefaultBranch string
	LatestTag     string
	HasTag        bool
	Latest        semver.Version
	Next          semver.Version
	RepoName      string
	Shortlog      string
	Advisories    []Advisory
	FailedAfter   Stage
}

// Message is the annotated tag message seeded for the editor.
func (c *Context) Message() string {
	return fmt.Sprintf("%s %s\n\n%s\n", c.RepoName, c.Next, c.Shortlog)
}

// Driver runs releases against a repository.
type Driver struct {
	repo Repository
}

// NewDriver returns a Driver operating on repo.
func NewDriver(repo Repository) *Driver {
	return &Driver{repo: repo}
}

// Run executes the release pipeline. The returned Context reflects the last
// stage reached, also on error.
func (d *Driver) Run(opts Options) (*Context, error) {
	if opts.Hook == "" {
		opts.Hook = DefaultHook
	}
	if opts.Remote == "" {
		opts.Remote = "origin"
	}

	rc := &Context{Stage: StageStart}
	if err := d.run(rc, opts); err != nil {
		rc.FailedAfter = rc.Stage
		rc.Stage = StageAborted
		return rc, err
	}
	return rc, nil
}

func (d *Driver) run(rc *Context, opts Options) error {
	// The target is parsed before anything touches the repository so a
	// typo never pulls or tags.
	target, err := semver.ParseTarget(opts.Target)
	if err != nil {
		return err
	}
	rc.Target = target

	if err := d.checkBranch(rc, opts.Remote); err != nil {
		return err
	}
	rc.Stage = StageBranchChecked

	if !opts.DryRun {
		if err := d.repo.PullRebase(); err != nil {
			return fmt.Errorf("%w: %w", ErrPullFailed, err)
		}
	}
	rc.Stage = StageUpdated

	if err := d.discoverTag(rc); err != nil {
		return err
	}
	rc.Stage = StageTagDiscovered

	rc.Next = target.Apply(rc.Latest)
	if target.Kind == semver.BumpExplicit && !rc.Latest.Less(rc.Next) {
		d.advise(rc, Advisory{
			Kind:    ExplicitNotNewer,
			Message: fmt.Sprintf("%s does not come after the latest release %s.", rc.Next, rc.Latest),
		})
	}
	logger.Debug("Next version: %s -> %s (%s)\n", rc.Latest, rc.Next, target)
	rc.Stage = StageVersionComputed

	if rc.RepoName, err = d.repo.Name(); err != nil {
		return err
	}
	since := ""
	if rc.HasTag {
		since = rc.LatestTag
	}
	if rc.Shortlog, err = d.repo.Shortlog(since); err != nil {
		return err
	}
	rc.Stage = StageShortlogBuilt

	if opts.DryRun {
		return nil
	}

	messageFile, cleanup, err := d.repo.MessageFile(rc.Message())
	if err != nil {
		return err
	}
	defer cleanup()

	// The hook sees the tag exactly as git reported it.
	latest := rc.Latest.String()
	if rc.HasTag {
		latest = rc.LatestTag
	}
	if err := d.repo.RunHook(opts.Hook, latest, rc.Next.String()); err != nil {
		return fmt.Errorf("%w: %w.\n%s", ErrHookFailed, err, HookHint)
	}
	rc.Stage = StageHookRun

	if err := d.repo.CreateAnnotatedTag(rc.Next.String(), messageFile, opts.Edit); err != nil {
		return fmt.Errorf("%w: %w", ErrTagFailed, err)
	}
	rc.Stage = StageTagged
	return nil
}

func (d *Driver) checkBranch(rc *Context, remote string) error {
	current, err := d.repo.CurrentBranch()
	if err != nil {
		return err
	}
	defaultBranch, err := d.repo.DefaultBranch(remote)
	if err != nil {
		return err
	}
	rc.CurrentBranch = current
	rc.DefaultBranch = defaultBranch

	if advisory, ok := CheckBranch(current, defaultBranch); ok {
		d.advise(rc, advisory)
	}
	return nil
}

func (d *Driver) discoverTag(rc *Context) error {
	tag, ok := d.repo.LatestTag()
	if !ok {
		rc.Latest = semver.Zero
		d.advise(rc, Advisory{
			Kind:    NoTagsPresent,
			Message: fmt.Sprintf("No tags present in repository. Defaulting to %s.", semver.Zero),
		})
		return nil
	}

	latest, err := semver.ParseTag(tag)
	if err != nil {
		return fmt.Errorf("latest tag %s is not a release version: %w", tag, err)
	}
	rc.LatestTag = tag
	rc.HasTag = true
	rc.Latest = latest
	return nil
}

func (d *Driver) advise(rc *Context, advisory Advisory) {
	rc.Advisories = append(rc.Advisories, advisory)
	logger.Warn("%s\n", advisory.Message)
}
