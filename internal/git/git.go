package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pders01/belt/internal/shell"
)

// Repo is a handle on one working copy. Every git invocation goes through
// its Runner, which keeps process spawning in one place and lets tests
// script the results.
type Repo struct {
	Dir    string
	runner shell.Runner
}

// Open returns a handle for the repository containing dir. An empty dir
// means the current working directory.
func Open(dir string, runner shell.Runner) *Repo {
	return &Repo{Dir: dir, runner: runner}
}

func (r *Repo) git(args ...string) (string, error) {
	return r.runner.Output(r.Dir, "git", args...)
}

// IsGitRepo checks if the handle points inside a git repository
func (r *Repo) IsGitRepo() bool {
	_, err := r.git("rev-parse", "--git-dir")
	return err == nil
}

// CurrentBranch returns the checked out branch name
func (r *Repo) CurrentBranch() (string, error) {
	branch, err := r.git("branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return branch, nil
}

// DefaultBranch returns the branch the remote's HEAD points at, as reported
// by `git remote show <remote>`.
func (r *Repo) DefaultBranch(remote string) (string, error) {
	output, err := r.git("remote", "show", remote)
	if err != nil {
		return "", fmt.Errorf("failed to query remote %s: %w", remote, err)
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if branch, ok := strings.CutPrefix(line, "HEAD branch:"); ok {
			return strings.TrimSpace(branch), nil
		}
	}
	return "", fmt.Errorf("remote %s does not report a HEAD branch", remote)
}

// PullRebase fast-forwards the current branch from its upstream. Output is
// streamed so conflicts are visible to the user.
func (r *Repo) PullRebase() error {
	if err := r.runner.Run(r.Dir, "git", "pull", "--rebase"); err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}

// LatestTag returns the most recent tag reachable from HEAD. The second
// result is false when the repository has no tags.
func (r *Repo) LatestTag() (string, bool) {
	tag, err := r.git("describe", "--tags", "--abbrev=0")
	if err != nil || tag == "" {
		return "", false
	}
	return tag, true
}

// Shortlog summarizes non-merge commits by author (with emails) between
// since and HEAD. An empty since covers the whole history.
func (r *Repo) Shortlog(since string) (string, error) {
	rev := "HEAD"
	if since != "" {
		rev = since + "..HEAD"
	}
	output, err := r.git("shortlog", "-e", "--no-merges", rev)
	if err != nil {
		return "", fmt.Errorf("failed to build shortlog: %w", err)
	}
	return output, nil
}

// TopLevel returns the absolute path of the working tree root
func (r *Repo) TopLevel() (string, error) {
	top, err := r.git("rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to find repository root: %w", err)
	}
	return top, nil
}

// Name returns the repository's display name, the base name of its root
func (r *Repo) Name() (string, error) {
	top, err := r.TopLevel()
	if err != nil {
		return "", err
	}
	return filepath.Base(top), nil
}

// RunHook runs a repository-relative executable from the repository root
// with stdio attached.
func (r *Repo) RunHook(path string, args ...string) error {
	top, err := r.TopLevel()
	if err != nil {
		return err
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(top, path)
	}
	return r.runner.Run(top, path, args...)
}

// MessageFile writes content to a temporary file for commands that take a
// message via -F. The returned cleanup removes it and is safe to call more
// than once.
func (r *Repo) MessageFile(content string) (string, func(), error) {
	file, err := os.CreateTemp("", "belt-tag-*.txt")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create message file: %w", err)
	}
	path := file.Name()
	cleanup := func() { os.Remove(path) }

	if _, err := file.WriteString(content); err != nil {
		file.Close()
		cleanup()
		return "", nil, fmt.Errorf("failed to write message file: %w", err)
	}
	if err := file.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("failed to write message file: %w", err)
	}
	return path, cleanup, nil
}

// CreateAnnotatedTag creates an annotated tag whose message is read from
// messageFile. With edit set the user's editor is opened on the message.
func (r *Repo) CreateAnnotatedTag(name, messageFile string, edit bool) error {
	args := []string{"tag"}
	if edit {
		args = append(args, "-e")
	}
	args = append(args, "-F", messageFile, "-a", name)
	if err := r.runner.Run(r.Dir, "git", args...); err != nil {
		return fmt.Errorf("failed to create tag %s: %w", name, err)
	}
	return nil
}

// SetConfig sets a key in the repository-local git config
func (r *Repo) SetConfig(key, value string) error {
	if _, err := r.git("config", key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// GetConfig reads a key from git config. The second result is false when
// the key is unset.
func (r *Repo) GetConfig(key string) (string, bool) {
	value, err := r.git("config", "--get", key)
	if err != nil {
		return "", false
	}
	return value, true
}
