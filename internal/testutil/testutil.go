package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TempGitRepo creates a temporary git repository for testing
type TempGitRepo struct {
	Path string
	T    *testing.T
}

// RequireGit skips the test when git is not installed
func RequireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}

// NewTempGitRepo creates a new temporary git repository on branch main
// with one initial commit
func NewTempGitRepo(t *testing.T) *TempGitRepo {
	t.Helper()
	RequireGit(t)

	// Create temp directory
	tmpDir, err := os.MkdirTemp("", "belt-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	// macOS temp dirs are symlinked; git reports the resolved path
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	repo := &TempGitRepo{
		Path: tmpDir,
		T:    t,
	}

	setup := [][]string{
		{"init"},
		{"symbolic-ref", "HEAD", "refs/heads/main"},
		// Configure git user (required for commits)
		{"config", "user.name", "Test User"},
		{"config", "user.email", "test@example.com"},
		{"config", "commit.gpgsign", "false"},
		{"config", "tag.gpgsign", "false"},
	}
	for _, args := range setup {
		if _, err := repo.run(args...); err != nil {
			os.RemoveAll(tmpDir)
			t.Fatalf("failed to set up git repo (git %s): %v", strings.Join(args, " "), err)
		}
	}

	// Create initial commit
	repo.CreateFile("README.md", "# Test Repository\n")
	repo.Commit("Initial commit")

	return repo
}

func (r *TempGitRepo) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Path
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

// Git runs a git command in the repository and returns its trimmed output
func (r *TempGitRepo) Git(args ...string) string {
	r.T.Helper()
	output, err := r.run(args...)
	if err != nil {
		r.T.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, output)
	}
	return output
}

// Cleanup removes the temporary git repository
func (r *TempGitRepo) Cleanup() {
	r.T.Helper()
	if err := os.RemoveAll(r.Path); err != nil {
		r.T.Errorf("failed to cleanup temp repo: %v", err)
	}
}

// CreateFile creates a file in the repository
func (r *TempGitRepo) CreateFile(name, content string) {
	r.T.Helper()
	r.writeFile(name, content, 0644)
}

// CreateScript creates an executable file in the repository
func (r *TempGitRepo) CreateScript(name, content string) {
	r.T.Helper()
	r.writeFile(name, content, 0755)
}

func (r *TempGitRepo) writeFile(name, content string, mode os.FileMode) {
	r.T.Helper()
	path := filepath.Join(r.Path, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.T.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), mode); err != nil {
		r.T.Fatalf("failed to create file: %v", err)
	}
}

// Commit stages and commits all changes
func (r *TempGitRepo) Commit(message string) {
	r.T.Helper()
	r.Git("add", ".")
	r.Git("commit", "-m", message)
}

// CommitAs stages and commits all changes with the given author
func (r *TempGitRepo) CommitAs(author, message string) {
	r.T.Helper()
	r.Git("add", ".")
	r.Git("commit", "--author", author, "-m", message)
}

// Tag creates an annotated tag at HEAD
func (r *TempGitRepo) Tag(name string) {
	r.T.Helper()
	r.Git("tag", "-a", name, "-m", name)
}

// Tags returns all tag names in the repository
func (r *TempGitRepo) Tags() []string {
	r.T.Helper()
	return parseLines(r.Git("tag", "--list"))
}

// TagMessage returns the message of an annotated tag
func (r *TempGitRepo) TagMessage(name string) string {
	r.T.Helper()
	return r.Git("tag", "-l", "--format=%(contents)", name)
}

// AddOrigin creates a bare clone next to the repository, registers it as
// origin and sets it as upstream of main. It returns the bare repo path.
func (r *TempGitRepo) AddOrigin() string {
	r.T.Helper()

	remote := r.Path + "-origin.git"
	cmd := exec.Command("git", "clone", "--bare", r.Path, remote)
	if output, err := cmd.CombinedOutput(); err != nil {
		r.T.Fatalf("failed to create bare remote: %v\n%s", err, output)
	}
	r.T.Cleanup(func() { os.RemoveAll(remote) })

	r.Git("remote", "add", "origin", remote)
	r.Git("fetch", "origin")
	r.Git("branch", "--set-upstream-to=origin/main", "main")
	return remote
}

// FileExists checks if a file exists in the working tree
func (r *TempGitRepo) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(r.Path, name))
	return err == nil
}

// Chdir switches the process into the repository until the test ends
func (r *TempGitRepo) Chdir() {
	r.T.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		r.T.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(r.Path); err != nil {
		r.T.Fatalf("failed to change directory: %v", err)
	}
	r.T.Cleanup(func() { os.Chdir(oldWd) })
}

// parseLines splits output into non-empty trimmed lines
func parseLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
