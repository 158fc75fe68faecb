package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/release"
	"github.com/pders01/belt/internal/semver"
	"github.com/pders01/belt/internal/testutil"
)

const stampHook = "#!/bin/sh\necho \"$1 $2\" > VERSION.stamp\n"

// releasableRepo returns a repository with a hook, a v1.0.0 tag, one
// commit after it and an origin, with the process inside it.
func releasableRepo(t *testing.T) *testutil.TempGitRepo {
	t.Helper()
	repo := testutil.NewTempGitRepo(t)
	t.Cleanup(repo.Cleanup)

	repo.CreateScript("contrib/_incr_version", stampHook)
	repo.Commit("Add release hook")
	repo.Tag("v1.0.0")
	repo.CreateFile("feature.txt", "feature\n")
	repo.CommitAs("Alice <alice@example.com>", "Add feature")
	repo.AddOrigin()
	repo.Chdir()
	return repo
}

func TestSemverCommand(t *testing.T) {
	cmd, _ := setupCommand(t)
	repo := releasableRepo(t)
	semverNoEdit = true

	err := runSemver(cmd, []string{"patch"})
	require.NoError(t, err)

	assert.Contains(t, repo.Tags(), "v1.0.1")
	assert.Contains(t, repo.TagMessage("v1.0.1"), "Add feature")

	stamp, err := os.ReadFile(filepath.Join(repo.Path, "VERSION.stamp"))
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0 v1.0.1\n", string(stamp))
}

func TestSemverHookFromConfig(t *testing.T) {
	cmd, _ := setupCommand(t)
	repo := releasableRepo(t)
	repo.CreateScript("scripts/bump", stampHook)
	repo.Commit("Move hook")
	repo.Git("push", "origin", "main")

	viper.Set(config.KeySemverHook, "scripts/bump")
	viper.Set(config.KeySemverEdit, false)

	require.NoError(t, runSemver(cmd, []string{"v1.1.0-rc.1"}))
	assert.Contains(t, repo.Tags(), "v1.1.0-rc.1")
	assert.True(t, repo.FileExists("VERSION.stamp"))
}

func TestSemverDryRunJSON(t *testing.T) {
	cmd, out := setupCommand(t)
	repo := releasableRepo(t)
	semverDryRun = true
	semverJSON = true

	require.NoError(t, runSemver(cmd, []string{"major"}))

	var plan release.Plan
	require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
	assert.Equal(t, "v1.0.0", plan.LatestTag)
	assert.Equal(t, "v2.0.0", plan.Next)
	assert.Equal(t, "major", plan.Bump)
	assert.Equal(t, "main", plan.CurrentBranch)
	assert.Equal(t, "main", plan.DefaultBranch)
	assert.Contains(t, plan.Shortlog, "Alice <alice@example.com> (1)")

	assert.Equal(t, []string{"v1.0.0"}, repo.Tags())
	assert.False(t, repo.FileExists("VERSION.stamp"), "dry run must not run the hook")
}

func TestSemverDryRunTable(t *testing.T) {
	cmd, out := setupCommand(t)
	releasableRepo(t)
	semverDryRun = true

	require.NoError(t, runSemver(cmd, []string{"minor"}))

	output := out.String()
	assert.Contains(t, output, "v1.1.0")
	assert.Contains(t, output, "minor")
	assert.Contains(t, output, "Add feature")
}

func TestSemverDryRunToon(t *testing.T) {
	cmd, out := setupCommand(t)
	releasableRepo(t)
	semverDryRun = true
	semverToon = true

	require.NoError(t, runSemver(cmd, []string{"patch"}))
	assert.Contains(t, out.String(), "v1.0.1")
}

func TestSemverJSONRequiresDryRun(t *testing.T) {
	cmd, _ := setupCommand(t)
	semverJSON = true

	err := runSemver(cmd, []string{"patch"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--dry-run")
}

func TestSemverInvalidTarget(t *testing.T) {
	cmd, _ := setupCommand(t)
	repo := releasableRepo(t)
	semverNoEdit = true

	err := runSemver(cmd, []string{"banana"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, semver.ErrInvalidBumpTarget))
	assert.Equal(t, []string{"v1.0.0"}, repo.Tags())
}

func TestSemverHookFailure(t *testing.T) {
	cmd, _ := setupCommand(t)
	repo := releasableRepo(t)
	repo.CreateScript("contrib/_incr_version", "#!/bin/sh\nexit 3\n")
	repo.Commit("Break hook")
	repo.Git("push", "origin", "main")
	semverNoEdit = true

	err := runSemver(cmd, []string{"patch"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, release.ErrHookFailed))
	assert.True(t, strings.HasSuffix(err.Error(), release.HookHint))
	assert.Equal(t, []string{"v1.0.0"}, repo.Tags())
}

func TestSemverInvalidTargetOutsideRepo(t *testing.T) {
	cmd, _ := setupCommand(t)
	runner, _ := fakeTools(t)

	err := runSemver(cmd, []string{"banana"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, semver.ErrInvalidBumpTarget))
	assert.Contains(t, err.Error(), "banana")
	assert.Empty(t, runner.Calls())
}

func TestSemverNotGitRepo(t *testing.T) {
	cmd, _ := setupCommand(t)
	testutil.RequireGit(t)

	oldWd, _ := os.Getwd()
	os.Chdir(t.TempDir())
	defer os.Chdir(oldWd)

	err := runSemver(cmd, []string{"patch"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}
