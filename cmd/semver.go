package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alpkeskin/gotoon"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/git"
	"github.com/pders01/belt/internal/logger"
	"github.com/pders01/belt/internal/release"
	"github.com/pders01/belt/internal/semver"
)

var (
	semverHook   string
	semverRemote string
	semverNoEdit bool
	semverDryRun bool
	semverJSON   bool
	semverToon   bool
)

var semverCmd = &cobra.Command{
	Use:   "semver <major|minor|patch|vX.Y.Z>",
	Short: "Tag a new semantic version of the current repository",
	Long: `Cut a release of the repository in the current directory.

The branch is rebased onto its upstream, the next version is computed from
the latest tag and the project's version hook is run with the old and new
version. Finally an annotated tag is created whose message lists the
changes since the previous release.

Examples:
  belt semver patch
  belt semver minor --no-edit
  belt semver v2.0.0-rc.1
  belt semver major --dry-run --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSemver,
}

func init() {
	rootCmd.AddCommand(semverCmd)

	semverCmd.Flags().StringVar(&semverHook, "hook", "", "project-relative version hook (default from semver.hook)")
	semverCmd.Flags().StringVar(&semverRemote, "remote", "", "remote whose default branch releases are cut from (default from semver.remote)")
	semverCmd.Flags().BoolVar(&semverNoEdit, "no-edit", false, "Create the tag without opening an editor")
	semverCmd.Flags().BoolVar(&semverDryRun, "dry-run", false, "Show the release plan without pulling, running the hook or tagging")
	semverCmd.Flags().BoolVar(&semverJSON, "json", false, "Print the dry-run plan as JSON")
	semverCmd.Flags().BoolVar(&semverToon, "toon", false, "Print the dry-run plan as Toon")
}

func runSemver(cmd *cobra.Command, args []string) error {
	if (semverJSON || semverToon) && !semverDryRun {
		return fmt.Errorf("--json and --toon require --dry-run")
	}

	// A bad target is reported as such even outside a repository.
	if _, err := semver.ParseTarget(args[0]); err != nil {
		return err
	}

	repo := git.Open("", newRunner())
	if !repo.IsGitRepo() {
		return fmt.Errorf("not a git repository")
	}

	opts := release.Options{
		Target: args[0],
		Hook:   semverHook,
		Remote: semverRemote,
		Edit:   config.GetEditTag() && !semverNoEdit,
		DryRun: semverDryRun,
	}
	if opts.Hook == "" {
		opts.Hook = config.GetHookPath()
	}
	if opts.Remote == "" {
		opts.Remote = config.GetRemote()
	}

	rc, err := release.NewDriver(repo).Run(opts)
	if err != nil {
		logger.Debug("Release aborted after stage %s\n", rc.FailedAfter)
		return err
	}

	if semverDryRun {
		return printPlan(cmd.OutOrStdout(), rc.Plan())
	}

	logger.Info("Tagged %s %s\n", rc.RepoName, rc.Next)
	return nil
}

func printPlan(out io.Writer, plan release.Plan) error {
	if semverJSON {
		output, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	if semverToon {
		output, err := gotoon.Encode(plan)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Fprintln(out, output)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Repository", "Branch", "Latest", "Bump", "Next"})
	latest := plan.Latest
	if plan.LatestTag == "" {
		latest += " (no tags)"
	}
	t.AppendRow(table.Row{plan.Repository, plan.CurrentBranch, latest, plan.Bump, plan.Next})
	t.SetStyle(table.StyleRounded)
	t.Render()

	if plan.Shortlog != "" {
		fmt.Fprintf(out, "\n%s\n", strings.TrimRight(plan.Shortlog, "\n"))
	}
	return nil
}
