package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pders01/belt/internal/git"
	"github.com/pders01/belt/internal/logger"
)

var (
	gitEmailTo     []string
	gitEmailPrefix string
)

var gitEmailCmd = &cobra.Command{
	Use:   "git-email",
	Short: "Configure the current repository for git send-email",
	Long: `Set the patch subject prefix and the default recipients of
git send-email in the local repository config.

The subject prefix becomes "PATCH <prefix>", where prefix defaults to the
repository name.

Examples:
  belt git-email --to ~user/project-devel@lists.sr.ht
  belt git-email --to a@example.org --to b@example.org --prefix tools`,
	Args: cobra.NoArgs,
	RunE: runGitEmail,
}

func init() {
	rootCmd.AddCommand(gitEmailCmd)

	gitEmailCmd.Flags().StringSliceVarP(&gitEmailTo, "to", "t", nil, "Recipient addresses, repeatable or comma-separated")
	gitEmailCmd.Flags().StringVarP(&gitEmailPrefix, "prefix", "p", "", "Subject prefix after PATCH (default is the repository name)")
	gitEmailCmd.MarkFlagRequired("to") //nolint:errcheck
}

func runGitEmail(cmd *cobra.Command, args []string) error {
	if len(gitEmailTo) == 0 {
		return fmt.Errorf("at least one --to address is required")
	}

	repo := git.Open("", newRunner())
	if !repo.IsGitRepo() {
		return fmt.Errorf("not a git repository")
	}

	prefix := gitEmailPrefix
	if prefix == "" {
		name, err := repo.Name()
		if err != nil {
			return err
		}
		prefix = name
	}

	subject := "PATCH " + prefix
	if err := repo.SetConfig("format.subjectprefix", subject); err != nil {
		return err
	}
	to := strings.Join(gitEmailTo, ",")
	if previous, ok := repo.GetConfig("sendemail.to"); ok && previous != to {
		logger.Warn("Replacing previous recipients: %s\n", previous)
	}
	if err := repo.SetConfig("sendemail.to", to); err != nil {
		return err
	}

	logger.Info("Subject prefix: [%s]\n", subject)
	logger.Info("Recipients: %s\n", to)
	return nil
}
