package cmd

import (
	"fmt"

	"github.com/bitrise-io/komp/git"
	"github.com/bitrise-io/komp/pullrequest"
	"github.com/bitrise-io/komp/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize the staged changes",
	Long: `Generate a multi-line summary of the staged changes, ready to paste into a
pull request description. With --pr the summary is written into the description
of the open GitHub pull request for the current branch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pr, _ := cmd.Flags().GetBool("pr")
		return runSummary(cmd, pr)
	},
}

func runSummary(cmd *cobra.Command, updatePR bool) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	sp := ui.StartSpinner(s.errOut, "Reading git diff...")
	diff, ok := s.stagedDiff(sp)
	if !ok {
		return nil
	}

	sp.Update(fmt.Sprintf("Summarizing changes with %s...", cfg.Model))
	summary, err := s.gen.Summary(cmd.Context(), diff)
	if err != nil {
		sp.Fail("Failed to generate summary.")
		return err
	}
	sp.Succeed("Summary generated.")

	fmt.Fprintln(s.out, ui.Box("Summary", summary))

	if updatePR {
		return updatePullRequest(cmd, s, summary)
	}
	return nil
}

func updatePullRequest(cmd *cobra.Command, s *session, summary string) error {
	if cfg.GitHubToken == "" {
		return errors.New("GITHUB_TOKEN is required to update the pull request")
	}

	sp := ui.StartSpinner(s.errOut, "Updating pull request description...")

	repo, err := git.OpenRepository(".")
	if err != nil {
		sp.Fail("Failed to update pull request.")
		return err
	}
	branch, err := repo.CurrentBranch()
	if err != nil {
		sp.Fail("Failed to update pull request.")
		return err
	}
	remoteURL, err := repo.RemoteURL(git.DefaultRemote)
	if err != nil {
		sp.Fail("Failed to update pull request.")
		return err
	}
	owner, name, err := pullrequest.ParseRemote(remoteURL)
	if err != nil {
		sp.Fail("Failed to update pull request.")
		return err
	}

	gh, err := pullrequest.NewGitHub(pullrequest.WithAPIToken(cfg.GitHubToken))
	if err != nil {
		sp.Fail("Failed to update pull request.")
		return err
	}

	url, err := gh.UpdateDescription(cmd.Context(), owner, name, branch, summary)
	if errors.Is(err, pullrequest.ErrNoPullRequest) {
		sp.Fail(fmt.Sprintf("No open pull request for %s.", branch))
		return nil
	}
	if err != nil {
		sp.Fail("Failed to update pull request.")
		return err
	}

	sp.Succeed("Pull request description updated: " + url)
	return nil
}

func init() {
	generateCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().Bool("pr", false, "Write the summary into the open GitHub pull request for the current branch")
}
