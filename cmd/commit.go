package cmd

import (
	"fmt"

	"github.com/bitrise-io/komp/git"
	"github.com/bitrise-io/komp/logger"
	"github.com/bitrise-io/komp/ui"
	"github.com/spf13/cobra"
)

type commitOptions struct {
	commit bool
	push   bool
}

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Generate a conventional commit message for the staged changes",
	Long: `Generate a single-line conventional commit message for the staged changes,
copy it to the clipboard and optionally create the commit and push it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		commit, _ := cmd.Flags().GetBool("commit")
		push, _ := cmd.Flags().GetBool("push")
		return runCommit(cmd, commitOptions{commit: commit, push: push})
	},
}

func runCommit(cmd *cobra.Command, opts commitOptions) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	sp := ui.StartSpinner(s.errOut, "Reading git diff...")
	diff, ok := s.stagedDiff(sp)
	if !ok {
		return nil
	}

	sp.Update(fmt.Sprintf("Analyzing changes with %s...", cfg.Model))
	message, err := s.gen.CommitMessage(cmd.Context(), diff)
	if err != nil {
		sp.Fail("Failed to generate commit message.")
		return err
	}

	if err := ui.CopyToClipboard(message); err != nil {
		logger.Debugf("Clipboard unavailable: %v", err)
		sp.Succeed("Commit message generated.")
		fmt.Fprintln(s.errOut, ui.Warn("Could not copy the message to the clipboard."))
	} else {
		sp.Succeed("Commit message generated and copied to clipboard!")
	}

	fmt.Fprintln(s.out, ui.Box("Generated commit message:", message))

	if !opts.commit {
		confirmed, err := ui.Confirm("Create commit with this message now?", false)
		if err != nil {
			logger.Debugf("Confirmation prompt unavailable: %v", err)
			return nil
		}
		if !confirmed {
			return nil
		}
	}

	committer := git.NewCommitter(s.runner)

	sp = ui.StartSpinner(s.errOut, "Creating git commit...")
	if err := committer.Commit(message); err != nil {
		sp.Fail("Failed to create git commit.")
		return err
	}
	sp.Succeed("Committed staged changes.")

	if opts.push {
		return s.pushCurrentBranch(committer)
	}
	return nil
}

func init() {
	generateCmd.AddCommand(commitCmd)

	commitCmd.Flags().BoolP("commit", "c", false, "Create the commit without asking")
	commitCmd.Flags().BoolP("push", "p", false, "Push the current branch to origin after committing")
}
