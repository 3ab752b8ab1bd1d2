package cmd

import (
	"fmt"

	"github.com/bitrise-io/komp/changelog"
	"github.com/bitrise-io/komp/git"
	"github.com/bitrise-io/komp/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type changelogOptions struct {
	create bool
	push   bool
}

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Add a changelog entry for the staged changes",
	Long: `Generate a changelog entry for the staged changes and insert it under a dated
header at the top of the changelog. Optionally commit and push the changelog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		create, _ := cmd.Flags().GetBool("new")
		push, _ := cmd.Flags().GetBool("push")
		return runChangelog(cmd, changelogOptions{create: create, push: push})
	},
}

func runChangelog(cmd *cobra.Command, opts changelogOptions) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	sp := ui.StartSpinner(s.errOut, "Reading git diff...")
	diff, ok := s.stagedDiff(sp)
	if !ok {
		return nil
	}

	sp.Update("Generating changelog entry...")
	entry, err := s.gen.ChangelogEntry(cmd.Context(), diff)
	if err != nil {
		sp.Fail("Failed to generate changelog entry.")
		return err
	}
	sp.Succeed("Changelog entry created.")

	w := changelog.NewWriter(settings.Changelog.File, settings.Changelog.Title)

	fmt.Fprintln(s.errOut, ui.Step(fmt.Sprintf("Updating %s...", w.Path)))
	created, err := w.Add(entry, opts.create)
	if errors.Is(err, changelog.ErrNotFound) {
		fmt.Fprintln(s.errOut, ui.Warn(fmt.Sprintf("%s not found. Use --new if you actually want one created.", w.Path)))
		return nil
	}
	if err != nil {
		fmt.Fprintln(s.errOut, ui.Err("Failed to write changelog."))
		return err
	}
	if created {
		fmt.Fprintln(s.errOut, ui.Ok(fmt.Sprintf("Created %s and added first entry.", w.Path)))
	} else {
		fmt.Fprintln(s.errOut, ui.Ok("Changelog entry added."))
	}

	if !opts.push {
		return nil
	}

	repo, err := git.OpenRepository(".")
	if err != nil {
		return err
	}

	sp = ui.StartSpinner(s.errOut, "Committing and pushing changelog...")
	if err := changelog.Publish(git.NewCommitter(s.runner), repo, w); err != nil {
		sp.Fail("Failed to commit or push changelog.")
		return err
	}
	sp.Succeed("Changelog committed and pushed.")
	return nil
}

func init() {
	generateCmd.AddCommand(changelogCmd)

	changelogCmd.Flags().BoolP("new", "n", false, "Create the changelog if it does not exist")
	changelogCmd.Flags().BoolP("push", "p", false, "Commit the changelog and push the current branch to origin")
}
