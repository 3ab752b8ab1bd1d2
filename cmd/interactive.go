package cmd

import (
	"fmt"

	"github.com/bitrise-io/komp/ui"
	"github.com/bitrise-io/komp/version"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

const (
	actionCommit    = "commit"
	actionSummary   = "summary"
	actionChangelog = "changelog"
	actionUpdate    = "update"
)

var menu = []ui.Choice{
	{Label: "Generate commit message", Value: actionCommit},
	{Label: "Generate summary", Value: actionSummary},
	{Label: "Add changelog entry", Value: actionChangelog},
	{Label: "Update configuration", Value: actionUpdate},
}

func runInteractive(cmd *cobra.Command) error {
	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, ui.Title("komp v"+version.Version))

	if cfg.APIKey == "" {
		fmt.Fprintln(out, ui.Warn("No API key configured."))
		confirmed, err := ui.Confirm("Run init now?", true)
		if err != nil || !confirmed {
			return abortedIsNil(err)
		}
		return runInit(cmd)
	}

	fmt.Fprintln(out, ui.Dim("Model: "+cfg.Model))

	action, err := ui.Select("What do you want to do?", menu)
	if err != nil {
		return abortedIsNil(err)
	}

	switch action {
	case actionCommit:
		return runCommit(cmd, commitOptions{})
	case actionSummary:
		return runSummary(cmd, false)
	case actionChangelog:
		create, err := ui.Confirm("Create the changelog if it does not exist?", false)
		if err != nil {
			return abortedIsNil(err)
		}
		return runChangelog(cmd, changelogOptions{create: create})
	case actionUpdate:
		return runUpdate(cmd)
	}
	return nil
}

func abortedIsNil(err error) error {
	if errors.Is(err, ui.ErrAborted) {
		return nil
	}
	return err
}
