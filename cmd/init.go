package cmd

import (
	"fmt"

	"github.com/bitrise-io/komp/config"
	"github.com/bitrise-io/komp/shellenv"
	"github.com/bitrise-io/komp/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Store the API key and model in your shell environment",
	Long: `Prompt for the OpenRouter API key and model and store them permanently:
in your shell rc file on macOS and Linux, with setx on Windows.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(cmd)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the stored API key and model",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(cmd)
	},
}

func runInit(cmd *cobra.Command) error {
	out := cmd.ErrOrStderr()

	fmt.Fprintln(out, ui.Title("komp initialization"))
	fmt.Fprintln(out, ui.Dim("This will store your keys permanently in your shell environment."))

	store, err := shellenv.NewStore()
	if err != nil {
		return err
	}

	defaultModel := cfg.Model
	if current, err := store.Current(); err == nil && current[config.EnvModel] != "" {
		defaultModel = current[config.EnvModel]
	}
	if defaultModel == "" {
		defaultModel = config.DefaultModel
	}

	apiKey, err := ui.Password("Enter your OpenRouter API Key:")
	if err != nil {
		return errors.Wrap(err, "failed to read API key")
	}
	model, err := ui.Input(fmt.Sprintf("Enter the Model Name (e.g., %s):", config.DefaultModel), defaultModel)
	if err != nil {
		return errors.Wrap(err, "failed to read model")
	}

	result, err := store.Persist(map[string]string{
		config.EnvAPIKey: apiKey,
		config.EnvModel:  model,
	})
	if err != nil {
		fmt.Fprintln(out, ui.Err("Failed to store environment variables."))
		return err
	}

	if result.RestartRequired {
		fmt.Fprintln(out, ui.Ok("Success! Variables saved with setx."))
		fmt.Fprintln(out, ui.Warn("IMPORTANT: You must restart your command prompt/terminal for these changes to take effect."))
		return nil
	}

	fmt.Fprintln(out, ui.Ok(fmt.Sprintf("Success! Saved variables to %s", result.Path)))
	fmt.Fprintln(out, ui.Warn(fmt.Sprintf("IMPORTANT: Run 'source ~/%s' or restart your terminal to apply changes.", result.RCFile)))
	return nil
}

func runUpdate(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.ErrOrStderr(), ui.Info("To update, simply run 'komp init' again to overwrite the values."))

	confirmed, err := ui.Confirm("Run init now?", true)
	if err != nil || !confirmed {
		return err
	}
	return runInit(cmd)
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(updateCmd)
}
