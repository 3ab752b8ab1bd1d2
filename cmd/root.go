package cmd

import (
	"context"

	"github.com/bitrise-io/komp/config"
	"github.com/bitrise-io/komp/logger"
	"github.com/spf13/cobra"
)

var (
	v        = config.NewViper()
	cfg      config.Config
	settings = config.WithDefaultSettings()
)

var rootCmd = &cobra.Command{
	Use:   "komp",
	Short: "komp - AI generated commit messages, summaries and changelog entries",
	Long: `komp reads your staged git changes and asks a language model for a
conventional commit message, a pull request summary or a changelog entry.

Run without a subcommand for an interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.BindFlags(cmd.Root().PersistentFlags(), v); err != nil {
			return err
		}
		cfg = config.Load(v)

		// Initialize logger with the resolved log level
		logger.Init(cfg.LogLevel)
		logger.Debugf("Log level set to: %s", cfg.LogLevel)
		logger.Debugf("Using provider %s with model %s", cfg.Provider, cfg.Model)

		settings = config.WithYamlFile()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd)
	},
}

// Execute runs the root command and handles errors
func Execute(ctx context.Context) error {
	defer logger.Sync()
	// Subcommands are added in their respective init() functions
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Add persistent flags that will be available to all subcommands
	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyModel, "", "Model name, e.g. openai/gpt-4o-mini (env: OPENROUTER_MODEL)")
	flags.String(config.KeyProvider, "", "LLM provider: openai (any OpenAI-compatible API) or anthropic (env: KOMP_PROVIDER)")
	flags.String(config.KeyBaseURL, "", "Base URL of the OpenAI-compatible API (env: KOMP_BASE_URL)")
	flags.String(config.KeyLogLevel, "", "Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
}
