package cmd

import (
	"fmt"
	"io"

	"github.com/bitrise-io/komp/config"
	"github.com/bitrise-io/komp/generate"
	"github.com/bitrise-io/komp/git"
	"github.com/bitrise-io/komp/llm"
	"github.com/bitrise-io/komp/logger"
	"github.com/bitrise-io/komp/ui"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "g"},
	Short:   "Generate text from the staged changes",
	Long:    `Generate a commit message, a summary or a changelog entry from the staged git changes.`,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// session holds what every generate command needs
type session struct {
	gen    *generate.Generator
	git    *git.Client
	runner git.Runner
	out    io.Writer
	errOut io.Writer
}

func llmOptions(c config.Config) []llm.Option {
	opts := []llm.Option{}
	// the default base URL only applies to OpenAI-compatible providers
	if c.BaseURL != "" && (c.Provider != llm.ProviderAnthropic || c.BaseURL != config.DefaultBaseURL) {
		opts = append(opts, llm.WithBaseURL(c.BaseURL))
	}
	return opts
}

var (
	newRunner = func() git.Runner {
		return git.NewDefaultRunner(".")
	}
	newModel = func(c config.Config) (llm.LLM, error) {
		return llm.NewLLM(c.Provider, c.APIKey, c.Model, llmOptions(c)...)
	}
)

func newSession(cmd *cobra.Command) (*session, error) {
	runner := newRunner()
	client := git.NewClient(runner, settings.Exclude...)

	if !client.IsGitRepo() {
		return nil, errors.New("not a git repository (or git is not installed)")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l, err := newModel(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create client for LLM provider")
	}

	return &session{
		gen:    generate.New(l),
		git:    client,
		runner: runner,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}, nil
}

// stagedDiff reads the staged diff; false means there is nothing to send
func (s *session) stagedDiff(sp *ui.Spinner) (string, bool) {
	diff, ok := s.git.GetStagedDiff()
	if !ok {
		if s.git.HasStagedFiles() {
			sp.Fail("Nothing to analyze.")
			fmt.Fprintln(s.errOut, ui.Warn("Only whitespace or generated files (lockfiles, build output) are staged."))
			return "", false
		}
		sp.Fail("No staged changes.")
		fmt.Fprintln(s.errOut, ui.Warn("Run `git add <files>` before running this tool."))
		return "", false
	}

	logger.Debugf("Staged diff is %d bytes", len(diff))
	return diff, true
}

func (s *session) pushCurrentBranch(committer *git.Committer) error {
	sp := ui.StartSpinner(s.errOut, "Pushing current branch to origin...")

	repo, err := git.OpenRepository(".")
	if err != nil {
		sp.Fail("Failed to push to origin.")
		return err
	}
	branch, err := repo.CurrentBranch()
	if err != nil {
		sp.Fail("Failed to push to origin.")
		return err
	}
	if err := committer.Push(branch); err != nil {
		sp.Fail("Failed to push to origin.")
		return err
	}

	sp.Succeed(fmt.Sprintf("Pushed %s to %s.", branch, git.DefaultRemote))
	return nil
}
