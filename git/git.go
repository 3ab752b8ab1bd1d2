package git

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/bitrise-io/komp/logger"
	"github.com/cockroachdb/errors"
)

const (
	// DefaultDiffAlgorithm is the default algorithm for computing diffs
	DefaultDiffAlgorithm = "minimal"
)

// Runner defines an interface for running git commands.
// A process that could not be started reports exit code -1.
type Runner interface {
	Run(args ...string) (stdout string, exitCode int, err error)
}

// Ensure DefaultRunner implements Runner interface
var _ Runner = (*DefaultRunner)(nil)

// DefaultRunner implements the Runner interface using exec.Command
type DefaultRunner struct {
	RepoPath string
}

// NewDefaultRunner creates a new instance of DefaultRunner
func NewDefaultRunner(repoPath string) *DefaultRunner {
	return &DefaultRunner{
		RepoPath: repoPath,
	}
}

// Run executes git with the given arguments and returns its trimmed output
func (r *DefaultRunner) Run(args ...string) (string, int, error) {
	cmd := exec.Command("git", args...)
	if r.RepoPath != "" {
		cmd.Dir = r.RepoPath
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return strings.TrimSpace(stdout.String()), exitCode,
			errors.Wrapf(err, "git %s: %s", args[0], strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), 0, nil
}

// Client answers read-only questions about the staged state of a repository.
// It never issues commands that modify the repository.
type Client struct {
	runner  Runner
	exclude []string
}

// NewClient creates a new Git client. Extra exclude globs are appended to DefaultExcludes.
func NewClient(runner Runner, extraExcludes ...string) *Client {
	exclude := make([]string, 0, len(DefaultExcludes)+len(extraExcludes))
	exclude = append(exclude, DefaultExcludes...)
	for _, e := range extraExcludes {
		if e = strings.TrimSpace(e); e != "" {
			exclude = append(exclude, e)
		}
	}

	return &Client{
		runner:  runner,
		exclude: exclude,
	}
}

// IsGitRepo reports whether the working directory is inside a git work tree
func (c *Client) IsGitRepo() bool {
	out, code, err := c.runner.Run("rev-parse", "--is-inside-work-tree")
	if err != nil || code != 0 {
		logger.Debugf("rev-parse failed (exit %d): %v", code, err)
		return false
	}
	return out == "true"
}

// HasStagedChanges reports whether a non-empty minimized staged diff exists
func (c *Client) HasStagedChanges() bool {
	_, ok := c.GetStagedDiff()
	return ok
}

// HasStagedFiles reports whether anything at all is staged, before the
// denylist and whitespace filtering GetStagedDiff applies
func (c *Client) HasStagedFiles() bool {
	_, code, _ := c.runner.Run("diff", "--cached", "--quiet")
	return code == 1
}

// GetStagedDiff returns the minimized diff of staged changes. The second
// result is false when nothing is staged, everything staged is excluded, or
// git could not produce a diff.
func (c *Client) GetStagedDiff() (string, bool) {
	out, code, err := c.runner.Run(c.stagedDiffArgs()...)
	if err != nil || code != 0 {
		logger.Debugf("staged diff unavailable (exit %d): %v", code, err)
		return "", false
	}

	diff := strings.TrimSpace(out)
	if diff == "" {
		return "", false
	}

	logger.Debugf("staged diff is %d bytes", len(diff))
	return diff, true
}

func (c *Client) stagedDiffArgs() []string {
	params := []string{
		"diff",
		"--cached",
		"--no-color",
		"--no-ext-diff",
		"--unified=0",
		"--diff-algorithm=" + DefaultDiffAlgorithm,
		"--ignore-all-space",
		"--",
		":/",
	}
	return append(params, ExcludePathspecs(c.exclude)...)
}
