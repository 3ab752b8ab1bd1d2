package git

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultRemote is the remote branches are pushed to
const DefaultRemote = "origin"

// Committer performs the write operations that follow a generated message.
type Committer struct {
	runner Runner
}

// NewCommitter creates a Committer on top of the given runner
func NewCommitter(runner Runner) *Committer {
	return &Committer{runner: runner}
}

// Add stages the given paths
func (c *Committer) Add(paths ...string) error {
	if len(paths) == 0 {
		return errors.New("no paths to add")
	}

	args := append([]string{"add", "--"}, paths...)
	if _, _, err := c.runner.Run(args...); err != nil {
		return errors.Wrap(err, "git add")
	}
	return nil
}

// Commit records the staged changes with the given message
func (c *Committer) Commit(message string) error {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return errors.New("commit message cannot be empty")
	}

	if _, _, err := c.runner.Run("commit", "-m", msg); err != nil {
		return errors.Wrap(err, "git commit")
	}
	return nil
}

// Push pushes the branch to DefaultRemote
func (c *Committer) Push(branch string) error {
	if strings.TrimSpace(branch) == "" {
		return errors.New("branch name cannot be empty")
	}

	if _, _, err := c.runner.Run("push", DefaultRemote, branch); err != nil {
		return errors.Wrapf(err, "git push %s %s", DefaultRemote, branch)
	}
	return nil
}
