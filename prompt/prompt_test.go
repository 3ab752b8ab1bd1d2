package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommitSystemPrompt(t *testing.T) {
	p := GetCommitSystemPrompt()

	assert.Contains(t, p, "SINGLE LINE")
	assert.Contains(t, p, "<type>(<optional scope>): <description>")
	assert.Contains(t, p, "feat, fix, docs, style, refactor, perf, test, build, ci, chore, revert.")
	assert.Contains(t, p, "under 150 characters")
	assert.Equal(t, strings.TrimSpace(p), p)
}

func TestCommitUserPrompt(t *testing.T) {
	diff := "diff --git a/app.js b/app.js\n+console.log('hi')"
	assert.Equal(t, "Here is the git diff to analyze:\n"+diff, GetCommitUserPrompt(diff))
}

func TestSummaryPrompts(t *testing.T) {
	assert.Contains(t, GetSummarySystemPrompt(), "changelog")
	assert.Contains(t, GetSummarySystemPrompt(), "affected files")

	user := GetSummaryUserPrompt("+a\n-b")
	assert.True(t, strings.HasPrefix(user, "Here is the git diff:\n+a\n-b\n"))
	assert.Contains(t, user, "pull request description")
}
