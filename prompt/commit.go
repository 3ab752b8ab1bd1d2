package prompt

import (
	"strconv"
	"strings"
)

// CommitTypes are the conventional-commit types the model may choose from
var CommitTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "perf", "test", "build", "ci", "chore", "revert",
}

// MaxSubjectLength is stated to the model; it is not enforced on the result
const MaxSubjectLength = 150

func GetCommitSystemPrompt() string {
	return `You are an expert developer using the Conventional Commits specification.
Review the provided git diff and generate a commit message.

STRICT RULES:
1. Output MUST be a SINGLE LINE. No body, no bullets, no explanations.
2. Format: <type>(<optional scope>): <description>
3. Types must be one of: ` + strings.Join(CommitTypes, ", ") + `.
4. Subject MUST be under ` + strconv.Itoa(MaxSubjectLength) + ` characters.
5. No markdown formatting. No code blocks. No quotes. No multi-line output.
6. Be brutally concise. Summarize the core change only.

Example output:
feat(auth): add google login`
}

func GetCommitUserPrompt(diff string) string {
	return "Here is the git diff to analyze:\n" + diff
}
