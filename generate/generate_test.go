package generate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bitrise-io/komp/llm"
	"github.com/bitrise-io/komp/prompt"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM records the request and returns a canned answer
type fakeLLM struct {
	out       string
	err       error
	calls     int
	messages  []llm.Message
	maxTokens int
}

func (f *fakeLLM) Complete(_ context.Context, messages []llm.Message, maxTokens int) (string, error) {
	f.calls++
	f.messages = messages
	f.maxTokens = maxTokens
	return f.out, f.err
}

func TestCommitMessage_Prompt(t *testing.T) {
	fake := &fakeLLM{out: "feat: add debug log"}
	diff := "diff --git a/app.js b/app.js\n+console.log('hi')\n"

	out, err := New(fake).CommitMessage(context.Background(), diff)
	require.NoError(t, err)
	assert.Equal(t, "feat: add debug log", out)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, CommitMaxTokens, fake.maxTokens)
	require.Len(t, fake.messages, 2)
	assert.Equal(t, llm.RoleSystem, fake.messages[0].Role)
	assert.Equal(t, prompt.GetCommitSystemPrompt(), fake.messages[0].Content)
	assert.Equal(t, llm.RoleUser, fake.messages[1].Role)
	assert.Equal(t, "Here is the git diff to analyze:\n"+diff, fake.messages[1].Content)
}

func TestSummary_Prompt(t *testing.T) {
	fake := &fakeLLM{out: "- Added debug logging to app.js"}

	out, err := New(fake).Summary(context.Background(), "+x")
	require.NoError(t, err)
	assert.Equal(t, "- Added debug logging to app.js", out)

	assert.Equal(t, SummaryMaxTokens, fake.maxTokens)
	require.Len(t, fake.messages, 2)
	assert.Equal(t, prompt.GetSummarySystemPrompt(), fake.messages[0].Content)
	assert.Equal(t, prompt.GetSummaryUserPrompt("+x"), fake.messages[1].Content)
}

func TestChangelogEntry_DelegatesToSummary(t *testing.T) {
	fake := &fakeLLM{out: "- Added feature\n- Fixed bug"}
	g := New(fake)

	summary, err := g.Summary(context.Background(), "+x")
	require.NoError(t, err)
	summaryMessages := fake.messages

	entry, err := g.ChangelogEntry(context.Background(), "+x")
	require.NoError(t, err)

	assert.Equal(t, summary, entry)
	assert.Equal(t, summaryMessages, fake.messages)
	assert.Equal(t, SummaryMaxTokens, fake.maxTokens)
}

func TestGenerator_Failure(t *testing.T) {
	fake := &fakeLLM{err: errors.New("completion API error (500): quota exceeded")}
	g := New(fake)

	_, err := g.CommitMessage(context.Background(), "+x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Contains(t, err.Error(), "commit message generation failed")
	assert.Contains(t, err.Error(), "quota exceeded")

	_, err = g.Summary(context.Background(), "+x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))

	_, err = g.ChangelogEntry(context.Background(), "+x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Equal(t, 3, fake.calls)
}

func completionServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": body}},
			},
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCommitMessage_TrimsResponse(t *testing.T) {
	server := completionServer(t, http.StatusOK, "  feat(x): add y  \n")

	out, err := CommitMessage(context.Background(), "key", "model", "+y", llm.WithBaseURL(server.URL))
	require.NoError(t, err)
	assert.Equal(t, "feat(x): add y", out)
}

func TestCommitMessage_DebugLogScenario(t *testing.T) {
	server := completionServer(t, http.StatusOK, "feat: add debug log")
	diff := "diff --git a/app.js b/app.js\n+console.log('hi')\n"

	out, err := CommitMessage(context.Background(), "key", "model", diff, llm.WithBaseURL(server.URL))
	require.NoError(t, err)
	assert.Equal(t, "feat: add debug log", out)
}

func TestServerError_SurfacesStatusAndBody(t *testing.T) {
	server := completionServer(t, http.StatusInternalServerError, "quota exceeded")

	_, err := CommitMessage(context.Background(), "key", "model", "+x", llm.WithBaseURL(server.URL))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "quota exceeded")

	_, err = Summary(context.Background(), "key", "model", "+x", llm.WithBaseURL(server.URL))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestCommitMessage_EmptyCompletionFails(t *testing.T) {
	server := completionServer(t, http.StatusOK, "  \n")

	out, err := CommitMessage(context.Background(), "key", "model", "+x", llm.WithBaseURL(server.URL))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
}

func TestChangelogEntry_MatchesSummary(t *testing.T) {
	server := completionServer(t, http.StatusOK, "- Added debug logging\n- Touched app.js\n")

	summary, err := Summary(context.Background(), "key", "model", "+x", llm.WithBaseURL(server.URL))
	require.NoError(t, err)
	entry, err := ChangelogEntry(context.Background(), "key", "model", "+x", llm.WithBaseURL(server.URL))
	require.NoError(t, err)

	assert.Equal(t, "- Added debug logging\n- Touched app.js", summary)
	assert.Equal(t, summary, entry)
}

func TestMissingCredential(t *testing.T) {
	_, err := CommitMessage(context.Background(), "", "model", "+x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGenerationFailed))
}
