package pullrequest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGitHub struct {
	listQuery  string
	editedBody string
	edits      int
	prs        string
}

func newFakeGitHub(t *testing.T, prs string) (*fakeGitHub, *GitHub) {
	t.Helper()
	f := &fakeGitHub{prs: prs}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/bitrise-io/komp/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer ghp_test", r.Header.Get("Authorization"))
		f.listQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(f.prs))
	})
	mux.HandleFunc("/repos/bitrise-io/komp/pulls/7", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		var req struct {
			Body string `json:"body"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		f.edits++
		f.editedBody = req.Body
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"number":7,"html_url":"https://github.com/bitrise-io/komp/pull/7","body":%q}`, req.Body)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	gh, err := NewGitHub(WithAPIToken("ghp_test"), WithBaseURL(server.URL))
	require.NoError(t, err)
	return f, gh
}

func TestUpdateDescription(t *testing.T) {
	prs := `[{"number":7,"body":"Closes #3","head":{"ref":"feature/login","label":"bitrise-io:feature/login"}}]`
	f, gh := newFakeGitHub(t, prs)

	url, err := gh.UpdateDescription(context.Background(), "bitrise-io", "komp", "feature/login", "- Added login")
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/bitrise-io/komp/pull/7", url)
	assert.Contains(t, f.listQuery, "state=open")
	assert.Contains(t, f.listQuery, "head=bitrise-io%3Afeature%2Flogin")
	assert.Equal(t, 1, f.edits)
	assert.Equal(t, "Closes #3\n\n"+SummaryMarker+"\n- Added login\n", f.editedBody)
}

func TestUpdateDescription_NoPullRequest(t *testing.T) {
	f, gh := newFakeGitHub(t, `[]`)

	_, err := gh.UpdateDescription(context.Background(), "bitrise-io", "komp", "main", "- x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPullRequest))
	assert.Equal(t, 0, f.edits)
}

func TestNewGitHub_RequiresToken(t *testing.T) {
	_, err := NewGitHub()
	assert.Error(t, err)
}
