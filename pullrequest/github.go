package pullrequest

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/bitrise-io/komp/logger"
	"github.com/cockroachdb/errors"
	"github.com/google/go-github/v48/github"
	"golang.org/x/oauth2"
)

// GitHub updates pull request descriptions through the GitHub API
type GitHub struct {
	client   *github.Client
	apiToken string
	timeout  int
}

// NewGitHub creates a new GitHub client
func NewGitHub(opts ...Option) (*GitHub, error) {
	gh := &GitHub{
		timeout: 60,
	}

	var baseURL string
	for _, opt := range opts {
		switch opt.Type {
		case APITokenOption:
			if token, ok := opt.Value.(string); ok {
				gh.apiToken = token
			}
		case TimeoutOption:
			if timeout, ok := opt.Value.(int); ok && timeout > 0 {
				gh.timeout = timeout
			}
		case BaseURLOption:
			if u, ok := opt.Value.(string); ok {
				baseURL = u
			}
		}
	}

	if gh.apiToken == "" {
		return nil, errors.New("API token is required for GitHub (set GITHUB_TOKEN)")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: gh.apiToken})
	tc := oauth2.NewClient(context.Background(), ts)
	gh.client = github.NewClient(tc)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid GitHub base URL %q", baseURL)
		}
		gh.client.BaseURL = u
	}

	return gh, nil
}

func (gh *GitHub) findOpenPullRequest(ctx context.Context, owner, repo, branch string) (*github.PullRequest, error) {
	prs, _, err := gh.client.PullRequests.List(ctx, owner, repo, &github.PullRequestListOptions{
		State: "open",
		Head:  owner + ":" + branch,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pull requests")
	}

	for _, pr := range prs {
		if pr.GetHead().GetRef() == branch {
			return pr, nil
		}
	}
	return nil, errors.Wrapf(ErrNoPullRequest, "%s", branch)
}

// UpdateDescription writes summary into the description of the open pull
// request whose head is branch and returns its URL
func (gh *GitHub) UpdateDescription(ctx context.Context, owner, repo, branch, summary string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(gh.timeout)*time.Second)
	defer cancel()

	pr, err := gh.findOpenPullRequest(ctx, owner, repo, branch)
	if err != nil {
		return "", err
	}

	body := WithSummary(pr.GetBody(), summary)
	logger.Debugf("Updating description of %s/%s#%d", owner, repo, pr.GetNumber())

	updated, _, err := gh.client.PullRequests.Edit(ctx, owner, repo, pr.GetNumber(), &github.PullRequest{
		Body: &body,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to update pull request #%d", pr.GetNumber())
	}

	return updated.GetHTMLURL(), nil
}
