// Package pullrequest publishes generated summaries to the pull request open
// for the current branch.
package pullrequest

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// SummaryMarker starts the section of the description managed by komp
const SummaryMarker = "<!-- komp: summary -->"

// ErrNoPullRequest is returned when the branch has no open pull request
var ErrNoPullRequest = errors.New("no open pull request for branch")

// OptionType defines the type of option for the pull request client
type OptionType string

// Available option types
const (
	APITokenOption OptionType = "api_token"
	TimeoutOption  OptionType = "timeout"
	BaseURLOption  OptionType = "base_url"
)

// Option represents a configuration option for the pull request client
type Option struct {
	Type  OptionType
	Value any
}

// WithAPIToken creates an option to set the API token
func WithAPIToken(token string) Option {
	return Option{
		Type:  APITokenOption,
		Value: token,
	}
}

// WithTimeout creates an option to set the API timeout in seconds
func WithTimeout(timeout int) Option {
	return Option{
		Type:  TimeoutOption,
		Value: timeout,
	}
}

// WithBaseURL creates an option to set the API base URL for GitHub Enterprise
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

var remotePattern = regexp.MustCompile(`^(?:[a-z+]+://)?(?:[^@/]+@)?[^:/]+(?::\d+)?[:/]([^/]+)/([^/]+?)(?:\.git)?/?$`)

// ParseRemote extracts the owner and repository name from a git remote URL
func ParseRemote(remoteURL string) (string, string, error) {
	m := remotePattern.FindStringSubmatch(strings.TrimSpace(remoteURL))
	if m == nil {
		return "", "", errors.Newf("unrecognised remote URL: %q", remoteURL)
	}
	return m[1], m[2], nil
}

// WithSummary returns body with the komp section set to summary. Text above
// the marker is kept; a missing section is appended.
func WithSummary(body, summary string) string {
	section := SummaryMarker + "\n" + strings.TrimSpace(summary) + "\n"

	if idx := strings.Index(body, SummaryMarker); idx >= 0 {
		return body[:idx] + section
	}

	body = strings.TrimRight(body, "\n")
	if body == "" {
		return section
	}
	return body + "\n\n" + section
}
