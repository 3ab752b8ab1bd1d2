// Package generate turns a staged diff into a commit message, a summary or a
// changelog entry with one completion call each.
package generate

import (
	"context"

	"github.com/bitrise-io/komp/llm"
	"github.com/bitrise-io/komp/logger"
	"github.com/bitrise-io/komp/prompt"
	"github.com/cockroachdb/errors"
)

const (
	// CommitMaxTokens bounds the completion for a single-line message
	CommitMaxTokens = 300
	// SummaryMaxTokens leaves room for a multi-line summary
	SummaryMaxTokens = 800
)

// ErrGenerationFailed marks every error returned by a generation call
var ErrGenerationFailed = errors.New("generation failed")

// Generator builds prompts and sends them to a language model
type Generator struct {
	llm llm.LLM
}

// New creates a Generator on top of the given model client
func New(l llm.LLM) *Generator {
	return &Generator{llm: l}
}

// CommitMessage generates a single-line conventional commit message for the diff
func (g *Generator) CommitMessage(ctx context.Context, diff string) (string, error) {
	messages := []llm.Message{
		llm.SystemMessage(prompt.GetCommitSystemPrompt()),
		llm.UserMessage(prompt.GetCommitUserPrompt(diff)),
	}

	out, err := g.complete(ctx, messages, CommitMaxTokens)
	if err != nil {
		return "", failed(err, "commit message generation failed")
	}
	return out, nil
}

// Summary generates a multi-line, changelog-ready summary of the diff
func (g *Generator) Summary(ctx context.Context, diff string) (string, error) {
	messages := []llm.Message{
		llm.SystemMessage(prompt.GetSummarySystemPrompt()),
		llm.UserMessage(prompt.GetSummaryUserPrompt(diff)),
	}

	out, err := g.complete(ctx, messages, SummaryMaxTokens)
	if err != nil {
		return "", failed(err, "summary generation failed")
	}
	return out, nil
}

// ChangelogEntry returns the summary text unchanged
func (g *Generator) ChangelogEntry(ctx context.Context, diff string) (string, error) {
	return g.Summary(ctx, diff)
}

func (g *Generator) complete(ctx context.Context, messages []llm.Message, maxTokens int) (string, error) {
	for _, m := range messages {
		logger.Debugf("%s prompt:\n%s", m.Role, m.Content)
	}
	return g.llm.Complete(ctx, messages, maxTokens)
}

func failed(err error, msg string) error {
	return errors.Mark(errors.Wrap(err, msg), ErrGenerationFailed)
}

// CommitMessage generates a commit message with a client built from the credential and model
func CommitMessage(ctx context.Context, apiKey, model, diff string, opts ...llm.Option) (string, error) {
	g, err := newDefault(apiKey, model, opts...)
	if err != nil {
		return "", failed(err, "commit message generation failed")
	}
	return g.CommitMessage(ctx, diff)
}

// Summary generates a summary with a client built from the credential and model
func Summary(ctx context.Context, apiKey, model, diff string, opts ...llm.Option) (string, error) {
	g, err := newDefault(apiKey, model, opts...)
	if err != nil {
		return "", failed(err, "summary generation failed")
	}
	return g.Summary(ctx, diff)
}

// ChangelogEntry generates a changelog entry with a client built from the credential and model
func ChangelogEntry(ctx context.Context, apiKey, model, diff string, opts ...llm.Option) (string, error) {
	return Summary(ctx, apiKey, model, diff, opts...)
}

func newDefault(apiKey, model string, opts ...llm.Option) (*Generator, error) {
	l, err := llm.NewLLM(llm.ProviderOpenAI, apiKey, model, opts...)
	if err != nil {
		return nil, err
	}
	return New(l), nil
}
