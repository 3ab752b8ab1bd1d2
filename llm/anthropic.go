package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/bitrise-io/komp/logger"
	"github.com/cockroachdb/errors"
)

// AnthropicModel implements the LLM interface using Anthropic's API
type AnthropicModel struct {
	client    anthropic.Client
	modelName string
}

// NewAnthropic creates a new Anthropic client
func NewAnthropic(apiKey string, opts ...Option) (*AnthropicModel, error) {
	if apiKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	model := &AnthropicModel{
		modelName: string(anthropic.ModelClaude3_5HaikuLatest),
	}

	// the SDK retries by default; one call is one request here
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(newHTTPClient()),
	}

	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok && modelName != "" {
				model.modelName = modelName
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok && baseURL != "" {
				clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
			}
		}
	}

	model.client = anthropic.NewClient(clientOpts...)

	logger.Debugf("Anthropic client initialized with model: %s", model.modelName)

	return model, nil
}

// Complete sends the messages to the Messages API. System messages become
// the top-level system prompt.
func (a *AnthropicModel) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	var system []anthropic.TextBlockParam
	var params []anthropic.MessageParam

	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
			continue
		}
		params = append(params, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
	}

	logger.Infof("Sending request to Anthropic with model %s, max tokens %d", a.modelName, maxTokens)

	message, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.modelName),
		MaxTokens: int64(maxTokens),
		System:    system,
		Messages:  params,
	})
	if err != nil {
		return "", completionError(err)
	}

	var content strings.Builder
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content.WriteString(b.Text)
		}
	}

	if content.Len() == 0 {
		return "", errors.New("completion response contained no text")
	}

	return strings.TrimSpace(content.String()), nil
}
