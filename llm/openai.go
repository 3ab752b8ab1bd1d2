package llm

import (
	"context"
	"strings"

	"github.com/bitrise-io/komp/logger"
	"github.com/cockroachdb/errors"
	"github.com/sashabaranov/go-openai"
)

// OpenAIModel implements the LLM interface for any OpenAI-compatible chat
// completions endpoint (OpenRouter by default)
type OpenAIModel struct {
	client    *openai.Client
	modelName string
	baseURL   string
}

// NewOpenAI creates a new OpenAI-compatible client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	model := &OpenAIModel{
		modelName: "openai/gpt-3.5-turbo",
		baseURL:   DefaultBaseURL,
	}

	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok && modelName != "" {
				model.modelName = modelName
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok && baseURL != "" {
				model.baseURL = strings.TrimRight(baseURL, "/")
			}
		}
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = model.baseURL
	config.HTTPClient = newHTTPClient()
	model.client = openai.NewClientWithConfig(config)

	logger.Debugf("OpenAI-compatible client initialized with model: %s, base URL: %s", model.modelName, model.baseURL)

	return model, nil
}

// Complete sends the messages as one chat completion request
func (o *OpenAIModel) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	chatMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		chatMessages = append(chatMessages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:     o.modelName,
		Messages:  chatMessages,
		MaxTokens: maxTokens,
	}

	logger.Infof("Sending request with model %s, max tokens %d", o.modelName, maxTokens)

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", completionError(err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.New("completion response contained no text")
	}

	return content, nil
}
