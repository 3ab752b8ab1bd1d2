package llm

import (
	"context"

	"github.com/cockroachdb/errors"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// DefaultBaseURL points the OpenAI-compatible client at OpenRouter
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Role of a prompt message
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one role-tagged entry of a completion request. Order matters.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage creates a system-role message
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage creates a user-role message
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// LLM defines the interface for language model completion
type LLM interface {
	// Complete performs exactly one request and returns the first completion, trimmed.
	Complete(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption OptionType = "model"
	BaseURLOption   OptionType = "base_url"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{
		Type:  ModelNameOption,
		Value: model,
	}
}

// WithBaseURL creates an option to point the client at another endpoint
func WithBaseURL(baseURL string) Option {
	return Option{
		Type:  BaseURLOption,
		Value: baseURL,
	}
}

// NewLLM creates a client for the named provider. The credential and model
// are bound to the returned client; the model name is passed through as is.
func NewLLM(providerName, apiKey, modelName string, opts ...Option) (LLM, error) {
	if apiKey == "" {
		return nil, errors.New("API key cannot be empty")
	}

	options := append([]Option{WithModel(modelName)}, opts...)

	switch providerName {
	case ProviderOpenAI, "":
		return NewOpenAI(apiKey, options...)
	case ProviderAnthropic:
		return NewAnthropic(apiKey, options...)
	default:
		return nil, errors.Newf("unsupported provider: %s", providerName)
	}
}
