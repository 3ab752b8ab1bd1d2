// Package config resolves komp's runtime configuration from flags, environment
// variables and defaults, and the per-repository settings file.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration keys; the flag-backed ones match their flag names
const (
	KeyAPIKey      = "api-key"
	KeyModel       = "model"
	KeyProvider    = "provider"
	KeyBaseURL     = "base-url"
	KeyGitHubToken = "github-token"
	KeyLogLevel    = "log-level"
)

// Environment variables read by komp
const (
	EnvAPIKey      = "OPENROUTER_API_KEY"
	EnvModel       = "OPENROUTER_MODEL"
	EnvGitHubToken = "GITHUB_TOKEN"
)

const (
	DefaultModel    = "openai/gpt-3.5-turbo"
	DefaultProvider = "openai"
	DefaultBaseURL  = "https://openrouter.ai/api/v1"
	DefaultLogLevel = "warn"
)

var envBindings = map[string][]string{
	KeyAPIKey:      {EnvAPIKey, "KOMP_API_KEY"},
	KeyModel:       {EnvModel, "KOMP_MODEL"},
	KeyGitHubToken: {EnvGitHubToken, "KOMP_GITHUB_TOKEN"},
	KeyProvider:    {"KOMP_PROVIDER"},
	KeyBaseURL:     {"KOMP_BASE_URL"},
	KeyLogLevel:    {"KOMP_LOG_LEVEL"},
}

// ErrMissingAPIKey is returned by Validate when no credential is configured
var ErrMissingAPIKey = errors.New("missing API key: run `komp init` or set " + EnvAPIKey)

// Config is the resolved runtime configuration passed down to commands
type Config struct {
	APIKey      string
	Model       string
	Provider    string
	BaseURL     string
	GitHubToken string
	LogLevel    string
}

// NewViper returns a viper instance with komp's defaults and environment bindings
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyModel, DefaultModel)
	v.SetDefault(KeyProvider, DefaultProvider)
	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	// every key is bound explicitly; the first set variable in a list wins,
	// so the OpenRouter names take precedence over the KOMP_ ones
	for key, names := range envBindings {
		_ = v.BindEnv(append([]string{key}, names...)...)
	}

	return v
}

// BindFlags binds every flag in the set to the viper instance
func BindFlags(flags *pflag.FlagSet, v *viper.Viper) error {
	var result error
	flags.VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			result = multierror.Append(result, err)
		}
	})
	return result
}

// Load reads the configuration from the viper instance
func Load(v *viper.Viper) Config {
	return Config{
		APIKey:      strings.TrimSpace(v.GetString(KeyAPIKey)),
		Model:       strings.TrimSpace(v.GetString(KeyModel)),
		Provider:    strings.ToLower(strings.TrimSpace(v.GetString(KeyProvider))),
		BaseURL:     strings.TrimSpace(v.GetString(KeyBaseURL)),
		GitHubToken: strings.TrimSpace(v.GetString(KeyGitHubToken)),
		LogLevel:    v.GetString(KeyLogLevel),
	}
}

// Validate checks that the configuration can be used to call the model
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
