package cmd

import (
	"bytes"
	"testing"

	"github.com/bitrise-io/komp/config"
	"github.com/bitrise-io/komp/llm"
	"github.com/bitrise-io/komp/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	tests := []struct {
		path  []string
		flags map[string]string
	}{
		{[]string{"generate", "commit"}, map[string]string{"commit": "c", "push": "p"}},
		{[]string{"generate", "summary"}, map[string]string{"pr": ""}},
		{[]string{"generate", "changelog"}, map[string]string{"new": "n", "push": "p"}},
		{[]string{"init"}, nil},
		{[]string{"update"}, nil},
		{[]string{"version"}, nil},
	}

	for _, tt := range tests {
		cmd, _, err := rootCmd.Find(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.path[len(tt.path)-1], cmd.Name())

		for name, shorthand := range tt.flags {
			f := cmd.Flags().Lookup(name)
			require.NotNil(t, f, "%v --%s", tt.path, name)
			assert.Equal(t, shorthand, f.Shorthand)
		}
	}

	for _, name := range []string{config.KeyModel, config.KeyProvider, config.KeyBaseURL, config.KeyLogLevel} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "komp v"+version.Version+"\n", out.String())
}

func TestLLMOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want int
	}{
		{"openai default", config.Config{Provider: llm.ProviderOpenAI, BaseURL: config.DefaultBaseURL}, 1},
		{"anthropic default", config.Config{Provider: llm.ProviderAnthropic, BaseURL: config.DefaultBaseURL}, 0},
		{"anthropic custom", config.Config{Provider: llm.ProviderAnthropic, BaseURL: "http://proxy"}, 1},
		{"empty", config.Config{Provider: llm.ProviderOpenAI}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, llmOptions(tt.cfg), tt.want)
		})
	}
}
