package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLines(t *testing.T) {
	tests := []struct {
		render func(string) string
		symbol string
	}{
		{Info, "ℹ"},
		{Ok, "✔"},
		{Warn, "⚠"},
		{Err, "✖"},
		{Step, "➜"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			out := tt.render("Checking for staged changes...")
			assert.Contains(t, out, tt.symbol)
			assert.Contains(t, out, "Checking for staged changes...")
		})
	}
}

func TestBox(t *testing.T) {
	out := Box("Generated commit message:", "  feat: add debug log\n")

	assert.Contains(t, out, "Generated commit message:")
	assert.Contains(t, out, "feat: add debug log")
}

func TestSpinner(t *testing.T) {
	var buf bytes.Buffer

	sp := StartSpinner(&buf, "Generating commit message...")
	sp.Update("Still generating...")
	sp.Succeed("Commit message generated")

	assert.Contains(t, buf.String(), "Commit message generated")
}
