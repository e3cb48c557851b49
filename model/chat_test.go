package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/inkwell"
)

func TestModelProviders(t *testing.T) {
	tests := []struct {
		model    ChatModel
		provider ai.Provider
	}{
		{ClaudeOpus45, ai.ProviderAnthropic},
		{ClaudeSonnet45, ai.ProviderAnthropic},
		{ClaudeHaiku45, ai.ProviderAnthropic},
		{GPT52, ai.ProviderOpenAI},
		{GPT51Mini, ai.ProviderOpenAI},
		{O4Mini, ai.ProviderOpenAI},
		{Gemini3Pro, ai.ProviderGoogle},
		{Gemini25Flash, ai.ProviderGoogle},
	}

	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			assert.Equal(t, tt.provider, tt.model.Provider())
		})
	}
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, ClaudeSonnet45, DefaultClaudeModel)
	assert.Equal(t, GPT51Mini, DefaultGPTModel)
	assert.Equal(t, Gemini25Flash, DefaultGeminiModel)
}

func TestLookup(t *testing.T) {
	m, ok := Lookup("gpt-5.1-mini")
	require.True(t, ok)
	assert.Equal(t, GPT51Mini, m)

	m, ok = Lookup("claude-sonnet-4-5")
	require.True(t, ok)
	assert.Equal(t, ai.ProviderAnthropic, m.Provider())

	_, ok = Lookup("not-a-model")
	assert.False(t, ok)
}

func TestModelSatisfiesInterface(t *testing.T) {
	var m ai.Model = DefaultGPTModel
	assert.Equal(t, "gpt-5.1-mini", m.String())
}
