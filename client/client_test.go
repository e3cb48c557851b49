package client

import (
	"context"
	"testing"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/model"
	"github.com/stretchr/testify/assert"
)

// testModel implements inkwell.Model for testing.
type testModel struct {
	id       string
	provider ai.Provider
}

func (m testModel) String() string        { return m.id }
func (m testModel) Provider() ai.Provider { return m.provider }

func TestErrMissingAPIKey(t *testing.T) {
	t.Run("Error with model", func(t *testing.T) {
		err := &ErrMissingAPIKey{Provider: "anthropic", Model: "claude-sonnet"}
		expected := `no API key configured for anthropic (required by model "claude-sonnet")`
		assert.Equal(t, expected, err.Error())
	})

	t.Run("Error without model", func(t *testing.T) {
		err := &ErrMissingAPIKey{Provider: "openai"}
		expected := "no API key configured for openai"
		assert.Equal(t, expected, err.Error())
	})
}

func TestErrNoModel(t *testing.T) {
	err := &ErrNoModel{Operation: "chat"}
	assert.Contains(t, err.Error(), "no model specified for chat")
}

func TestNew(t *testing.T) {
	t.Run("creates client with API keys", func(t *testing.T) {
		c := New(Config{
			APIKeys: APIKeys{
				Anthropic: "test-anthropic-key",
				OpenAI:    "test-openai-key",
			},
		})
		assert.NotNil(t, c)
	})

	t.Run("creates client with default model", func(t *testing.T) {
		c := New(Config{
			Defaults: Defaults{Chat: model.DefaultClaudeModel},
		})
		assert.NotNil(t, c)
		assert.Equal(t, model.DefaultClaudeModel, c.defaults.Chat)
	})
}

func TestChatNoModel(t *testing.T) {
	c := New(Config{})

	_, err := c.Chat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "hello"},
	})

	var noModel *ErrNoModel
	assert.ErrorAs(t, err, &noModel)
	assert.Equal(t, "chat", noModel.Operation)
}

func TestChatMissingAPIKey(t *testing.T) {
	t.Run("anthropic", func(t *testing.T) {
		c := New(Config{Defaults: Defaults{Chat: model.DefaultClaudeModel}})

		_, err := c.Chat(context.Background(), []ai.Message{
			{Role: ai.RoleUser, Content: "hello"},
		})

		var missing *ErrMissingAPIKey
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, "anthropic", missing.Provider)
	})

	t.Run("openai", func(t *testing.T) {
		c := New(Config{Defaults: Defaults{Chat: model.DefaultGPTModel}})

		_, err := c.Chat(context.Background(), []ai.Message{
			{Role: ai.RoleUser, Content: "hello"},
		})

		var missing *ErrMissingAPIKey
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, "openai", missing.Provider)
	})
}

func TestChatUnsupportedProvider(t *testing.T) {
	c := New(Config{
		Defaults: Defaults{Chat: testModel{id: "mystery-1", provider: ai.Provider("mystery")}},
	})

	_, err := c.Chat(context.Background(), []ai.Message{
		{Role: ai.RoleUser, Content: "hello"},
	})

	assert.ErrorContains(t, err, "unsupported provider")
}
