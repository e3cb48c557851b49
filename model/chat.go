package model

import ai "github.com/spetersoncode/inkwell"

// ChatModel represents a chat/completion model from any provider.
type ChatModel struct {
	id       string
	provider ai.Provider
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ChatModel) Provider() ai.Provider { return m.provider }

// Anthropic Claude models.
var (
	ClaudeOpus45   = ChatModel{id: "claude-opus-4-5", provider: ai.ProviderAnthropic}
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: ai.ProviderAnthropic}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: ai.ProviderAnthropic}

	// DefaultClaudeModel is the recommended default Anthropic model.
	DefaultClaudeModel = ClaudeSonnet45
)

// OpenAI GPT models.
var (
	GPT52     = ChatModel{id: "gpt-5.2", provider: ai.ProviderOpenAI}
	GPT51     = ChatModel{id: "gpt-5.1", provider: ai.ProviderOpenAI}
	GPT51Mini = ChatModel{id: "gpt-5.1-mini", provider: ai.ProviderOpenAI}
	GPT5Mini  = ChatModel{id: "gpt-5-mini", provider: ai.ProviderOpenAI}
	O4Mini    = ChatModel{id: "o4-mini", provider: ai.ProviderOpenAI}

	// DefaultGPTModel is the recommended default OpenAI model.
	DefaultGPTModel = GPT51Mini
)

// Google Gemini models.
var (
	Gemini3Pro    = ChatModel{id: "gemini-3.0-pro", provider: ai.ProviderGoogle}
	Gemini25Flash = ChatModel{id: "gemini-2.5-flash", provider: ai.ProviderGoogle}

	// DefaultGeminiModel is the recommended default Google model.
	DefaultGeminiModel = Gemini25Flash
)

// byID indexes every curated model by its API identifier.
var byID = map[string]ChatModel{}

func init() {
	for _, m := range []ChatModel{
		ClaudeOpus45, ClaudeSonnet45, ClaudeHaiku45,
		GPT52, GPT51, GPT51Mini, GPT5Mini, O4Mini,
		Gemini3Pro, Gemini25Flash,
	} {
		byID[m.id] = m
	}
}

// Lookup resolves an API identifier to a curated model.
// Returns false for identifiers that are not in the curated set.
func Lookup(id string) (ChatModel, bool) {
	m, ok := byID[id]
	return m, ok
}
