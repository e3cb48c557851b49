package google

import (
	ai "github.com/spetersoncode/inkwell"
	"google.golang.org/genai"
)

func convertMessages(messages []ai.Message) []*genai.Content {
	var contents []*genai.Content

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		role := "user"
		switch msg.Role {
		case ai.RoleAssistant:
			role = "model"
		case ai.RoleSystem:
			// Gemini has no separate system role on this path, so system
			// prompts ride along as user content.
			role = "user"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	return contents
}
