// Package chat provides the canonical chat client interface.
//
// This package exists so the graph and blog packages can depend on a chat
// client without importing the concrete client package, which would create
// an import cycle. The [github.com/spetersoncode/inkwell/client.Client]
// type implements this interface.
package chat

import (
	"context"

	ai "github.com/spetersoncode/inkwell"
)

// Client defines the interface for high-level chat clients.
type Client interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error)
}
