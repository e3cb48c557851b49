// Package model provides curated chat model identifiers for supported providers.
//
// Each model carries its provider affinity, which the client uses to route
// requests to the correct backend:
//
//	c.Chat(ctx, msgs, inkwell.WithModel(model.ClaudeSonnet45))
package model
