// Package blog generates a technical blog post from a topic string.
//
// A run flows through five stages over a shared [State]: classify the
// topic into a handling mode, optionally research it on the web, plan an
// outline of 5 to 9 sections, write every section concurrently, and
// assemble the final Markdown document. The stages are wired into a
// graph pipeline by [New]; the engine owns scheduling, the conditional
// research edge, and the fan-out barrier.
//
//	p := blog.New(blog.Config{Chat: chatClient, Search: searchClient})
//	summary, err := p.Run(ctx, "This week in AI", blog.WithAsOf(asOf))
//
// External collaborators (the chat client, the search client, the file
// system) are injected through [Config] so tests can substitute mocks.
package blog
