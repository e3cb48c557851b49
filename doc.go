// Package inkwell provides the core types for talking to LLM providers.
//
// The inkwell module generates technical blog posts from a topic string by
// running a staged pipeline: classify the topic, optionally research it on
// the web, plan an outline, write every section in parallel, and assemble
// the final document. The root package holds the provider-agnostic exchange
// types; the interesting machinery lives in the subpackages.
//
// # Packages
//
//   - [github.com/spetersoncode/inkwell/client]: unified multi-provider chat
//     client with retry (Anthropic, OpenAI, Google)
//   - [github.com/spetersoncode/inkwell/graph]: the staged pipeline engine
//     (chains, conditional routing, dynamic fan-out with a join barrier)
//   - [github.com/spetersoncode/inkwell/blog]: the blog generation stages
//   - [github.com/spetersoncode/inkwell/search]: Tavily web search client
//   - [github.com/spetersoncode/inkwell/schema]: fluent JSON Schema builder
//     for structured model output
//
// # Basic Usage
//
// Send a chat message through the unified client:
//
//	c := client.New(client.Config{
//	    APIKeys: client.APIKeys{OpenAI: os.Getenv("OPENAI_API_KEY")},
//	    Defaults: client.Defaults{Chat: model.DefaultGPTModel},
//	})
//
//	resp, err := c.Chat(ctx, []inkwell.Message{
//	    {Role: inkwell.RoleUser, Content: "Explain beam search."},
//	})
//
// # Structured Output
//
// Request JSON responses validated against a schema:
//
//	resp, err := c.Chat(ctx, msgs, inkwell.WithResponseSchema(blog.PlanSchema()))
//
// Or use the typed helper, which sends the schema and unmarshals:
//
//	plan, err := client.ChatTyped[blog.Plan](ctx, c, blog.PlanSchema(), msgs)
//
// # Running the Pipeline
//
// The blog package wires the stages into a runnable pipeline:
//
//	p := blog.New(blog.Config{Chat: c, Search: searchClient})
//	summary, err := p.Run(ctx, "This week in AI", blog.WithAsOf(asOf))
package inkwell
