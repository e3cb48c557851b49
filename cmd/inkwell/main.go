// Package main is the entry point for the inkwell CLI.
//
// Usage:
//
//	inkwell "Self-Attention in Transformers"
//	inkwell --as-of 2026-02-19 --model gpt-5.1-mini "This week in AI"
//
// API keys are read from the environment (ANTHROPIC_API_KEY,
// OPENAI_API_KEY, GEMINI_API_KEY, TAVILY_API_KEY), with a .env file in the
// working directory loaded first if present.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	ai "github.com/spetersoncode/inkwell"
	"github.com/spetersoncode/inkwell/blog"
	"github.com/spetersoncode/inkwell/client"
	"github.com/spetersoncode/inkwell/graph"
	"github.com/spetersoncode/inkwell/model"
	"github.com/spetersoncode/inkwell/search"
)

const defaultTopic = "AI for kids"

var (
	flagAsOf    string
	flagModel   string
	flagOutDir  string
	flagWorkers int
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "inkwell [topic]",
	Short: "Generate a technical blog post from a topic",
	Long: `inkwell generates a technical blog post from a topic string.

The topic is classified into a handling mode (evergreen, hybrid, or
time-sensitive), researched on the web when freshness matters, planned
into an outline, written section by section in parallel, and assembled
into a Markdown document on disk.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&flagAsOf, "as-of", "", "reference date YYYY-MM-DD (default: today)")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "chat model id (default: "+model.DefaultGPTModel.String()+")")
	rootCmd.Flags().StringVar(&flagOutDir, "out-dir", "", "output directory (default: current directory)")
	rootCmd.Flags().IntVar(&flagWorkers, "max-workers", 0, "limit concurrent section writers (0 = unlimited)")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress progress output")
}

func initConfig() {
	// A local .env file supplies API keys during development.
	_ = godotenv.Load()

	viper.SetEnvPrefix("INKWELL")
	viper.AutomaticEnv()

	for _, key := range []string{
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "TAVILY_API_KEY",
	} {
		_ = viper.BindEnv(key, key, "INKWELL_"+key)
	}
}

func run(cmd *cobra.Command, args []string) error {
	topic := defaultTopic
	if len(args) > 0 {
		topic = strings.Join(args, " ")
	}

	asOf := time.Now()
	if flagAsOf != "" {
		parsed, err := time.Parse("2006-01-02", flagAsOf)
		if err != nil {
			return fmt.Errorf("invalid --as-of date %q: %w", flagAsOf, err)
		}
		asOf = parsed
	}

	var chatModel ai.Model = model.DefaultGPTModel
	if flagModel != "" {
		m, ok := model.Lookup(flagModel)
		if !ok {
			return fmt.Errorf("unknown model %q", flagModel)
		}
		chatModel = m
	}

	tavilyKey := viper.GetString("TAVILY_API_KEY")
	if tavilyKey == "" {
		return fmt.Errorf("TAVILY_API_KEY is not set")
	}

	chatClient := client.New(client.Config{
		APIKeys: client.APIKeys{
			Anthropic: viper.GetString("ANTHROPIC_API_KEY"),
			OpenAI:    viper.GetString("OPENAI_API_KEY"),
			Google:    viper.GetString("GEMINI_API_KEY"),
		},
		Defaults: client.Defaults{Chat: chatModel},
	})

	pipeline := blog.New(blog.Config{
		Chat:   chatClient,
		Search: search.NewClient(tavilyKey),
		OutDir: flagOutDir,
	})

	runOpts := []blog.RunOption{blog.WithAsOf(asOf)}
	var graphOpts []graph.Option
	if flagWorkers > 0 {
		graphOpts = append(graphOpts, graph.WithMaxConcurrency(flagWorkers))
	}
	if !flagQuiet {
		graphOpts = append(graphOpts, graph.WithObserver(printProgress))
	}
	if len(graphOpts) > 0 {
		runOpts = append(runOpts, blog.WithGraphOptions(graphOpts...))
	}

	summary, err := pipeline.Run(cmd.Context(), topic, runOpts...)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	printSummary(summary)
	return nil
}

// printProgress renders engine events as one line each on stderr.
func printProgress(e graph.Event) {
	switch e.Type {
	case graph.EventStageStart:
		fmt.Fprintf(os.Stderr, "-> %s\n", e.Stage)
	case graph.EventRouteSelected:
		fmt.Fprintf(os.Stderr, "   route: %s\n", e.Route)
	case graph.EventFanOutStart:
		fmt.Fprintf(os.Stderr, "   writing %d sections\n", e.Width)
	case graph.EventWorkerDone:
		if e.Err != nil {
			fmt.Fprintf(os.Stderr, "   section %d failed: %v\n", e.Worker, e.Err)
		} else {
			fmt.Fprintf(os.Stderr, "   section %d done\n", e.Worker)
		}
	}
}

func printSummary(s *blog.Summary) {
	sep := strings.Repeat("=", 90)

	queries := s.Queries
	if len(queries) > 4 {
		queries = queries[:4]
	}

	fmt.Println(sep)
	fmt.Printf("  TOPIC         : %s\n", s.Topic)
	fmt.Printf("  AS_OF         : %s   RECENCY_DAYS: %d\n", s.AsOf.Format("2006-01-02"), s.RecencyDays)
	fmt.Printf("  MODE          : %s\n", s.Mode)
	fmt.Printf("  BLOG_KIND     : %s\n", s.Kind)
	fmt.Printf("  NEEDS_RESEARCH: %t\n", s.NeedsResearch)
	fmt.Printf("  QUERIES       : %v\n", queries)
	fmt.Printf("  EVIDENCE_COUNT: %d\n", s.EvidenceCount)
	fmt.Printf("  TASKS         : %d\n", s.TaskCount)
	fmt.Printf("  OUTPUT_CHARS  : %d\n", s.OutputBytes)
	fmt.Printf("  SAVED AS      : %s\n", s.Filename)
	fmt.Println(sep)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
