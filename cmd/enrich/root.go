package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smhanov/enrich"
	"github.com/smhanov/enrich/fetch"
	"github.com/smhanov/enrich/llm"
	"github.com/smhanov/enrich/search"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagSearch   string
	flagModel    string
	flagTimeout  string
	flagParallel bool
	flagConfig   string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "enrich <company name>",
	Short: "Enrich a company record from public web sources",
	Long: "Enrich researches a company by name and emits a JSON record with its\nofficial website, LinkedIn/Twitter profiles, CEO, and a short summary.",
	Args:         cobra.ExactArgs(1),
	RunE:         runEnrich,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagSearch, "search", "", "search provider: duckduckgo, brave, or tavily")
	rootCmd.Flags().StringVar(&flagModel, "model", "", "Gemini model name")
	rootCmd.Flags().StringVar(&flagTimeout, "timeout", "", "overall run timeout, e.g. 3m")
	rootCmd.Flags().BoolVar(&flagParallel, "parallel", false, "run loop iterations concurrently")
	rootCmd.Flags().StringVar(&flagConfig, "config", "enrich.yaml", "config file path")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Version = version
}

func runEnrich(cmd *cobra.Command, args []string) error {
	// A .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.applyFlags(); err != nil {
		return err
	}

	logger, err := buildLogger(flagVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	searcher, err := buildSearcher(cfg.Search)
	if err != nil {
		return err
	}
	model, err := llm.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"), cfg.Model)
	if err != nil {
		return err
	}

	pipeline, err := enrich.New(
		enrich.WithSearchProvider(searcher),
		enrich.WithFetchProvider(fetch.NewHTTP()),
		enrich.WithModel(model),
		enrich.WithLogger(logger),
		enrich.WithParallelLoops(cfg.Parallel),
	)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, args[0])
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func buildSearcher(name string) (enrich.SearchProvider, error) {
	switch name {
	case "duckduckgo":
		return search.NewDuckDuckGo(), nil
	case "brave":
		key := os.Getenv("BRAVE_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("brave search requires BRAVE_API_KEY")
		}
		return search.NewBrave(key), nil
	case "tavily":
		key := os.Getenv("TAVILY_API_KEY")
		if key == "" {
			return nil, fmt.Errorf("tavily search requires TAVILY_API_KEY")
		}
		return search.NewTavily(key, ""), nil
	default:
		return nil, fmt.Errorf("unknown search provider: %s", name)
	}
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}
