// enrich looks up a company by name and prints an enriched JSON record:
// official website, social profile links, CEO, and a short summary.
//
// Usage:
//
//	enrich "Acme Corp" [--search=duckduckgo|brave|tavily] [--model=<gemini model>]
//	       [--timeout=3m] [--parallel] [--config=enrich.yaml] [-v]
//
// API keys are read from the environment (GEMINI_API_KEY, BRAVE_API_KEY,
// TAVILY_API_KEY); a .env file in the working directory is loaded if present.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
