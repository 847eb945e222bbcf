// Package search provides search provider implementations for the
// enrichment pipeline.
//
// Available providers:
//
//   - DuckDuckGo: Free, no API key required (uses HTML scraping of lite.duckduckgo.com)
//   - Brave: Requires API key via X-Subscription-Token header
//   - Tavily: Requires API key, supports basic/advanced depth modes
//
// # DuckDuckGo Example
//
//	provider := search.NewDuckDuckGo()
//	results, err := provider.Search(ctx, "Acme Corp official website", 5)
//
// # Brave Example
//
//	provider := search.NewBrave("your-api-key")
//	results, err := provider.Search(ctx, "Acme Corp CEO name", 5)
//
// # Tavily Example
//
//	provider := search.NewTavily("your-api-key", "advanced")
//	results, err := provider.Search(ctx, "Acme Corp LinkedIn company page", 3)
//
// # Custom Providers
//
// Implement the enrich.SearchProvider interface to add your own search backend:
//
//	type SearchProvider interface {
//	    Search(ctx context.Context, query string, limit int) ([]enrich.SearchResult, error)
//	}
package search
