package enrich

import "go.uber.org/zap"

const defaultMaxCandidates = 3

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSearchProvider sets the search implementation.
func WithSearchProvider(searcher SearchProvider) Option {
	return func(p *Pipeline) { p.searcher = searcher }
}

// WithFetchProvider sets the page fetch implementation.
func WithFetchProvider(fetcher FetchProvider) Option {
	return func(p *Pipeline) { p.fetcher = fetcher }
}

// WithModel sets the language model used for extraction and summarization.
func WithModel(m LLMProvider) Option {
	return func(p *Pipeline) { p.model = m }
}

// WithLogger sets the structured logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Pipeline) {
		if log != nil {
			p.log = log
		}
	}
}

// WithPlatforms overrides the social platforms the pipeline looks up.
func WithPlatforms(platforms []Platform) Option {
	return func(p *Pipeline) {
		if len(platforms) > 0 {
			p.platforms = platforms
		}
	}
}

// WithMaxCandidates sets how many CEO candidates are validated. This is the
// validation loop's fixed iteration count.
func WithMaxCandidates(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.maxCandidates = n
		}
	}
}

// WithParallelLoops runs loop iterations concurrently. Iterations write
// disjoint keys, so this only changes scheduling, not results; providers
// must tolerate concurrent calls.
func WithParallelLoops(enabled bool) Option {
	return func(p *Pipeline) { p.parallelLoops = enabled }
}
