// Package enrich turns a company name into a structured record (website,
// social profile links, CEO identity, and a short summary) by running a
// fixed pipeline of research stages over pluggable search, fetch, and
// language-model providers.
//
// # Architecture
//
// The pipeline is a static composition of three orchestration primitives:
//
//   - Stage: reads declared keys from the shared State, performs at most one
//     provider call, and writes exactly one key.
//   - Sequence: runs stages in order; later stages read what earlier stages
//     wrote.
//   - Loop: runs its body a fixed number of times with iteration-scoped
//     output keys, fanning a uniform step out over platforms or candidates.
//
// The fixed top-level sequence is: find website → per-platform social
// profile loop → combine links → collect CEO candidates → per-candidate
// validation loop → select CEO → summarize homepage → finalize.
//
// Stages are fail-soft: a provider failure is logged and the stage writes
// its fallback value, so a run always completes and every result field is
// present, degraded to null or empty rather than aborting the pipeline.
// Contract violations (a stage reading a key nothing writes, two stages
// writing the same key) are different: New detects them at construction,
// before any provider call.
//
// CEO selection is deterministic: each validated candidate scores
// mentions*2 + credibleSources*3, ties break on credible sources and then
// on earlier position, and an all-zero field yields no CEO at all rather
// than an arbitrary name.
//
// # Basic Usage
//
//	pipeline, err := enrich.New(
//	    enrich.WithSearchProvider(search.NewDuckDuckGo()),
//	    enrich.WithFetchProvider(fetch.NewHTTP()),
//	    enrich.WithModel(myLLM),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := pipeline.Run(ctx, "Acme Corp")
//
// # Interfaces
//
// Implement LLMProvider to connect any language model:
//
//	type LLMProvider interface {
//	    Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
//	}
//
// Implement SearchProvider and FetchProvider to use any search backend or
// page fetcher. The search and fetch subpackages provide ready
// implementations; the llm subpackage provides a Gemini-backed model.
package enrich
