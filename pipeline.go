package enrich

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// State keys written by the fixed pipeline stages. These mirror the stage
// order: a key's writer always precedes its readers.
const (
	keyCompanyName    = "company_name"
	keyWebsiteURL     = "website_url"
	keySocialLinks    = "social_links"
	keyCeoCandidates  = "ceo_candidates"
	keyCeoValidation  = "ceo_validation_%d"
	keyCeoInfo        = "ceo_info"
	keyCompanySummary = "company_summary"
	keyFinalResult    = "final_result"
)

func socialKey(platform string) string { return "social_" + platform + "_url" }

// Platform describes one social network the pipeline looks up.
type Platform struct {
	Name    string   // state keys derive from this, e.g. social_linkedin_url
	Query   string   // search query template with a {company} placeholder
	Domains []string // a result URL must contain one of these to count
}

var defaultPlatforms = []Platform{
	{Name: "linkedin", Query: "{company} LinkedIn company page", Domains: []string{"linkedin.com"}},
	{Name: "twitter", Query: "{company} Twitter X official account", Domains: []string{"twitter.com", "x.com"}},
}

// Pipeline enriches a company record by running a fixed sequence of research
// stages over a shared state store. Construct it with New and run it with Run.
type Pipeline struct {
	searcher      SearchProvider
	fetcher       FetchProvider
	model         LLMProvider
	log           *zap.Logger
	platforms     []Platform
	maxCandidates int
	parallelLoops bool
	root          *Sequence
}

// New constructs a Pipeline and validates its stage graph. A stage reading a
// key no earlier stage writes, or two stages writing the same key, is
// reported here, before any provider call is made.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		log:           zap.NewNop(),
		platforms:     defaultPlatforms,
		maxCandidates: defaultMaxCandidates,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.searcher == nil {
		return nil, errors.New("search provider is not configured")
	}
	if p.fetcher == nil {
		return nil, errors.New("fetch provider is not configured")
	}
	if p.model == nil {
		return nil, errors.New("model is not configured")
	}

	p.root = p.buildRoot()
	written := map[string]bool{keyCompanyName: true}
	if err := p.root.check(written, 0); err != nil {
		return nil, err
	}
	return p, nil
}

// Run executes the pipeline for one company. It always produces a complete
// EnrichmentResult: individual fields degrade to null or empty when their
// stage found nothing, but the run itself only fails on an empty company
// name or a broken pipeline contract.
func (p *Pipeline) Run(ctx context.Context, companyName string) (EnrichmentResult, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return EnrichmentResult{}, errors.New("company name is empty")
	}

	st := NewState()
	if err := st.Set(keyCompanyName, companyName); err != nil {
		return EnrichmentResult{}, err
	}

	p.log.Info("enrichment started", zap.String("company", companyName))
	if err := p.root.run(ctx, execContext{state: st, log: p.log}); err != nil {
		return EnrichmentResult{}, err
	}

	v, err := st.Get(keyFinalResult)
	if err != nil {
		return EnrichmentResult{}, err
	}
	result, _ := v.(EnrichmentResult)
	p.log.Info("enrichment complete",
		zap.String("company", companyName),
		zap.String("website", result.CompanyWebsite))
	return result, nil
}

// infer renders the prompt template against the bound values and asks the
// model for a completion. Bindings stay an explicit map so each stage's data
// dependencies are visible without a templating engine.
func (p *Pipeline) infer(ctx context.Context, system, tmpl string, values map[string]string) (string, error) {
	out, err := p.model.Generate(ctx, system, renderTemplate(tmpl, values))
	if err != nil {
		return "", &InferenceError{Err: err}
	}
	return out, nil
}
