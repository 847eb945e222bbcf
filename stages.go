package enrich

import (
	"context"
	"fmt"
	"strings"
)

// Per-stage search limits, matching the queries each stage issues.
const (
	websiteSearchLimit    = 5
	socialSearchLimit     = 3
	candidateSearchLimit  = 5
	validationSearchLimit = 3
	maxEvidenceSources    = 5
)

// buildRoot assembles the fixed top-level sequence. Transitions are
// unconditional: the fail-soft stage contract means there is no failure
// edge, only forward progress to the final result.
func (p *Pipeline) buildRoot() *Sequence {
	socialLoop := NewLoop("collect-social-links", len(p.platforms), p.socialProfileStage())
	socialLoop.Parallel = p.parallelLoops
	validationLoop := NewLoop("validate-ceo-candidates", p.maxCandidates, p.validateCeoStage())
	validationLoop.Parallel = p.parallelLoops

	return NewSequence("enrich-company",
		p.findWebsiteStage(),
		socialLoop,
		p.combineSocialStage(),
		p.ceoCandidatesStage(),
		validationLoop,
		p.selectCeoStage(),
		p.summarizeStage(),
		p.finalizeStage(),
	)
}

// findWebsiteStage searches for the official company website and has the
// model extract the one URL from the hits.
func (p *Pipeline) findWebsiteStage() *Stage {
	return &Stage{
		Name:     "find-website",
		Inputs:   []string{keyCompanyName},
		Output:   Key(keyWebsiteURL),
		Fallback: "",
		Run: func(ctx context.Context, st *State, _ int) (any, error) {
			company := st.text(keyCompanyName)
			query := company + " official website"
			results, err := p.searcher.Search(ctx, query, websiteSearchLimit)
			if err != nil {
				return nil, &ProviderError{Query: query, Err: err}
			}
			if len(results) == 0 {
				return "", nil
			}
			raw, err := p.infer(ctx, websiteSystemPrompt, websitePromptTemplate, map[string]string{
				"company": company,
				"results": formatResults(results),
			})
			if err != nil {
				return nil, err
			}
			return cleanInferredValue(raw), nil
		},
	}
}

// socialProfileStage runs once per platform inside the social loop; the
// iteration index selects the platform.
func (p *Pipeline) socialProfileStage() *Stage {
	return &Stage{
		Name:     "find-social-profile",
		Inputs:   []string{keyCompanyName},
		Optional: []string{keyWebsiteURL},
		Output:   func(iter int) string { return socialKey(p.platforms[iter].Name) },
		Fallback: "",
		Run: func(ctx context.Context, st *State, iter int) (any, error) {
			platform := p.platforms[iter]
			company := st.text(keyCompanyName)
			query := renderTemplate(platform.Query, map[string]string{"company": company})
			results, err := p.searcher.Search(ctx, query, socialSearchLimit)
			if err != nil {
				return nil, &ProviderError{Query: query, Err: err}
			}
			candidates := filterByDomain(results, platform.Domains)
			if len(candidates) == 0 {
				return "", nil
			}
			raw, err := p.infer(ctx, socialSystemPrompt, socialPromptTemplate, map[string]string{
				"company":  company,
				"platform": platform.Name,
				"website":  st.text(keyWebsiteURL),
				"results":  formatResults(candidates),
			})
			if err != nil {
				return nil, err
			}
			return cleanInferredValue(raw), nil
		},
	}
}

// combineSocialStage merges the per-platform keys into one record. This is a
// pure merge; the empty string collapses to null.
func (p *Pipeline) combineSocialStage() *Stage {
	inputs := make([]string, len(p.platforms))
	for i, pl := range p.platforms {
		inputs[i] = socialKey(pl.Name)
	}
	return &Stage{
		Name:     "combine-social-links",
		Inputs:   inputs,
		Output:   Key(keySocialLinks),
		Fallback: emptySocialLinks(p.platforms),
		Run: func(_ context.Context, st *State, _ int) (any, error) {
			links := emptySocialLinks(p.platforms)
			for _, pl := range p.platforms {
				if url := st.text(socialKey(pl.Name)); url != "" {
					links[pl.Name] = &url
				}
			}
			return links, nil
		},
	}
}

// ceoCandidatesStage searches for the company's CEO and has the model
// extract up to maxCandidates names as a JSON array.
func (p *Pipeline) ceoCandidatesStage() *Stage {
	return &Stage{
		Name:     "collect-ceo-candidates",
		Inputs:   []string{keyCompanyName},
		Optional: []string{keyWebsiteURL},
		Output:   Key(keyCeoCandidates),
		Fallback: []string{},
		Run: func(ctx context.Context, st *State, _ int) (any, error) {
			company := st.text(keyCompanyName)
			query := company + " CEO name"
			results, err := p.searcher.Search(ctx, query, candidateSearchLimit)
			if err != nil {
				return nil, &ProviderError{Query: query, Err: err}
			}
			if len(results) == 0 {
				return []string{}, nil
			}
			raw, err := p.infer(ctx, candidatesSystemPrompt, candidatesPromptTemplate, map[string]string{
				"company": company,
				"results": formatResults(results),
			})
			if err != nil {
				return nil, err
			}
			return parseNameList(raw, p.maxCandidates)
		},
	}
}

// validationQueries are the query shapes used to corroborate one candidate.
var validationQueries = []string{
	`"{name}" "{company}" CEO`,
	`"{name}" "{company}" LinkedIn`,
	`"{name}" "{company}" Twitter`,
	`"{name}" "{company}" blog`,
}

// validateCeoStage runs once per candidate slot inside the validation loop.
// A slot beyond the extracted candidate list yields the zero result, which
// scores zero and can never win selection.
func (p *Pipeline) validateCeoStage() *Stage {
	return &Stage{
		Name:     "validate-ceo-candidate",
		Inputs:   []string{keyCompanyName, keyCeoCandidates},
		Output:   IndexedKey(keyCeoValidation),
		Fallback: ValidationResult{},
		Run: func(ctx context.Context, st *State, iter int) (any, error) {
			candidates := st.list(keyCeoCandidates)
			if iter >= len(candidates) || strings.TrimSpace(candidates[iter]) == "" {
				return ValidationResult{}, nil
			}
			name := candidates[iter]
			company := st.text(keyCompanyName)

			result := ValidationResult{Subject: name}
			for _, tmpl := range validationQueries {
				query := renderTemplate(tmpl, map[string]string{"name": name, "company": company})
				hits, err := p.searcher.Search(ctx, query, validationSearchLimit)
				if err != nil {
					return nil, &ProviderError{Query: query, Err: err}
				}
				result.Mentions += len(hits)
				for _, h := range hits {
					if !credibleSource(h.URL) {
						continue
					}
					result.CredibleSources++
					if len(result.Sources) < maxEvidenceSources {
						result.Sources = append(result.Sources, Evidence{URL: h.URL, Title: h.Title, Snippet: h.Snippet})
					}
				}
			}
			return result, nil
		},
	}
}

// selectCeoStage reduces the validation loop's outputs to one winner.
func (p *Pipeline) selectCeoStage() *Stage {
	inputs := make([]string, p.maxCandidates)
	for i := range inputs {
		inputs[i] = fmt.Sprintf(keyCeoValidation, i)
	}
	return &Stage{
		Name:     "select-ceo",
		Inputs:   inputs,
		Output:   Key(keyCeoInfo),
		Fallback: "",
		Run: func(_ context.Context, st *State, _ int) (any, error) {
			results := make([]ValidationResult, 0, len(inputs))
			for _, key := range inputs {
				v, err := st.Get(key)
				if err != nil {
					return nil, err
				}
				vr, _ := v.(ValidationResult)
				results = append(results, vr)
			}
			best, ok := SelectBest(results)
			if !ok {
				return "", nil
			}
			return best.Subject, nil
		},
	}
}

// summarizeStage fetches the homepage and has the model write a 2-3
// sentence summary. Without a website there is nothing to summarize.
func (p *Pipeline) summarizeStage() *Stage {
	return &Stage{
		Name:     "summarize-company",
		Inputs:   []string{keyCompanyName},
		Optional: []string{keyWebsiteURL},
		Output:   Key(keyCompanySummary),
		Fallback: "",
		Run: func(ctx context.Context, st *State, _ int) (any, error) {
			site := st.text(keyWebsiteURL)
			if site == "" {
				return "", nil
			}
			page, err := p.fetcher.Fetch(ctx, site)
			if err != nil {
				return nil, &FetchError{URL: site, Err: err}
			}
			if strings.TrimSpace(page) == "" {
				return "", nil
			}
			raw, err := p.infer(ctx, summarySystemPrompt, summaryPromptTemplate, map[string]string{
				"company": st.text(keyCompanyName),
				"page":    page,
			})
			if err != nil {
				return nil, err
			}
			return strings.TrimSpace(raw), nil
		},
	}
}

// finalizeStage assembles the EnrichmentResult from the accumulated state.
func (p *Pipeline) finalizeStage() *Stage {
	return &Stage{
		Name:     "finalize",
		Inputs:   []string{keyWebsiteURL, keySocialLinks, keyCeoInfo, keyCompanySummary},
		Output:   Key(keyFinalResult),
		Fallback: EnrichmentResult{SocialProfileLinks: emptySocialLinks(p.platforms)},
		Run: func(_ context.Context, st *State, _ int) (any, error) {
			result := EnrichmentResult{
				CompanyWebsite:     st.text(keyWebsiteURL),
				SocialProfileLinks: emptySocialLinks(p.platforms),
				CompanySummary:     st.text(keyCompanySummary),
			}
			if v, ok := st.GetOptional(keySocialLinks); ok {
				if links, ok := v.(SocialLinks); ok && links != nil {
					result.SocialProfileLinks = links
				}
			}
			if ceo := st.text(keyCeoInfo); ceo != "" {
				result.CompanyCEO = &ceo
			}
			return result, nil
		},
	}
}

// filterByDomain keeps results whose URL belongs to one of the platform's
// domains.
func filterByDomain(results []SearchResult, domains []string) []SearchResult {
	var out []SearchResult
	for _, r := range results {
		lower := strings.ToLower(r.URL)
		for _, d := range domains {
			if strings.Contains(lower, d) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
