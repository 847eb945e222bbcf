package enrich

import "strings"

// Evidence is a search hit supporting a candidate.
type Evidence struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// ValidationResult counts corroborating search evidence for one candidate.
// The zero value is the fail-soft default for an iteration that found
// nothing or had no candidate to validate.
type ValidationResult struct {
	Subject         string     `json:"subject"`
	Mentions        int        `json:"mention_count"`
	CredibleSources int        `json:"credible_source_count"`
	Sources         []Evidence `json:"sources,omitempty"`
}

// Scoring weights. Kept as documented constants; they are not externally
// justified beyond matching the validation heuristic this pipeline ships with.
const (
	mentionWeight  = 2
	credibleWeight = 3
)

// Score is the candidate's confidence metric.
func (v ValidationResult) Score() int {
	return v.Mentions*mentionWeight + v.CredibleSources*credibleWeight
}

// SelectBest reduces per-iteration validation results to one winner. The
// highest score wins; ties go to the higher credible-source count, then to
// the earlier index, so selection is deterministic for any fixed input.
// When every candidate scores zero, ok is false: noise is never promoted to
// a confident answer.
func SelectBest(results []ValidationResult) (best ValidationResult, ok bool) {
	bestIdx := -1
	for i, r := range results {
		if r.Score() == 0 {
			continue
		}
		if bestIdx < 0 {
			bestIdx = i
			continue
		}
		cur := results[bestIdx]
		switch {
		case r.Score() > cur.Score():
			bestIdx = i
		case r.Score() == cur.Score() && r.CredibleSources > cur.CredibleSources:
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return ValidationResult{}, false
	}
	return results[bestIdx], true
}

// credibleDomains mark sources that count toward CredibleSources.
var credibleDomains = []string{
	"linkedin.com",
	"twitter.com",
	"x.com",
	"crunchbase.com",
	"bloomberg.com",
	"forbes.com",
	"techcrunch.com",
	"medium.com",
	"blog",
}

// credibleSource reports whether the URL belongs to a credible domain.
func credibleSource(url string) bool {
	lower := strings.ToLower(url)
	for _, domain := range credibleDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}
