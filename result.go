package enrich

// SocialLinks maps a platform name to its discovered profile URL. A nil
// entry marshals to JSON null; every configured platform is always present.
type SocialLinks map[string]*string

func emptySocialLinks(platforms []Platform) SocialLinks {
	links := make(SocialLinks, len(platforms))
	for _, p := range platforms {
		links[p.Name] = nil
	}
	return links
}

// EnrichmentResult is the final output of a pipeline run. Every field is
// present even when the corresponding stage produced nothing: absent values
// degrade to null or the empty string, never to a missing field.
type EnrichmentResult struct {
	CompanyWebsite     string      `json:"company_website"`
	SocialProfileLinks SocialLinks `json:"social_profile_links"`
	CompanyCEO         *string     `json:"company_ceo"`
	CompanySummary     string      `json:"company_summary"`
}
