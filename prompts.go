package enrich

import (
	"encoding/json"
	"fmt"
	"strings"
)

const websiteSystemPrompt = "You identify a company's official website from web search results. Respond with ONLY the URL, nothing else - no explanation, no JSON. If none of the results is the official site, respond with the word null."

const socialSystemPrompt = "You identify a company's official social media profile from candidate links. Respond with ONLY the profile URL, or the word null if no candidate is the official profile. No explanation, no JSON."

const candidatesSystemPrompt = "You extract the names of people reported as a company's CEO from web search results. Respond with ONLY a JSON array of at most three full names, most likely first, e.g. [\"Jane Doe\"]. Respond with [] when the results name nobody."

const summarySystemPrompt = "You summarize what a company does from its homepage text. Respond with only a 2-3 sentence summary, nothing else."

const websitePromptTemplate = `Company: {company}

Search results (title | url | snippet):
{results}

Identify the official company website from the results above.`

const socialPromptTemplate = `Company: {company}
Platform: {platform}
Company website (may be empty): {website}

Candidate links (title | url | snippet):
{results}

Pick the official {platform} profile for the company.`

const candidatesPromptTemplate = `Company: {company}

Search results (title | url | snippet):
{results}

List the CEO candidate names mentioned in the results.`

const summaryPromptTemplate = `Company: {company}

Homepage text:
{page}

Write a 2-3 sentence summary of what the company does.`

// renderTemplate substitutes {placeholder} slots with the bound values.
func renderTemplate(tmpl string, values map[string]string) string {
	out := tmpl
	for k, v := range values {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// formatResults renders search results for prompting, one hit per line.
func formatResults(results []SearchResult) string {
	if len(results) == 0 {
		return "(no results)"
	}
	var b strings.Builder
	for i, r := range results {
		fmt.Fprintf(&b, "%d. %s | %s | %s\n", i+1,
			strings.TrimSpace(r.Title), strings.TrimSpace(r.URL), strings.TrimSpace(r.Snippet))
	}
	return strings.TrimSpace(b.String())
}

// cleanInferredValue normalizes a single-value model response: strips code
// fences and surrounding quotes, keeps only the first line, and maps the
// literal "null" to the empty string.
func cleanInferredValue(raw string) string {
	s := stripCodeFence(strings.TrimSpace(raw))
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.Trim(strings.TrimSpace(s), `"'`)
	if strings.EqualFold(s, "null") {
		return ""
	}
	return s
}

// stripCodeFence removes a surrounding markdown code fence, if present.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:] // drop the language tag line
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseNameList reads the JSON array of candidate names the model returns,
// capped at limit. A shape mismatch is an inference error, not malformed
// data to propagate downstream.
func parseNameList(raw string, limit int) ([]string, error) {
	s := stripCodeFence(strings.TrimSpace(raw))
	start := strings.IndexByte(s, '[')
	end := strings.LastIndexByte(s, ']')
	if start < 0 || end < start {
		return nil, &InferenceError{Err: fmt.Errorf("expected a JSON array, got %q", raw)}
	}
	var names []string
	if err := json.Unmarshal([]byte(s[start:end+1]), &names); err != nil {
		return nil, &InferenceError{Err: err}
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || strings.EqualFold(n, "null") {
			continue
		}
		out = append(out, n)
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}
