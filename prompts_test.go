package enrich

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderTemplate(t *testing.T) {
	got := renderTemplate("{company} on {platform}", map[string]string{
		"company":  "Acme Corp",
		"platform": "linkedin",
	})
	if got != "Acme Corp on linkedin" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRenderTemplateUnboundPlaceholderSurvives(t *testing.T) {
	got := renderTemplate("{company} and {unused}", map[string]string{"company": "Acme"})
	if !strings.Contains(got, "{unused}") {
		t.Fatalf("unbound placeholder should remain visible: %q", got)
	}
}

func TestCleanInferredValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://acme.example", "https://acme.example"},
		{"  https://acme.example\nExplanation follows", "https://acme.example"},
		{"\"https://acme.example\"", "https://acme.example"},
		{"```\nhttps://acme.example\n```", "https://acme.example"},
		{"null", ""},
		{"NULL", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := cleanInferredValue(c.in); got != c.want {
			t.Errorf("cleanInferredValue(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseNameList(t *testing.T) {
	names, err := parseNameList(`["Alice Lee", "Bob Kim", "Cara Diaz"]`, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 3 || names[0] != "Alice Lee" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestParseNameListFenced(t *testing.T) {
	raw := "```json\n[\"Alice Lee\"]\n```"
	names, err := parseNameList(raw, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "Alice Lee" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestParseNameListCapped(t *testing.T) {
	names, err := parseNameList(`["A", "B", "C", "D", "E"]`, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 names, got %v", names)
	}
}

func TestParseNameListFiltersEmptyAndNull(t *testing.T) {
	names, err := parseNameList(`["Alice Lee", "", "null"]`, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 1 || names[0] != "Alice Lee" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestParseNameListShapeMismatch(t *testing.T) {
	for _, raw := range []string{"Alice Lee is the CEO", `{"ceo": "Alice"}`, `[1, 2, 3]`} {
		_, err := parseNameList(raw, 3)
		var inf *InferenceError
		if !errors.As(err, &inf) {
			t.Errorf("parseNameList(%q): expected InferenceError, got %v", raw, err)
		}
	}
}

func TestFormatResults(t *testing.T) {
	out := formatResults([]SearchResult{
		{Title: "Acme", URL: "https://acme.example", Snippet: "official"},
	})
	if !strings.Contains(out, "1. Acme | https://acme.example | official") {
		t.Fatalf("unexpected format: %q", out)
	}
	if formatResults(nil) != "(no results)" {
		t.Fatal("expected placeholder for empty results")
	}
}

func TestFilterByDomain(t *testing.T) {
	results := []SearchResult{
		{URL: "https://www.linkedin.com/company/acme"},
		{URL: "https://directory.example/acme"},
		{URL: "https://x.com/acme"},
	}
	got := filterByDomain(results, []string{"twitter.com", "x.com"})
	if len(got) != 1 || got[0].URL != "https://x.com/acme" {
		t.Fatalf("unexpected filter result: %v", got)
	}
}
