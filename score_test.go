package enrich

import "testing"

func TestSelectBestHighestScore(t *testing.T) {
	// Scores: 5*2+1*3=13 vs 3*2+3*3=15, so the second candidate wins.
	results := []ValidationResult{
		{Subject: "Alice Lee", Mentions: 5, CredibleSources: 1},
		{Subject: "Bob Kim", Mentions: 3, CredibleSources: 3},
	}
	best, ok := SelectBest(results)
	if !ok {
		t.Fatal("expected a winner")
	}
	if best.Subject != "Bob Kim" {
		t.Fatalf("expected Bob Kim, got %q", best.Subject)
	}
}

func TestSelectBestTieBreakCredibleSources(t *testing.T) {
	// Both score 12; the higher credible-source count wins.
	results := []ValidationResult{
		{Subject: "Alice Lee", Mentions: 6, CredibleSources: 0},
		{Subject: "Bob Kim", Mentions: 3, CredibleSources: 2},
	}
	best, ok := SelectBest(results)
	if !ok {
		t.Fatal("expected a winner")
	}
	if best.Subject != "Bob Kim" {
		t.Fatalf("expected Bob Kim, got %q", best.Subject)
	}
}

func TestSelectBestTieBreakEarlierIndex(t *testing.T) {
	// Identical scores and credible counts: the earlier entry wins.
	results := []ValidationResult{
		{Subject: "Alice Lee", Mentions: 2, CredibleSources: 1},
		{Subject: "Bob Kim", Mentions: 2, CredibleSources: 1},
	}
	best, ok := SelectBest(results)
	if !ok {
		t.Fatal("expected a winner")
	}
	if best.Subject != "Alice Lee" {
		t.Fatalf("expected Alice Lee, got %q", best.Subject)
	}
}

func TestSelectBestAllZero(t *testing.T) {
	results := []ValidationResult{{}, {}, {}}
	if _, ok := SelectBest(results); ok {
		t.Fatal("all-zero candidates must yield no winner")
	}
}

func TestSelectBestDeterministic(t *testing.T) {
	results := []ValidationResult{
		{Subject: "Alice Lee", Mentions: 5, CredibleSources: 2},
		{Subject: "Bob Kim", Mentions: 1, CredibleSources: 0},
		{Subject: "Cara Diaz", Mentions: 0, CredibleSources: 0},
	}
	first, ok := SelectBest(results)
	if !ok {
		t.Fatal("expected a winner")
	}
	for i := 0; i < 100; i++ {
		again, ok := SelectBest(results)
		if !ok || again.Subject != first.Subject {
			t.Fatalf("selection is not deterministic: %q vs %q", again.Subject, first.Subject)
		}
	}
	if first.Subject != "Alice Lee" {
		t.Fatalf("expected Alice Lee, got %q", first.Subject)
	}
}

func TestValidationScore(t *testing.T) {
	v := ValidationResult{Mentions: 5, CredibleSources: 2}
	if got := v.Score(); got != 16 {
		t.Fatalf("expected score 16, got %d", got)
	}
}

func TestCredibleSource(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://www.linkedin.com/in/alice", true},
		{"https://x.com/acme", true},
		{"https://techcrunch.com/2024/acme-raises", true},
		{"https://acme.example/blog/ceo-letter", true},
		{"https://example.org/somewhere", false},
	}
	for _, c := range cases {
		if got := credibleSource(c.url); got != c.want {
			t.Errorf("credibleSource(%q) = %v, want %v", c.url, got, c.want)
		}
	}
}
