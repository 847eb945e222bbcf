package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchStripsMarkup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><style>body{color:red}</style>
<script>alert("hi")</script></head>
<body><nav>Home | About</nav><h1>Acme Corp</h1>
<p>We build &amp; ship anvils.</p><footer>Copyright</footer></body></html>`))
	}))
	defer srv.Close()

	text, err := NewHTTPWithClient(srv.Client()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Acme Corp") || !strings.Contains(text, "We build & ship anvils.") {
		t.Fatalf("expected page text, got %q", text)
	}
	for _, leaked := range []string{"alert", "color:red", "Home | About", "Copyright"} {
		if strings.Contains(text, leaked) {
			t.Errorf("markup leaked into text: %q", leaked)
		}
	}
}

func TestFetchTruncates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<p>" + strings.Repeat("word ", 2000) + "</p>"))
	}))
	defer srv.Close()

	text, err := NewHTTPWithClient(srv.Client()).Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len([]rune(text)); got > maxFetchChars {
		t.Fatalf("expected at most %d chars, got %d", maxFetchChars, got)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	if _, err := NewHTTPWithClient(srv.Client()).Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("expected an error for a non-200 status")
	}
}

func TestFetchEmptyURL(t *testing.T) {
	if _, err := NewHTTP().Fetch(context.Background(), "  "); err == nil {
		t.Fatal("expected an error for an empty url")
	}
}
