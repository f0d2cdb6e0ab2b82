package retrieval

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lexbot/sources"
)

func siteServer(t *testing.T, body string, query *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if query != nil {
			*query = r.URL.Query().Get("q")
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
}

func siteConfig(srv *httptest.Server) sources.SiteConfig {
	return sources.SiteConfig{
		Key:             "test.example",
		BaseURL:         srv.URL,
		SearchURL:       srv.URL + "/search?q=%s",
		ContentSelector: "a.hit",
	}
}

func TestSearchSiteParsesAndCapsResults(t *testing.T) {
	var gotQuery string
	srv := siteServer(t, `<html><body>
		<a class="hit" href="/guides/deposits">Tenancy deposit protection</a>
		<a class="hit" href="https://example.org/housing">Housing disrepair claims</a>
		<a class="hit" href="/guides/evictions">Eviction notice periods</a>
		<a class="hit" href="/guides/extra">Beyond the cap</a>
	</body></html>`, &gotQuery)
	defer srv.Close()

	site := siteConfig(srv)
	r := testRetriever([]sources.SiteConfig{site}, nil)

	results, err := r.searchSite(context.Background(), site, "tenancy deposit")
	if err != nil {
		t.Fatalf("searchSite error: %v", err)
	}
	if gotQuery != "tenancy deposit" {
		t.Errorf("query parameter = %q; want the raw query, URL-encoded in transit", gotQuery)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results; want 3 (per-site cap)", len(results))
	}

	if results[0].URL != srv.URL+"/guides/deposits" {
		t.Errorf("relative href not resolved against base: %q", results[0].URL)
	}
	if results[1].URL != "https://example.org/housing" {
		t.Errorf("absolute href rewritten: %q", results[1].URL)
	}
	if results[0].Site != "test.example" || results[0].Snippet != results[0].Title {
		t.Errorf("result not normalized: %+v", results[0])
	}
}

func TestSearchSiteSkipsArtifacts(t *testing.T) {
	srv := siteServer(t, `<html><body>
		<a class="hit" href="/nav">Advanced search options</a>
		<span class="hit">No link here</span>
		<a class="hit" href="/fees">Court fees guidance</a>
	</body></html>`, nil)
	defer srv.Close()

	site := siteConfig(srv)
	r := testRetriever([]sources.SiteConfig{site}, nil)

	results, err := r.searchSite(context.Background(), site, "fees")
	if err != nil {
		t.Fatalf("searchSite error: %v", err)
	}
	if len(results) != 1 || results[0].Title != "Court fees guidance" {
		t.Fatalf("got %+v; want only the real result", results)
	}
}

func TestSearchSiteHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	site := siteConfig(srv)
	r := testRetriever([]sources.SiteConfig{site}, nil)

	if _, err := r.searchSite(context.Background(), site, "anything"); err == nil {
		t.Fatal("searchSite succeeded against a failing upstream")
	}
}
