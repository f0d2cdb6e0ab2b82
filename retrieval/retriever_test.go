package retrieval

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexbot/sources"
	"lexbot/types"

	"github.com/go-resty/resty/v2"
)

func testRetriever(sites []sources.SiteConfig, feeds map[string]sources.FeedConfig) *Retriever {
	client := resty.New()
	client.SetTimeout(2 * time.Second)

	return &Retriever{
		sites:  sites,
		feeds:  feeds,
		client: client,
	}
}

func TestFetchContextCombinesSitesAndFeeds(t *testing.T) {
	siteSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><a class="hit" href="/guides/deposits">Tenancy deposit protection</a></body></html>`))
	}))
	defer siteSrv.Close()

	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeedXML))
	}))
	defer feedSrv.Close()

	r := testRetriever(
		[]sources.SiteConfig{{
			Key:             "test.example",
			BaseURL:         siteSrv.URL,
			SearchURL:       siteSrv.URL + "/search?q=%s",
			ContentSelector: "a.hit",
		}},
		map[string]sources.FeedConfig{
			"uk_public_general_acts": {
				Key:         "uk_public_general_acts",
				URL:         feedSrv.URL,
				Description: "UK Public General Acts",
			},
		},
	)

	results := r.FetchContext(context.Background(), "tenancy deposit")
	if len(results) == 0 {
		t.Fatal("FetchContext returned no results")
	}

	var siteHits, feedHits int
	for _, res := range results {
		if res.FeedType != "" {
			feedHits++
		} else {
			siteHits++
		}
	}
	if siteHits == 0 {
		t.Error("no site results in combined context")
	}
	if feedHits == 0 {
		t.Error("no feed results in combined context")
	}
	if results[0].Site != "test.example" {
		t.Errorf("first result site = %q; want scraped site before feed items", results[0].Site)
	}
}

func TestFetchContextSentinelOnTotalMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := testRetriever(
		[]sources.SiteConfig{{
			Key:             "test.example",
			BaseURL:         srv.URL,
			SearchURL:       srv.URL + "/search?q=%s",
			ContentSelector: "a.hit",
		}},
		map[string]sources.FeedConfig{
			"all_legislation": {Key: "all_legislation", URL: srv.URL, Description: "All UK Legislation"},
		},
	)

	results := r.FetchContext(context.Background(), "anything")
	if len(results) != 1 {
		t.Fatalf("got %d results on total miss; want single sentinel", len(results))
	}
	if !types.IsSentinel(results[0]) {
		t.Errorf("result on total miss = %+v; want sentinel record", results[0])
	}
}
