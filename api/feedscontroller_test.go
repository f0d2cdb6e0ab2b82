package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"lexbot/retrieval"
	"lexbot/types"
)

type stubFeeds struct{}

func (stubFeeds) FetchAllFeeds(ctx context.Context, limitPerFeed int) []types.SearchResult {
	return []types.SearchResult{
		{Site: "legislation.gov.uk (UK Public General Acts)", Title: "Renters Rights Act 2026", URL: "https://www.legislation.gov.uk/ukpga/2026/1", Snippet: "An Act to reform the private rented sector.", FeedType: "uk_public_general_acts"},
		{Site: "legislation.gov.uk (Acts of the Scottish Parliament)", Title: "Land Reform (Scotland) Act 2026", URL: "https://www.legislation.gov.uk/asp/2026/1", Snippet: "An Act about land.", FeedType: "scotland_acts"},
	}
}

func (s stubFeeds) FetchSingleFeed(ctx context.Context, feedKey string, limit int) ([]types.SearchResult, error) {
	if feedKey != "uk_public_general_acts" {
		return nil, fmt.Errorf("%w: %s", retrieval.ErrFeedNotFound, feedKey)
	}
	return s.FetchAllFeeds(ctx, limit)[:1], nil
}

func (s stubFeeds) SearchFeedsByKeyword(ctx context.Context, keyword string, limit int) []types.SearchResult {
	var matches []types.SearchResult
	for _, item := range s.FetchAllFeeds(ctx, 5) {
		if strings.Contains(strings.ToLower(item.Title), strings.ToLower(keyword)) {
			matches = append(matches, item)
		}
	}
	return matches
}

type feedListing struct {
	Count int                  `json:"count"`
	Items []types.SearchResult `json:"items"`
}

func TestAllFeedsEndpoint(t *testing.T) {
	r, _ := testRouter()

	w := doJSON(t, r, http.MethodGet, "/api/feeds", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp feedListing
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 2 || len(resp.Items) != 2 {
		t.Fatalf("got count %d, %d items; want 2", resp.Count, len(resp.Items))
	}
}

func TestSingleFeedEndpoint(t *testing.T) {
	r, _ := testRouter()

	w := doJSON(t, r, http.MethodGet, "/api/feeds/uk_public_general_acts", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; body = %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/feeds/no_such_feed", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown feed status = %d; want 404", w.Code)
	}
}

func TestFeedSearchEndpoint(t *testing.T) {
	r, _ := testRouter()

	w := doJSON(t, r, http.MethodGet, "/api/feeds/search?q=renters", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp feedListing
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("got %d matches; want 1", resp.Count)
	}

	w = doJSON(t, r, http.MethodGet, "/api/feeds/search", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing q status = %d; want 400", w.Code)
	}
}
