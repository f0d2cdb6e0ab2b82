package types

// URLNotAvailable is used when a retrieved item carries no resolvable link.
const URLNotAvailable = "not available"

// SearchResult is the normalized unit of retrieved legal context, uniform
// across scraped sites and legislation feeds.
type SearchResult struct {
	Site     string `json:"site"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Snippet  string `json:"snippet"`
	FeedType string `json:"feed_type,omitempty"`
}

// Sentinel returns the placeholder record emitted when no source produced
// any result, so callers can always assume a non-empty result set.
func Sentinel() SearchResult {
	return SearchResult{
		Site:    "N/A",
		Title:   "No results found",
		URL:     "N/A",
		Snippet: "No results found from any specified UK source.",
	}
}

// IsSentinel reports whether r is the no-results placeholder.
func IsSentinel(r SearchResult) bool {
	return r.Site == "N/A" && r.Title == "No results found"
}
