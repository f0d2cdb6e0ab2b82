package retrieval

import (
	"context"
	"errors"
	"log"
	"sync"

	"lexbot/config"
	"lexbot/sources"
	"lexbot/types"

	"github.com/go-resty/resty/v2"
)

// ErrFeedNotFound is returned when a caller names an unknown feed key.
// Unlike transient fetch failures, this indicates a caller or config bug.
var ErrFeedNotFound = errors.New("feed not found")

// Retriever aggregates legal context from scraped sites and legislation
// feeds. The source set is fixed at construction and never mutated.
type Retriever struct {
	sites  []sources.SiteConfig
	feeds  map[string]sources.FeedConfig
	client *resty.Client
	cache  *FeedCache
}

// NewRetriever creates a retriever over the default UK source registry.
// cache may be nil, in which case every feed fetch goes to the network.
func NewRetriever(cache *FeedCache) *Retriever {
	client := resty.New()
	client.SetTimeout(config.SearchTimeout)
	client.SetHeader("User-Agent", config.UserAgent)

	return &Retriever{
		sites:  sources.Sites,
		feeds:  sources.Feeds,
		client: client,
		cache:  cache,
	}
}

// FetchContext gathers context for a query from all sites and feeds
// concurrently. It never fails outright: individual source failures are
// logged and contribute nothing, and a total miss yields a single sentinel
// record, so the returned slice is always non-empty.
func (r *Retriever) FetchContext(ctx context.Context, query string) []types.SearchResult {
	log.Printf("Searching for %q across UK legal sources and legislation feeds...", query)

	var wg sync.WaitGroup
	siteCh := make(chan []types.SearchResult, len(r.sites))

	for _, site := range r.sites {
		wg.Add(1)
		go func(site sources.SiteConfig) {
			defer wg.Done()
			results, err := r.searchSite(ctx, site, query)
			if err != nil {
				log.Printf("Could not fetch information from %s: %v", site.Key, err)
				return
			}
			if len(results) > 0 {
				siteCh <- results
			}
		}(site)
	}

	// Feeds run independently of the site searches and always contribute
	// baseline context, whether or not any site search succeeds.
	feedCh := make(chan []types.SearchResult, 1)
	go func() {
		feedCh <- r.FetchAllFeeds(ctx, config.DefaultFeedLimit)
	}()

	wg.Wait()
	close(siteCh)

	var all []types.SearchResult
	for results := range siteCh {
		all = append(all, results...)
	}

	latest := <-feedCh
	all = append(all, latest...)
	log.Printf("Added %d legislation items from feeds", len(latest))

	if len(all) == 0 {
		return []types.SearchResult{types.Sentinel()}
	}
	return all
}
