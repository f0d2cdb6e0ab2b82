package retrieval

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"lexbot/config"
	"lexbot/types"

	"github.com/mmcdole/gofeed"
)

// FetchSingleFeed retrieves up to limit of the most recent entries from one
// legislation feed. Unknown keys fail with ErrFeedNotFound. Cached results
// are served when a cache is configured.
func (r *Retriever) FetchSingleFeed(ctx context.Context, feedKey string, limit int) ([]types.SearchResult, error) {
	feed, ok := r.feeds[feedKey]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFeedNotFound, feedKey)
	}
	if limit <= 0 {
		limit = config.DefaultFeedLimit
	}

	if cached, ok := r.cache.Get(ctx, feedKey, limit); ok {
		return cached, nil
	}

	fctx, cancel := context.WithTimeout(ctx, config.FeedTimeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.UserAgent = config.UserAgent
	parsed, err := parser.ParseURLWithContext(feed.URL, fctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s feed: %w", feedKey, err)
	}

	count := min(len(parsed.Items), limit)
	items := make([]types.SearchResult, 0, count)
	for _, entry := range parsed.Items[:count] {
		snippet := strings.TrimSpace(entry.Description)
		if snippet == "" {
			snippet = entry.Title
		}
		link := entry.Link
		if link == "" {
			link = types.URLNotAvailable
		}

		items = append(items, types.SearchResult{
			Site:     fmt.Sprintf("legislation.gov.uk (%s)", feed.Description),
			Title:    entry.Title,
			URL:      link,
			Snippet:  snippet,
			FeedType: feed.Key,
		})
	}

	r.cache.Set(ctx, feedKey, limit, items)
	return items, nil
}

// FetchAllFeeds fetches every configured legislation feed concurrently,
// one goroutine per feed. Failed feeds are logged and contribute nothing.
func (r *Retriever) FetchAllFeeds(ctx context.Context, limitPerFeed int) []types.SearchResult {
	var wg sync.WaitGroup
	resultCh := make(chan []types.SearchResult, len(r.feeds))

	for key := range r.feeds {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			items, err := r.FetchSingleFeed(ctx, key, limitPerFeed)
			if err != nil {
				log.Printf("Failed to fetch %s feed: %v", key, err)
				return
			}
			if len(items) > 0 {
				resultCh <- items
			}
		}(key)
	}

	wg.Wait()
	close(resultCh)

	var all []types.SearchResult
	for items := range resultCh {
		all = append(all, items...)
	}
	return all
}

// SearchFeedsByKeyword scans recently published legislation for a keyword,
// matching case-insensitively against title and snippet.
func (r *Retriever) SearchFeedsByKeyword(ctx context.Context, keyword string, limit int) []types.SearchResult {
	if limit <= 0 {
		limit = 10
	}

	recent := r.FetchAllFeeds(ctx, 5)
	kw := strings.ToLower(keyword)

	var matches []types.SearchResult
	for _, item := range recent {
		if strings.Contains(strings.ToLower(item.Title), kw) ||
			strings.Contains(strings.ToLower(item.Snippet), kw) {
			matches = append(matches, item)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}
