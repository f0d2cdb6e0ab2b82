package retrieval

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"lexbot/types"

	readability "github.com/go-shiori/go-readability"
)

const (
	expandWorkers  = 2
	extractTimeout = 15 * time.Second
	maxExcerptLen  = 800
)

// Deepen fetches the pages behind up to the first n site results and
// replaces their snippets with an excerpt of the extracted article text,
// using a small worker pool. Feed entries and the sentinel are skipped, and
// extraction failures leave the record unchanged.
func (r *Retriever) Deepen(results []types.SearchResult, n int) {
	var candidates []*types.SearchResult
	for i := range results {
		if len(candidates) >= n {
			break
		}
		rec := &results[i]
		if rec.FeedType != "" || types.IsSentinel(*rec) {
			continue
		}
		if rec.URL == "" || rec.URL == types.URLNotAvailable {
			continue
		}
		candidates = append(candidates, rec)
	}
	if len(candidates) == 0 {
		return
	}

	var wg sync.WaitGroup
	recordChan := make(chan *types.SearchResult, len(candidates))

	for i := 0; i < expandWorkers; i++ {
		go func() {
			for rec := range recordChan {
				if err := expandResult(rec); err != nil {
					log.Printf("Failed to extract %s: %v", rec.URL, err)
				}
				wg.Done()
			}
		}()
	}

	for _, rec := range candidates {
		wg.Add(1)
		recordChan <- rec
	}

	wg.Wait()
	close(recordChan)
}

func expandResult(rec *types.SearchResult) error {
	article, err := readability.FromURL(rec.URL, extractTimeout)
	if err != nil {
		return fmt.Errorf("readability extraction failed: %w", err)
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	if text == "" {
		return nil
	}
	if len(text) > maxExcerptLen {
		text = text[:maxExcerptLen] + "..."
	}
	rec.Snippet = text
	return nil
}
