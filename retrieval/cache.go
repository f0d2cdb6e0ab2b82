package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"lexbot/types"

	"github.com/redis/go-redis/v9"
)

// FeedCache is an optional Redis-backed cache of per-feed fetch results.
// A nil *FeedCache is valid and behaves as a permanent miss, so callers
// never need to branch on whether caching is configured.
type FeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a feed cache against the given Redis address.
// Returns nil when addr is empty (caching disabled).
func NewFeedCache(addr, password string, ttl time.Duration) *FeedCache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	return &FeedCache{client: client, ttl: ttl}
}

// Get returns the cached entries for a feed/limit pair, if present.
// Redis errors are logged and treated as misses.
func (c *FeedCache) Get(ctx context.Context, feedKey string, limit int) ([]types.SearchResult, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, cacheKey(feedKey, limit)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Feed cache read failed for %s: %v", feedKey, err)
		}
		return nil, false
	}

	var items []types.SearchResult
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		log.Printf("Feed cache entry for %s is corrupt: %v", feedKey, err)
		return nil, false
	}
	return items, true
}

// Set stores the entries for a feed/limit pair with the configured TTL.
func (c *FeedCache) Set(ctx context.Context, feedKey string, limit int, items []types.SearchResult) {
	if c == nil {
		return
	}

	b, err := json.Marshal(items)
	if err != nil {
		log.Printf("Feed cache marshal failed for %s: %v", feedKey, err)
		return
	}
	if err := c.client.Set(ctx, cacheKey(feedKey, limit), b, c.ttl).Err(); err != nil {
		log.Printf("Feed cache write failed for %s: %v", feedKey, err)
	}
}

// Close releases the underlying Redis connection.
func (c *FeedCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func cacheKey(feedKey string, limit int) string {
	return fmt.Sprintf("lexbot:feed:%s:%d", feedKey, limit)
}
