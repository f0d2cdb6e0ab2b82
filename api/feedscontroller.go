package api

import (
	"errors"
	"net/http"
	"strconv"

	"lexbot/retrieval"

	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes registers the legislation feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, svc Services) {
	g := r.Group("/api/feeds")
	g.GET("", handleAllFeeds(svc))
	g.GET("/search", handleFeedSearch(svc))
	g.GET("/:key", handleSingleFeed(svc))
}

// handleAllFeeds returns the latest entries from every legislation feed.
func handleAllFeeds(svc Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := limitParam(c, 2)
		items := svc.Feeds.FetchAllFeeds(c.Request.Context(), limit)
		c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
	}
}

// handleFeedSearch scans recent legislation for a keyword.
func handleFeedSearch(svc Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("q")
		if keyword == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
			return
		}
		limit := limitParam(c, 10)
		items := svc.Feeds.SearchFeedsByKeyword(c.Request.Context(), keyword, limit)
		c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
	}
}

// handleSingleFeed returns the latest entries from one named feed.
func handleSingleFeed(svc Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := limitParam(c, 3)
		items, err := svc.Feeds.FetchSingleFeed(c.Request.Context(), c.Param("key"), limit)
		if err != nil {
			if errors.Is(err, retrieval.ErrFeedNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "unknown feed: " + c.Param("key")})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
	}
}

func limitParam(c *gin.Context, fallback int) int {
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
