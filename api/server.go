package api

import (
	"context"

	"lexbot/chatbot"
	"lexbot/common"
	"lexbot/session"
	"lexbot/types"

	"github.com/gin-gonic/gin"
)

// FeedSource is the slice of the retriever the feed endpoints use.
type FeedSource interface {
	FetchAllFeeds(ctx context.Context, limitPerFeed int) []types.SearchResult
	FetchSingleFeed(ctx context.Context, feedKey string, limit int) ([]types.SearchResult, error)
	SearchFeedsByKeyword(ctx context.Context, keyword string, limit int) []types.SearchResult
}

// Services holds the collaborators the HTTP layer needs. Everything is
// constructed once in main and passed by reference; handlers keep no state
// of their own.
type Services struct {
	Store   *session.Store
	Chatbot *chatbot.Chatbot
	Feeds   FeedSource

	// S3 transcript export; nil/empty disables the endpoint.
	S3       *common.S3
	S3Bucket string
	S3Prefix string
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(svc Services) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterChatRoutes(r, svc)
	RegisterFeedRoutes(r, svc)
	return r
}

// currentUserID resolves the caller identity. Authentication is out of
// scope here: the id comes from the X-User-ID header, with a fixed
// development fallback matching the demo client.
func currentUserID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "test_user_123"
}
