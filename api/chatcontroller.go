package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"lexbot/session"

	"github.com/gin-gonic/gin"
)

const maxListedSessions = 50

// ChatRequest is the body of POST /api/chat. SessionID is optional; when
// absent a new session is created titled after the message.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// ChatResponse carries the assistant reply and the ids the client needs to
// continue the conversation.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
}

// SessionSummary is one entry of the session listing.
type SessionSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RegisterChatRoutes registers the chat and session endpoints.
func RegisterChatRoutes(r *gin.Engine, svc Services) {
	r.POST("/api/chat", handleChat(svc))
	g := r.Group("/api/sessions")
	g.GET("", handleListSessions(svc))
	g.DELETE("/:id", handleDeactivateSession(svc))
	g.POST("/:id/export", handleExportSession(svc))
}

// handleChat runs one chat turn: resolve session, retrieve context,
// generate, persist.
func handleChat(svc Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.Chatbot.Ask(c.Request.Context(), currentUserID(c), req.SessionID, req.Message)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, ChatResponse{
			Response:  result.Reply,
			SessionID: result.SessionID,
			MessageID: result.MessageID,
		})
	}
}

// handleListSessions returns the caller's active sessions, most recently
// updated first.
func handleListSessions(svc Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions := svc.Store.ListSessions(currentUserID(c), maxListedSessions)

		summaries := make([]SessionSummary, 0, len(sessions))
		for _, s := range sessions {
			summaries = append(summaries, SessionSummary{
				ID:        s.ID,
				Title:     s.Title,
				CreatedAt: s.CreatedAt,
				UpdatedAt: s.UpdatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{"sessions": summaries})
	}
}

// handleDeactivateSession soft-deletes a session; its history stays in
// memory but is excluded from all reads.
func handleDeactivateSession(svc Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Store.DeactivateSession(c.Param("id"), currentUserID(c)); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
	}
}

// handleExportSession uploads the full session transcript to S3 as JSON.
func handleExportSession(svc Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		if svc.S3 == nil || svc.S3Bucket == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "transcript export is not configured"})
			return
		}

		sess, err := svc.Store.GetSession(c.Param("id"), currentUserID(c))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		b, err := json.MarshalIndent(sess, "", "  ")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		key := svc.S3Prefix + "transcripts/" + sess.ID + ".json"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		if err := svc.S3.Put(ctx, svc.S3Bucket, key, bytes.NewReader(b), "application/json"); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to upload transcript: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "exported",
			"bucket": svc.S3Bucket,
			"key":    key,
		})
	}
}
