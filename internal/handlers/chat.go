package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"modernliving-backend/internal/assistant"
	"modernliving-backend/internal/middleware"
	"modernliving-backend/internal/models"
	"modernliving-backend/internal/store"
)

// ChatHandler fronts the shopping assistant
type ChatHandler struct {
	assistant *assistant.Assistant
	sessions  *store.SessionStore
}

// NewChatHandler creates a new chat handler
func NewChatHandler(a *assistant.Assistant, sessions *store.SessionStore) *ChatHandler {
	return &ChatHandler{assistant: a, sessions: sessions}
}

// GetMessages returns the session's chat transcript
func (h *ChatHandler) GetMessages(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	messages := h.sessions.Transcript(sessionID)
	c.JSON(http.StatusOK, models.TranscriptResponse{
		Messages: messages,
		Total:    len(messages),
	})
}

// PostMessage runs one assistant turn. Only one turn per session may be in
// flight; a second submission while waiting is rejected with 409.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	messages, err := h.assistant.HandleTurn(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		if errors.Is(err, assistant.ErrTurnInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "A message is already being processed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process message"})
		return
	}

	_, count := models.Summarize(h.sessions.CartItems(sessionID))
	c.JSON(http.StatusOK, models.ChatResponse{
		Messages:  messages,
		CartCount: count,
	})
}
