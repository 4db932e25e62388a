package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modernliving-backend/internal/middleware"
	"modernliving-backend/internal/models"
	"modernliving-backend/internal/store"
)

// SessionHandler exposes the session view state
type SessionHandler struct {
	sessions *store.SessionStore
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *store.SessionStore) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// GetSession returns the full session state snapshot
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	c.JSON(http.StatusOK, h.sessions.GetOrCreate(sessionID))
}

// SetView moves the session to another screen
func (h *SessionHandler) SetView(c *gin.Context) {
	var req models.ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.View.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown view"})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	c.JSON(http.StatusOK, h.sessions.SetView(sessionID, req.View))
}

// SetLanguage switches the session locale
func (h *SessionHandler) SetLanguage(c *gin.Context) {
	var req models.LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Language.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	c.JSON(http.StatusOK, h.sessions.SetLanguage(sessionID, req.Language))
}
