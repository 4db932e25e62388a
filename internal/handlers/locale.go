package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modernliving-backend/internal/i18n"
	"modernliving-backend/internal/middleware"
	"modernliving-backend/internal/models"
	"modernliving-backend/internal/store"
)

// LocaleHandler serves the static translation tables and the localized
// informational pages
type LocaleHandler struct {
	sessions *store.SessionStore
}

// NewLocaleHandler creates a new locale handler
func NewLocaleHandler(sessions *store.SessionStore) *LocaleHandler {
	return &LocaleHandler{sessions: sessions}
}

// GetTranslations returns the full UI string table for one language
func (h *LocaleHandler) GetTranslations(c *gin.Context) {
	lang := models.Language(c.Param("lang"))
	if !lang.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"language": lang,
		"strings":  i18n.All(lang),
	})
}

// GetPage returns one informational page in the session's language. An
// explicit lang query param overrides it.
func (h *LocaleHandler) GetPage(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	lang := h.sessions.GetOrCreate(sessionID).Language
	if override := models.Language(c.Query("lang")); override != "" {
		if !override.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported language"})
			return
		}
		lang = override
	}

	page, ok := i18n.Page(c.Param("slug"), lang)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}
