package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modernliving-backend/internal/catalog"
	"modernliving-backend/internal/middleware"
	"modernliving-backend/internal/models"
	"modernliving-backend/internal/store"
)

// PublicHandler serves the catalog browsing surface
type PublicHandler struct {
	catalog  *catalog.Catalog
	sessions *store.SessionStore
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(cat *catalog.Catalog, sessions *store.SessionStore) *PublicHandler {
	return &PublicHandler{catalog: cat, sessions: sessions}
}

// GetProducts returns the filtered product listing. Explicit category/search
// query params update the session's active filter; absent params fall back
// to whatever the session had.
func (h *PublicHandler) GetProducts(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	state := h.sessions.GetOrCreate(sessionID)
	category := state.ActiveCategory
	search := state.SearchQuery

	_, hasCategory := c.GetQuery("category")
	_, hasSearch := c.GetQuery("search")
	if hasCategory {
		category = c.Query("category")
	}
	if hasSearch {
		search = c.Query("search")
	}
	if hasCategory || hasSearch {
		h.sessions.SetFilter(sessionID, category, search)
	}

	products := h.catalog.Filter(category, search)

	c.JSON(http.StatusOK, models.ProductListResponse{
		Products: products,
		Total:    len(products),
		Category: category,
		Search:   search,
	})
}

// GetProduct returns a single product and marks it as the session's
// selected product for the detail view.
func (h *PublicHandler) GetProduct(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	product, ok := h.catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	h.sessions.SetSelectedProduct(sessionID, product.ID)
	c.JSON(http.StatusOK, product)
}

// GetCategories returns the shop navigation categories with their labels in
// the session's language.
func (h *PublicHandler) GetCategories(c *gin.Context) {
	categories := h.catalog.Categories()
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"total":      len(categories),
	})
}

// GetHome returns the landing page highlights.
func (h *PublicHandler) GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, models.HomeResponse{
		Highlights: h.catalog.Highlights(),
	})
}
