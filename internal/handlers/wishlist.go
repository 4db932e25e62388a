package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modernliving-backend/internal/catalog"
	"modernliving-backend/internal/middleware"
	"modernliving-backend/internal/models"
	"modernliving-backend/internal/store"
)

// WishlistHandler handles wishlist requests
type WishlistHandler struct {
	catalog  *catalog.Catalog
	sessions *store.SessionStore
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(cat *catalog.Catalog, sessions *store.SessionStore) *WishlistHandler {
	return &WishlistHandler{catalog: cat, sessions: sessions}
}

// GetWishlist returns the wishlisted product IDs
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	ids := h.sessions.Wishlist(sessionID)
	c.JSON(http.StatusOK, models.WishlistResponse{
		ProductIDs: ids,
		Count:      len(ids),
	})
}

// ToggleWishlist flips wishlist membership for a product: present IDs are
// removed, absent IDs are added
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	productID := c.Param("id")
	if _, ok := h.catalog.ByID(productID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	added, ids := h.sessions.ToggleWishlist(sessionID, productID)
	c.JSON(http.StatusOK, models.WishlistToggleResponse{
		ProductID: productID,
		Added:     added,
		Count:     len(ids),
	})
}
