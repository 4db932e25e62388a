package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modernliving-backend/internal/catalog"
	"modernliving-backend/internal/middleware"
	"modernliving-backend/internal/models"
	"modernliving-backend/internal/store"
)

// CartHandler handles cart-related requests
type CartHandler struct {
	catalog  *catalog.Catalog
	sessions *store.SessionStore
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cat *catalog.Catalog, sessions *store.SessionStore) *CartHandler {
	return &CartHandler{catalog: cat, sessions: sessions}
}

// GetCart returns the current cart contents with derived totals
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	items := h.sessions.CartItems(sessionID)
	summary, count := models.Summarize(items)

	c.JSON(http.StatusOK, models.CartResponse{
		Items:      items,
		TotalItems: count,
		Summary:    summary,
	})
}

// AddToCart adds a product to the cart, merging with an existing entry for
// the same product ID
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req models.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	product, ok := h.catalog.ByID(req.ProductID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item, notification := h.sessions.AddCartItem(sessionID, product, quantity)
	_, count := models.Summarize(h.sessions.CartItems(sessionID))

	c.JSON(http.StatusCreated, models.AddToCartResponse{
		Item:         item,
		Notification: notification,
		TotalItems:   count,
	})
}

// UpdateCartItem applies a quantity delta to a cart entry. The quantity
// never drops below 1; an unknown ID is a no-op.
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req models.CartItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	items := h.sessions.UpdateCartQuantity(sessionID, c.Param("id"), req.Delta)
	summary, count := models.Summarize(items)

	c.JSON(http.StatusOK, models.CartResponse{
		Items:      items,
		TotalItems: count,
		Summary:    summary,
	})
}

// RemoveFromCart deletes a cart entry; removing an absent ID is a no-op
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	items := h.sessions.RemoveCartItem(sessionID, c.Param("id"))
	summary, count := models.Summarize(items)

	c.JSON(http.StatusOK, models.CartResponse{
		Items:      items,
		TotalItems: count,
		Summary:    summary,
	})
}

// ClearCart empties the cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	h.sessions.ClearCart(sessionID)
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// GetCartCount returns the total item count across entries
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	_, count := models.Summarize(h.sessions.CartItems(sessionID))
	c.JSON(http.StatusOK, models.CartCountResponse{Count: count})
}

// Checkout performs the simulated checkout: it always succeeds, clears the
// cart and moves the session to the confirmation screen. An empty cart can
// check out too.
func (h *CartHandler) Checkout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No session found"})
		return
	}

	confirmation := h.sessions.Checkout(sessionID)
	c.JSON(http.StatusOK, confirmation)
}
