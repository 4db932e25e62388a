package store

import (
	"fmt"

	"github.com/google/uuid"

	"modernliving-backend/internal/models"
)

// AddCartItem adds quantity units of product to the session cart. If the
// product is already present its quantity is incremented; the cart never
// holds two entries for the same product ID. Returns the resulting item and
// the transient notification text.
func (s *SessionStore) AddCartItem(sessionID string, product models.Product, quantity int) (models.CartItem, string) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	next := append([]models.CartItem(nil), rec.state.Cart...)

	var result models.CartItem
	found := false
	for i, item := range next {
		if item.ID == product.ID {
			next[i].Quantity += quantity
			result = next[i]
			found = true
			break
		}
	}
	if !found {
		result = models.CartItem{Product: product, Quantity: quantity}
		next = append(next, result)
	}

	rec.state.Cart = next
	rec.touch()
	return result, fmt.Sprintf("%s +%d", product.Name, quantity)
}

// UpdateCartQuantity applies a quantity delta to the cart entry for
// productID. The quantity is clamped at 1, so decrementing past 1 is a
// no-op on the value rather than a removal. An absent ID is a silent no-op.
func (s *SessionStore) UpdateCartQuantity(sessionID, productID string, delta int) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	next := append([]models.CartItem(nil), rec.state.Cart...)
	for i, item := range next {
		if item.ID == productID {
			q := item.Quantity + delta
			if q < 1 {
				q = 1
			}
			next[i].Quantity = q
			break
		}
	}
	rec.state.Cart = next
	rec.touch()
	return append([]models.CartItem(nil), next...)
}

// RemoveCartItem deletes the entry for productID if present.
func (s *SessionStore) RemoveCartItem(sessionID, productID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	next := make([]models.CartItem, 0, len(rec.state.Cart))
	for _, item := range rec.state.Cart {
		if item.ID == productID {
			continue
		}
		next = append(next, item)
	}
	rec.state.Cart = next
	rec.touch()
	return append([]models.CartItem(nil), next...)
}

// ClearCart empties the session cart.
func (s *SessionStore) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	rec.state.Cart = nil
	rec.touch()
}

// CartItems returns a snapshot of the session cart.
func (s *SessionStore) CartItems(sessionID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.record(sessionID).state.Cart...)
}

// Checkout is the simulated terminal transition: it captures the totals,
// clears the cart and moves the session to the confirmation screen, all as
// one state change. It succeeds unconditionally, even on an empty cart.
func (s *SessionStore) Checkout(sessionID string) models.OrderConfirmation {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	summary, count := models.Summarize(rec.state.Cart)
	rec.state.Cart = nil
	rec.state.View = models.ViewCheckoutSuccess
	rec.touch()

	return models.OrderConfirmation{
		OrderNumber: uuid.NewString(),
		TotalItems:  count,
		Summary:     summary,
	}
}
