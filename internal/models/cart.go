package models

// Cart pricing rules. Shipping is free above the threshold, tax is a flat
// percentage of the subtotal regardless of shipping.
const (
	FreeShippingThreshold = 150.0
	FlatShippingFee       = 15.0
	TaxRate               = 0.08
)

// CartItem represents a product in the cart with its quantity. The cart
// holds at most one entry per product ID; re-adding increments the quantity.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartItemRequest represents the request to add an item to cart
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// CartItemUpdateRequest represents a quantity delta for a cart item
type CartItemUpdateRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CartSummary holds the derived totals for a cart
type CartSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CartResponse represents the full cart with items and totals
type CartResponse struct {
	Items      []CartItem  `json:"items"`
	TotalItems int         `json:"total_items"`
	Summary    CartSummary `json:"summary"`
}

// CartCountResponse represents the cart item count
type CartCountResponse struct {
	Count int `json:"count"`
}

// AddToCartResponse confirms an add and carries the transient notification
// shown to the user ("<name> +<qty>").
type AddToCartResponse struct {
	Item         CartItem `json:"item"`
	Notification string   `json:"notification"`
	TotalItems   int      `json:"total_items"`
}

// OrderConfirmation represents the simulated checkout result. No payment or
// inventory validation happens; checkout clears the cart unconditionally.
type OrderConfirmation struct {
	OrderNumber string      `json:"order_number"`
	TotalItems  int         `json:"total_items"`
	Summary     CartSummary `json:"summary"`
}

// Summarize computes the derived cart totals. Pure derivation, recomputed on
// every request rather than stored.
func Summarize(items []CartItem) (CartSummary, int) {
	var subtotal float64
	var count int
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		count += item.Quantity
	}

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate

	return CartSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}, count
}
