package models

// Product represents a catalog product. The catalog is defined once at
// startup and never mutated, so products are passed around by value.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Rating        float64 `json:"rating"`
	ReviewsCount  int     `json:"reviews_count"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	IsNew         bool    `json:"is_new,omitempty"`
	IsBestSeller  bool    `json:"is_best_seller,omitempty"`
}

// OnSale reports whether the product carries a discount. A discount exists
// only when an original price is set and is higher than the current price.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}

// CategoryResponse represents a shop navigation category
type CategoryResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// ProductListResponse represents the filtered product listing
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Category string    `json:"category"`
	Search   string    `json:"search"`
}

// HomeResponse represents the landing page payload
type HomeResponse struct {
	Highlights []Product `json:"highlights"`
}
