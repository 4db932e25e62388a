package catalog

import (
	"strings"

	"modernliving-backend/internal/models"
)

// Catalog is the fixed, read-only list of purchasable products. It is built
// once at startup and only ever read afterwards, so it needs no locking.
type Catalog struct {
	products []models.Product
}

// New creates a catalog over the given products. Catalog order is the
// display order everywhere.
func New(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

// Default returns the built-in Modern Living catalog.
func Default() *Catalog {
	return New(defaultProducts)
}

// All returns every product in catalog order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Highlights returns the products featured on the landing page.
func (c *Catalog) Highlights() []models.Product {
	n := 3
	if len(c.products) < n {
		n = len(c.products)
	}
	out := make([]models.Product, n)
	copy(out, c.products[:n])
	return out
}

// ByID looks a product up by its identifier.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// techCategories is the fixed allow-list behind the "Tech" pseudo-category.
var techCategories = map[string]bool{
	"Wearables":     true,
	"Home Audio":    true,
	"Home Security": true,
}

// Filter derives the visible product subset from the active category and
// search query, preserving catalog order.
//
// Pseudo-categories are resolved first, in a fixed priority: "Sale" selects
// discounted products, "New Arrivals" selects products flagged new, "Tech"
// matches the allow-list above, and "Home & Living" is an exact match on the
// "Lighting & Decor" category. Any other non-"All" value falls back to a
// case-sensitive substring match on the category label. Note the asymmetry:
// "Home & Living" is an equality test while the fallback is a substring
// test. That matches shipped behavior and is pinned by tests.
//
// A non-empty search is then applied as a case-insensitive substring match
// against the product name only.
func (c *Catalog) Filter(category, search string) []models.Product {
	list := c.products

	switch {
	case category == "Sale":
		list = selectProducts(list, func(p models.Product) bool { return p.OnSale() })
	case category == "New Arrivals":
		list = selectProducts(list, func(p models.Product) bool { return p.IsNew })
	case category == "Tech":
		list = selectProducts(list, func(p models.Product) bool { return techCategories[p.Category] })
	case category == "Home & Living":
		list = selectProducts(list, func(p models.Product) bool { return p.Category == "Lighting & Decor" })
	case category != "All" && category != "":
		list = selectProducts(list, func(p models.Product) bool { return strings.Contains(p.Category, category) })
	default:
		list = c.All()
	}

	if search != "" {
		query := strings.ToLower(search)
		list = selectProducts(list, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), query)
		})
	}

	return list
}

// Search matches the query against product name or category label,
// case-insensitively. This is the lookup behind the assistant's
// search_products tool, which casts a wider net than shop filtering.
func (c *Catalog) Search(query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	return selectProducts(c.products, func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q)
	})
}

// Categories returns the shop navigation entries: pseudo-categories plus the
// literal category filters, with their i18n label keys.
func (c *Catalog) Categories() []models.CategoryResponse {
	return []models.CategoryResponse{
		{Name: "All", Label: "cat_all"},
		{Name: "New Arrivals", Label: "nav_new"},
		{Name: "Home & Living", Label: "nav_home"},
		{Name: "Tech", Label: "nav_tech"},
		{Name: "Sale", Label: "nav_sale"},
		{Name: "Lighting & Decor", Label: "cat_lighting"},
		{Name: "Home Audio", Label: "cat_audio"},
		{Name: "Wearables", Label: "cat_wearables"},
	}
}

func selectProducts(list []models.Product, keep func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(list))
	for _, p := range list {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
