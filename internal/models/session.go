package models

import "time"

// ViewMode identifies the screen the session is currently on
type ViewMode string

const (
	ViewHome            ViewMode = "home"
	ViewShop            ViewMode = "shop"
	ViewProduct         ViewMode = "product"
	ViewCart            ViewMode = "cart"
	ViewCheckoutSuccess ViewMode = "checkout_success"
	ViewStory           ViewMode = "story"
	ViewSustainability  ViewMode = "sustainability"
	ViewPrivacy         ViewMode = "privacy"
	ViewTerms           ViewMode = "terms"
	ViewSupport         ViewMode = "support"
)

// Valid reports whether v is one of the known screens.
func (v ViewMode) Valid() bool {
	switch v {
	case ViewHome, ViewShop, ViewProduct, ViewCart, ViewCheckoutSuccess,
		ViewStory, ViewSustainability, ViewPrivacy, ViewTerms, ViewSupport:
		return true
	}
	return false
}

// Language is one of the supported locales
type Language string

const (
	LangES Language = "ES"
	LangEN Language = "EN"
	LangFR Language = "FR"
	LangDE Language = "DE"
	LangZH Language = "ZH"
)

// DefaultLanguage is the locale a fresh session starts in.
const DefaultLanguage = LangES

// Languages lists every supported locale.
func Languages() []Language {
	return []Language{LangES, LangEN, LangFR, LangDE, LangZH}
}

// Valid reports whether l is a supported locale.
func (l Language) Valid() bool {
	switch l {
	case LangES, LangEN, LangFR, LangDE, LangZH:
		return true
	}
	return false
}

// SessionState is the full view/session state for one visitor: current
// screen, locale, active filters, cart, wishlist and chat transcript. It is
// a snapshot; mutations go through the store.
type SessionState struct {
	SessionID         string        `json:"session_id"`
	View              ViewMode      `json:"view"`
	Language          Language      `json:"language"`
	ActiveCategory    string        `json:"active_category"`
	SearchQuery       string        `json:"search_query"`
	SelectedProductID string        `json:"selected_product_id,omitempty"`
	Cart              []CartItem    `json:"cart"`
	Wishlist          []string      `json:"wishlist"`
	Transcript        []ChatMessage `json:"transcript"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// ViewRequest changes the current screen
type ViewRequest struct {
	View ViewMode `json:"view" binding:"required"`
}

// LanguageRequest changes the active locale
type LanguageRequest struct {
	Language Language `json:"language" binding:"required"`
}

// WishlistResponse lists the wishlisted product IDs
type WishlistResponse struct {
	ProductIDs []string `json:"product_ids"`
	Count      int      `json:"count"`
}

// WishlistToggleResponse reports the outcome of a toggle
type WishlistToggleResponse struct {
	ProductID string `json:"product_id"`
	Added     bool   `json:"added"`
	Count     int    `json:"count"`
}
