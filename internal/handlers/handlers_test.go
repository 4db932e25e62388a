package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"modernliving-backend/internal/assistant"
	"modernliving-backend/internal/catalog"
	"modernliving-backend/internal/models"
	"modernliving-backend/internal/store"
)

const testSessionID = "test-session"

// scriptedProvider returns a canned reply so chat handler tests never reach a
// live completion API.
type scriptedProvider struct {
	reply *assistant.Reply
	err   error
}

func (p *scriptedProvider) Invoke(ctx context.Context, message string) (*assistant.Reply, error) {
	return p.reply, p.err
}

// newTestRouter wires all handlers behind a stub session middleware that pins
// the session ID, mirroring the production route table.
func newTestRouter(provider assistant.Provider) (*gin.Engine, *store.SessionStore) {
	gin.SetMode(gin.TestMode)

	cat := catalog.Default()
	sessions := store.NewSessionStore(assistant.GreetingText)
	concierge := assistant.New(provider, cat, sessions, 0)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("session_id", testSessionID)
		c.Next()
	})

	publicHandler := NewPublicHandler(cat, sessions)
	cartHandler := NewCartHandler(cat, sessions)
	wishlistHandler := NewWishlistHandler(cat, sessions)
	sessionHandler := NewSessionHandler(sessions)
	chatHandler := NewChatHandler(concierge, sessions)
	localeHandler := NewLocaleHandler(sessions)

	api := r.Group("/api")
	{
		api.GET("/home", publicHandler.GetHome)
		api.GET("/categories", publicHandler.GetCategories)
		api.GET("/products", publicHandler.GetProducts)
		api.GET("/products/:id", publicHandler.GetProduct)
		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/add", cartHandler.AddToCart)
		api.PUT("/cart/update/:id", cartHandler.UpdateCartItem)
		api.DELETE("/cart/remove/:id", cartHandler.RemoveFromCart)
		api.POST("/cart/clear", cartHandler.ClearCart)
		api.GET("/cart/count", cartHandler.GetCartCount)
		api.POST("/cart/checkout", cartHandler.Checkout)
		api.GET("/wishlist", wishlistHandler.GetWishlist)
		api.POST("/wishlist/toggle/:id", wishlistHandler.ToggleWishlist)
		api.GET("/session", sessionHandler.GetSession)
		api.PUT("/session/view", sessionHandler.SetView)
		api.PUT("/session/language", sessionHandler.SetLanguage)
		api.GET("/assistant/messages", chatHandler.GetMessages)
		api.POST("/assistant/chat", chatHandler.PostMessage)
		api.GET("/translations/:lang", localeHandler.GetTranslations)
		api.GET("/pages/:slug", localeHandler.GetPage)
	}

	return r, sessions
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestGetHome(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(t, r, http.MethodGet, "/api/home", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	resp := decode[models.HomeResponse](t, w)
	if len(resp.Highlights) != 3 {
		t.Errorf("Expected 3 highlights, got %d", len(resp.Highlights))
	}
}

func TestGetProductsUpdatesSessionFilter(t *testing.T) {
	r, sessions := newTestRouter(nil)

	w := doRequest(t, r, http.MethodGet, "/api/products?category=Sale", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	resp := decode[models.ProductListResponse](t, w)
	if resp.Total != 2 {
		t.Errorf("Expected 2 sale products, got %d", resp.Total)
	}
	for _, p := range resp.Products {
		if !p.OnSale() {
			t.Errorf("Product %s is not on sale", p.ID)
		}
	}

	if state := sessions.GetOrCreate(testSessionID); state.ActiveCategory != "Sale" {
		t.Errorf("Expected session filter updated to Sale, got %q", state.ActiveCategory)
	}

	// A follow-up request without params reuses the stored filter.
	w = doRequest(t, r, http.MethodGet, "/api/products", nil)
	resp = decode[models.ProductListResponse](t, w)
	if resp.Category != "Sale" || resp.Total != 2 {
		t.Errorf("Expected sticky Sale filter, got category %q with %d products", resp.Category, resp.Total)
	}
}

func TestGetProductSelectsAndTransitions(t *testing.T) {
	r, sessions := newTestRouter(nil)

	w := doRequest(t, r, http.MethodGet, "/api/products/4", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	product := decode[models.Product](t, w)
	if product.Name != "Gradient Lightstrip V2" {
		t.Errorf("Unexpected product %q", product.Name)
	}

	state := sessions.GetOrCreate(testSessionID)
	if state.SelectedProductID != "4" {
		t.Errorf("Expected selected product 4, got %q", state.SelectedProductID)
	}
	if state.View != models.ViewProduct {
		t.Errorf("Expected product view, got %s", state.View)
	}
}

func TestGetProductNotFound(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(t, r, http.MethodGet, "/api/products/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCartLifecycle(t *testing.T) {
	r, _ := newTestRouter(nil)

	// Add twice, quantities merge.
	w := doRequest(t, r, http.MethodPost, "/api/cart/add", models.CartItemRequest{ProductID: "5", Quantity: 2})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	added := decode[models.AddToCartResponse](t, w)
	if added.Notification != "A19 Smart Bulb Color +2" {
		t.Errorf("Unexpected notification %q", added.Notification)
	}

	w = doRequest(t, r, http.MethodPost, "/api/cart/add", models.CartItemRequest{ProductID: "5"})
	added = decode[models.AddToCartResponse](t, w)
	if added.Item.Quantity != 3 || added.TotalItems != 3 {
		t.Errorf("Expected merged quantity 3, got item %d total %d", added.Item.Quantity, added.TotalItems)
	}

	// Decrement below 1 clamps.
	w = doRequest(t, r, http.MethodPut, "/api/cart/update/5", models.CartItemUpdateRequest{Delta: -5})
	cart := decode[models.CartResponse](t, w)
	if cart.Items[0].Quantity != 1 {
		t.Errorf("Expected clamp at 1, got %d", cart.Items[0].Quantity)
	}

	// Subtotal 39 is under the free-shipping threshold.
	if cart.Summary.Shipping != models.FlatShippingFee {
		t.Errorf("Expected flat shipping fee, got %v", cart.Summary.Shipping)
	}
	if cart.Summary.Tax != 39*models.TaxRate {
		t.Errorf("Unexpected tax %v", cart.Summary.Tax)
	}

	w = doRequest(t, r, http.MethodDelete, "/api/cart/remove/5", nil)
	cart = decode[models.CartResponse](t, w)
	if len(cart.Items) != 0 {
		t.Errorf("Expected empty cart after removal, got %v", cart.Items)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(t, r, http.MethodPost, "/api/cart/add", models.CartItemRequest{ProductID: "999"})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestAddToCartMissingProductID(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(t, r, http.MethodPost, "/api/cart/add", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", w.Code)
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	r, sessions := newTestRouter(nil)

	doRequest(t, r, http.MethodPost, "/api/cart/add", models.CartItemRequest{ProductID: "8"})

	w := doRequest(t, r, http.MethodPost, "/api/cart/checkout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	confirmation := decode[models.OrderConfirmation](t, w)
	if confirmation.OrderNumber == "" {
		t.Error("Expected an order number")
	}
	// Subtotal 399 clears the free-shipping threshold.
	if confirmation.Summary.Shipping != 0 {
		t.Errorf("Expected free shipping, got %v", confirmation.Summary.Shipping)
	}

	if got := sessions.CartItems(testSessionID); len(got) != 0 {
		t.Errorf("Expected empty cart after checkout, got %v", got)
	}
	if view := sessions.GetOrCreate(testSessionID).View; view != models.ViewCheckoutSuccess {
		t.Errorf("Expected checkout_success view, got %s", view)
	}
}

func TestCartCount(t *testing.T) {
	r, _ := newTestRouter(nil)

	doRequest(t, r, http.MethodPost, "/api/cart/add", models.CartItemRequest{ProductID: "1", Quantity: 2})
	doRequest(t, r, http.MethodPost, "/api/cart/add", models.CartItemRequest{ProductID: "2"})

	w := doRequest(t, r, http.MethodGet, "/api/cart/count", nil)
	count := decode[models.CartCountResponse](t, w)
	if count.Count != 3 {
		t.Errorf("Expected count 3, got %d", count.Count)
	}
}

func TestWishlistToggle(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(t, r, http.MethodPost, "/api/wishlist/toggle/3", nil)
	toggled := decode[models.WishlistToggleResponse](t, w)
	if !toggled.Added || toggled.Count != 1 {
		t.Errorf("Expected product added, got %+v", toggled)
	}

	w = doRequest(t, r, http.MethodPost, "/api/wishlist/toggle/3", nil)
	toggled = decode[models.WishlistToggleResponse](t, w)
	if toggled.Added || toggled.Count != 0 {
		t.Errorf("Expected product removed on second toggle, got %+v", toggled)
	}

	w = doRequest(t, r, http.MethodPost, "/api/wishlist/toggle/999", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown product, got %d", w.Code)
	}
}

func TestSetViewValidation(t *testing.T) {
	r, sessions := newTestRouter(nil)

	w := doRequest(t, r, http.MethodPut, "/api/session/view", models.ViewRequest{View: models.ViewShop})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if view := sessions.GetOrCreate(testSessionID).View; view != models.ViewShop {
		t.Errorf("Expected shop view, got %s", view)
	}

	w = doRequest(t, r, http.MethodPut, "/api/session/view", map[string]string{"view": "dashboard"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown view, got %d", w.Code)
	}
}

func TestSetLanguageValidation(t *testing.T) {
	r, sessions := newTestRouter(nil)

	w := doRequest(t, r, http.MethodPut, "/api/session/language", models.LanguageRequest{Language: models.LangFR})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if lang := sessions.GetOrCreate(testSessionID).Language; lang != models.LangFR {
		t.Errorf("Expected fr, got %s", lang)
	}

	w = doRequest(t, r, http.MethodPut, "/api/session/language", map[string]string{"language": "pt"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unsupported language, got %d", w.Code)
	}
}

func TestGetMessagesSeedsGreeting(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(t, r, http.MethodGet, "/api/assistant/messages", nil)
	resp := decode[models.TranscriptResponse](t, w)
	if resp.Total != 1 || resp.Messages[0].Role != models.RoleAssistant {
		t.Fatalf("Expected the greeting alone, got %+v", resp)
	}
}

func TestPostMessageRunsToolCall(t *testing.T) {
	provider := &scriptedProvider{reply: &assistant.Reply{
		ToolCalls: []assistant.ToolCall{{Name: assistant.ToolAddToCart, Args: map[string]any{"product_id": "6"}}},
	}}
	r, sessions := newTestRouter(provider)

	w := doRequest(t, r, http.MethodPost, "/api/assistant/chat", models.ChatRequest{Message: "añade el kit de paneles"})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decode[models.ChatResponse](t, w)
	if resp.CartCount != 1 {
		t.Errorf("Expected cart count 1, got %d", resp.CartCount)
	}
	if len(resp.Messages) != 2 {
		t.Errorf("Expected user + confirmation messages, got %d", len(resp.Messages))
	}
	if got := sessions.CartItems(testSessionID); len(got) != 1 || got[0].ID != "6" {
		t.Errorf("Expected Shapes Triangles Kit in cart, got %v", got)
	}
}

func TestPostMessageConflictWhileInFlight(t *testing.T) {
	provider := &scriptedProvider{reply: &assistant.Reply{Text: "ok"}}
	r, sessions := newTestRouter(provider)

	sessions.BeginAssistantTurn(testSessionID)
	defer sessions.EndAssistantTurn(testSessionID)

	w := doRequest(t, r, http.MethodPost, "/api/assistant/chat", models.ChatRequest{Message: "hola"})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 while a turn is in flight, got %d", w.Code)
	}
}

func TestPostMessageEmptyBody(t *testing.T) {
	r, _ := newTestRouter(&scriptedProvider{reply: &assistant.Reply{Text: "ok"}})

	w := doRequest(t, r, http.MethodPost, "/api/assistant/chat", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing message, got %d", w.Code)
	}
}

func TestGetTranslations(t *testing.T) {
	r, _ := newTestRouter(nil)

	w := doRequest(t, r, http.MethodGet, "/api/translations/DE", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp struct {
		Language string            `json:"language"`
		Strings  map[string]string `json:"strings"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Strings["nav_sale"] != "Angebote" {
		t.Errorf("Expected German nav_sale, got %q", resp.Strings["nav_sale"])
	}

	w = doRequest(t, r, http.MethodGet, "/api/translations/pt", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unsupported language, got %d", w.Code)
	}
}

func TestGetPageUsesSessionLanguage(t *testing.T) {
	r, sessions := newTestRouter(nil)

	// Default session language is Spanish.
	w := doRequest(t, r, http.MethodGet, "/api/pages/story", nil)
	page := decode[struct {
		Slug  string `json:"slug"`
		Title string `json:"title"`
	}](t, w)
	if page.Title != "Nuestra Historia" {
		t.Errorf("Expected Spanish title, got %q", page.Title)
	}

	sessions.SetLanguage(testSessionID, models.LangEN)
	w = doRequest(t, r, http.MethodGet, "/api/pages/story", nil)
	page = decode[struct {
		Slug  string `json:"slug"`
		Title string `json:"title"`
	}](t, w)
	if page.Title != "Our Story" {
		t.Errorf("Expected English title, got %q", page.Title)
	}

	// An explicit lang param overrides the session.
	w = doRequest(t, r, http.MethodGet, "/api/pages/story?lang=FR", nil)
	page = decode[struct {
		Slug  string `json:"slug"`
		Title string `json:"title"`
	}](t, w)
	if page.Title != "Notre Histoire" {
		t.Errorf("Expected French title, got %q", page.Title)
	}

	w = doRequest(t, r, http.MethodGet, "/api/pages/careers", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown page, got %d", w.Code)
	}
}
