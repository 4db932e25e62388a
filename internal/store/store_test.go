package store

import (
	"testing"

	"modernliving-backend/internal/models"
)

const testSession = "test-session"

func testProduct(id string, price float64) models.Product {
	return models.Product{ID: id, Name: "Product " + id, Price: price, Category: "Misc"}
}

func TestAddCartItemMergesByProductID(t *testing.T) {
	s := NewSessionStore("")
	p := testProduct("A", 10)

	s.AddCartItem(testSession, p, 1)
	item, notification := s.AddCartItem(testSession, p, 1)

	items := s.CartItems(testSession)
	if len(items) != 1 {
		t.Fatalf("Expected a single cart entry, got %d", len(items))
	}
	if item.Quantity != 2 || items[0].Quantity != 2 {
		t.Errorf("Expected quantity 2 after re-add, got %d", items[0].Quantity)
	}
	if notification != "Product A +1" {
		t.Errorf("Unexpected notification %q", notification)
	}
}

func TestAddCartItemQuantitySums(t *testing.T) {
	s := NewSessionStore("")
	p := testProduct("A", 10)

	for _, q := range []int{1, 3, 2} {
		s.AddCartItem(testSession, p, q)
	}

	items := s.CartItems(testSession)
	if len(items) != 1 || items[0].Quantity != 6 {
		t.Fatalf("Expected one entry with quantity 6, got %v", items)
	}
}

func TestAddCartItemDefaultsQuantityToOne(t *testing.T) {
	s := NewSessionStore("")
	item, _ := s.AddCartItem(testSession, testProduct("A", 10), 0)
	if item.Quantity != 1 {
		t.Errorf("Expected quantity to default to 1, got %d", item.Quantity)
	}
}

func TestUpdateCartQuantityClampsAtOne(t *testing.T) {
	s := NewSessionStore("")
	s.AddCartItem(testSession, testProduct("A", 10), 2)

	items := s.UpdateCartQuantity(testSession, "A", -1)
	if items[0].Quantity != 1 {
		t.Fatalf("Expected quantity 1, got %d", items[0].Quantity)
	}

	// Decrementing at 1 is a no-op on the value, never a removal.
	items = s.UpdateCartQuantity(testSession, "A", -1)
	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("Expected entry to stay at quantity 1, got %v", items)
	}

	// Large negative deltas clamp the same way.
	items = s.UpdateCartQuantity(testSession, "A", -1000)
	if items[0].Quantity != 1 {
		t.Errorf("Expected clamp at 1 for large negative delta, got %d", items[0].Quantity)
	}
}

func TestUpdateCartQuantityUnknownIDIsNoOp(t *testing.T) {
	s := NewSessionStore("")
	s.AddCartItem(testSession, testProduct("A", 10), 1)

	items := s.UpdateCartQuantity(testSession, "missing", 5)
	if len(items) != 1 || items[0].ID != "A" || items[0].Quantity != 1 {
		t.Errorf("Expected cart unchanged, got %v", items)
	}
}

func TestRemoveCartItem(t *testing.T) {
	s := NewSessionStore("")
	s.AddCartItem(testSession, testProduct("A", 10), 1)
	s.AddCartItem(testSession, testProduct("B", 20), 1)

	items := s.RemoveCartItem(testSession, "A")
	if len(items) != 1 || items[0].ID != "B" {
		t.Fatalf("Expected only B after removal, got %v", items)
	}

	// Removing an absent ID is a no-op.
	items = s.RemoveCartItem(testSession, "A")
	if len(items) != 1 {
		t.Errorf("Expected no-op removal, got %v", items)
	}
}

func TestCheckoutClearsCartAndTransitionsView(t *testing.T) {
	s := NewSessionStore("")
	s.AddCartItem(testSession, testProduct("A", 100), 1)

	confirmation := s.Checkout(testSession)
	if confirmation.OrderNumber == "" {
		t.Error("Expected an order number")
	}
	if confirmation.TotalItems != 1 {
		t.Errorf("Expected 1 item in confirmation, got %d", confirmation.TotalItems)
	}
	if got := s.CartItems(testSession); len(got) != 0 {
		t.Errorf("Expected empty cart after checkout, got %v", got)
	}
	if view := s.GetOrCreate(testSession).View; view != models.ViewCheckoutSuccess {
		t.Errorf("Expected checkout_success view, got %s", view)
	}
}

func TestCheckoutEmptyCartSucceeds(t *testing.T) {
	s := NewSessionStore("")
	confirmation := s.Checkout(testSession)
	if confirmation.TotalItems != 0 {
		t.Errorf("Expected 0 items, got %d", confirmation.TotalItems)
	}
	if confirmation.Summary.Total != models.FlatShippingFee {
		t.Errorf("Expected total to be just the flat fee, got %v", confirmation.Summary.Total)
	}
	if view := s.GetOrCreate(testSession).View; view != models.ViewCheckoutSuccess {
		t.Errorf("Expected checkout_success view, got %s", view)
	}
}

func TestSummarizeShippingThreshold(t *testing.T) {
	// Subtotal 160 exceeds the 150 threshold: free shipping.
	items := []models.CartItem{{Product: testProduct("A", 160), Quantity: 1}}
	summary, _ := models.Summarize(items)
	if summary.Shipping != 0 {
		t.Errorf("Expected free shipping at subtotal 160, got %v", summary.Shipping)
	}

	// Subtotal 100 pays the flat fee.
	items = []models.CartItem{{Product: testProduct("A", 100), Quantity: 1}}
	summary, _ = models.Summarize(items)
	if summary.Shipping != 15 {
		t.Errorf("Expected flat fee 15 at subtotal 100, got %v", summary.Shipping)
	}

	// Exactly at the threshold still pays shipping.
	items = []models.CartItem{{Product: testProduct("A", 150), Quantity: 1}}
	summary, _ = models.Summarize(items)
	if summary.Shipping != 15 {
		t.Errorf("Expected flat fee at subtotal 150, got %v", summary.Shipping)
	}
}

func TestSummarizeTaxIndependentOfShipping(t *testing.T) {
	items := []models.CartItem{{Product: testProduct("A", 160), Quantity: 1}}
	summary, _ := models.Summarize(items)
	if summary.Tax != 160*0.08 {
		t.Errorf("Expected 8%% tax on subtotal, got %v", summary.Tax)
	}
	if summary.Total != 160+summary.Tax {
		t.Errorf("Expected total without shipping, got %v", summary.Total)
	}

	items = []models.CartItem{{Product: testProduct("A", 100), Quantity: 1}}
	summary, _ = models.Summarize(items)
	if summary.Tax != 100*0.08 {
		t.Errorf("Expected tax on subtotal regardless of shipping, got %v", summary.Tax)
	}
	if summary.Total != 100+15+summary.Tax {
		t.Errorf("Unexpected total %v", summary.Total)
	}
}

func TestToggleWishlist(t *testing.T) {
	s := NewSessionStore("")

	added, ids := s.ToggleWishlist(testSession, "A")
	if !added || len(ids) != 1 {
		t.Fatalf("Expected A added, got added=%v ids=%v", added, ids)
	}

	added, ids = s.ToggleWishlist(testSession, "A")
	if added || len(ids) != 0 {
		t.Fatalf("Expected A removed on second toggle, got added=%v ids=%v", added, ids)
	}
}

func TestSessionDefaults(t *testing.T) {
	s := NewSessionStore("hola")
	state := s.GetOrCreate(testSession)

	if state.View != models.ViewHome {
		t.Errorf("Expected home view, got %s", state.View)
	}
	if state.Language != models.LangES {
		t.Errorf("Expected ES default, got %s", state.Language)
	}
	if state.ActiveCategory != "All" {
		t.Errorf("Expected All category, got %s", state.ActiveCategory)
	}
	if len(state.Transcript) != 1 || state.Transcript[0].Text != "hola" {
		t.Errorf("Expected greeting to seed the transcript, got %v", state.Transcript)
	}
	if state.Transcript[0].Role != models.RoleAssistant {
		t.Errorf("Expected assistant greeting, got role %s", state.Transcript[0].Role)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewSessionStore("")
	s.AddCartItem(testSession, testProduct("A", 10), 1)

	before := s.GetOrCreate(testSession)
	s.AddCartItem(testSession, testProduct("B", 20), 1)

	if len(before.Cart) != 1 {
		t.Errorf("Earlier snapshot changed under a later mutation: %v", before.Cart)
	}
}

func TestAssistantTurnLatch(t *testing.T) {
	s := NewSessionStore("")

	if !s.BeginAssistantTurn(testSession) {
		t.Fatal("Expected first turn to acquire the latch")
	}
	if s.BeginAssistantTurn(testSession) {
		t.Fatal("Expected second turn to be rejected while latched")
	}

	s.EndAssistantTurn(testSession)
	if !s.BeginAssistantTurn(testSession) {
		t.Error("Expected latch to be reusable after release")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	s := NewSessionStore("")
	s.AddCartItem("visitor-1", testProduct("A", 10), 1)

	if got := s.CartItems("visitor-2"); len(got) != 0 {
		t.Errorf("Expected empty cart for a different session, got %v", got)
	}
}
