package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"modernliving-backend/internal/models"
)

// SessionStore holds all per-visitor state in memory, keyed by the cookie
// session ID. Nothing is persisted; a restart starts every visitor over.
//
// Mutations replace the affected containers wholesale (copy-on-write), so a
// snapshot handed out by Get never changes under the caller.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*sessionRecord
	greeting string
}

type sessionRecord struct {
	state models.SessionState
	// busy latches the session while an assistant turn is in flight,
	// the server-side analogue of a disabled submit button.
	busy bool
}

// NewSessionStore creates an empty session store. The greeting seeds each
// new session's transcript as the assistant's opening message.
func NewSessionStore(greeting string) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*sessionRecord),
		greeting: greeting,
	}
}

// GetOrCreate returns a snapshot of the session state, creating a fresh
// session on first sight of the ID.
func (s *SessionStore) GetOrCreate(sessionID string) models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.record(sessionID))
}

// record returns the live record for sessionID, creating it if needed.
// Callers must hold the write lock.
func (s *SessionStore) record(sessionID string) *sessionRecord {
	rec, ok := s.sessions[sessionID]
	if ok {
		return rec
	}

	now := time.Now()
	rec = &sessionRecord{
		state: models.SessionState{
			SessionID:      sessionID,
			View:           models.ViewHome,
			Language:       models.DefaultLanguage,
			ActiveCategory: "All",
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}
	if s.greeting != "" {
		rec.state.Transcript = []models.ChatMessage{{
			ID:        uuid.NewString(),
			Role:      models.RoleAssistant,
			Text:      s.greeting,
			CreatedAt: now,
		}}
	}
	s.sessions[sessionID] = rec
	return rec
}

func snapshot(rec *sessionRecord) models.SessionState {
	st := rec.state
	st.Cart = append([]models.CartItem(nil), rec.state.Cart...)
	st.Wishlist = append([]string(nil), rec.state.Wishlist...)
	st.Transcript = append([]models.ChatMessage(nil), rec.state.Transcript...)
	return st
}

func (rec *sessionRecord) touch() {
	rec.state.UpdatedAt = time.Now()
}

// SetView moves the session to another screen.
func (s *SessionStore) SetView(sessionID string, view models.ViewMode) models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	rec.state.View = view
	rec.touch()
	return snapshot(rec)
}

// SetLanguage switches the session locale.
func (s *SessionStore) SetLanguage(sessionID string, lang models.Language) models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	rec.state.Language = lang
	rec.touch()
	return snapshot(rec)
}

// SetFilter records the active category and search query. Selecting a
// category from navigation clears the search, like the storefront does.
func (s *SessionStore) SetFilter(sessionID, category, search string) models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	rec.state.ActiveCategory = category
	rec.state.SearchQuery = search
	rec.touch()
	return snapshot(rec)
}

// SetSelectedProduct records the product open in the detail view and moves
// the session there.
func (s *SessionStore) SetSelectedProduct(sessionID, productID string) models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	rec.state.SelectedProductID = productID
	rec.state.View = models.ViewProduct
	rec.touch()
	return snapshot(rec)
}

// ToggleWishlist flips the wishlist membership of productID and reports
// whether it ended up present.
func (s *SessionStore) ToggleWishlist(sessionID, productID string) (bool, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	next := make([]string, 0, len(rec.state.Wishlist)+1)
	removed := false
	for _, id := range rec.state.Wishlist {
		if id == productID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, productID)
	}
	rec.state.Wishlist = next
	rec.touch()
	return !removed, append([]string(nil), next...)
}

// Wishlist returns the wishlisted product IDs.
func (s *SessionStore) Wishlist(sessionID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.record(sessionID).state.Wishlist...)
}
