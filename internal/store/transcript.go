package store

import (
	"time"

	"github.com/google/uuid"

	"modernliving-backend/internal/models"
)

// AppendMessage appends one chat message to the session transcript and
// returns it with its assigned ID and timestamp.
func (s *SessionStore) AppendMessage(sessionID, role, text string) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	}
	rec.state.Transcript = append(append([]models.ChatMessage(nil), rec.state.Transcript...), msg)
	rec.touch()
	return msg
}

// Transcript returns a snapshot of the session's chat history.
func (s *SessionStore) Transcript(sessionID string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ChatMessage(nil), s.record(sessionID).state.Transcript...)
}

// BeginAssistantTurn latches the session for one assistant turn. It reports
// false when a turn is already in flight; the caller must reject the new
// message instead of queueing it.
func (s *SessionStore) BeginAssistantTurn(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.record(sessionID)
	if rec.busy {
		return false
	}
	rec.busy = true
	return true
}

// EndAssistantTurn releases the latch. Called unconditionally when a turn
// resolves, whether it succeeded or failed.
func (s *SessionStore) EndAssistantTurn(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.sessions[sessionID]; ok {
		rec.busy = false
	}
}
