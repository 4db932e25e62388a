package models

import "time"

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry in the assistant transcript. The transcript is
// append-only for the lifetime of the session.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest carries one user turn for the assistant
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse carries the messages appended during one assistant turn
// (the user message plus one reply per tool call, or a single text reply).
type ChatResponse struct {
	Messages  []ChatMessage `json:"messages"`
	CartCount int           `json:"cart_count"`
}

// TranscriptResponse returns the whole conversation so far
type TranscriptResponse struct {
	Messages []ChatMessage `json:"messages"`
	Total    int           `json:"total"`
}
