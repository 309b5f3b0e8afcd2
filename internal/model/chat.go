package model

import (
	"encoding/json"
	"time"
)

// Chat is a conversation owned by exactly one user.
type Chat struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// MessageRole is the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

// ChatMessage is one turn in a chat. Rows are append-only; Content is the
// serialized structured payload (a TutorResponse for assistant turns, a
// plain text wrapper for user turns).
type ChatMessage struct {
	ID        string          `db:"id"`
	ChatID    string          `db:"chat_id"`
	Role      MessageRole     `db:"role"`
	Content   json.RawMessage `db:"content"`
	CreatedAt time.Time       `db:"created_at"`
}

// TextContent returns the human-readable text of the stored payload: the
// "content" field when the payload parses as an object carrying one, the
// raw serialization otherwise.
func (m ChatMessage) TextContent() string {
	var payload struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(m.Content, &payload); err == nil && payload.Content != "" {
		return payload.Content
	}
	return string(m.Content)
}
