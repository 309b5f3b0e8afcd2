package repository

import (
	"encoding/json"

	"language-tutor/internal/model"
)

// CreateChatOptions holds parameters for inserting a new Chat.
type CreateChatOptions struct {
	ID     string
	UserID string
	Title  string
}

// GetOneChatOptions holds filter parameters for fetching a single Chat.
// All non-empty fields are applied as AND conditions.
type GetOneChatOptions struct {
	ID     string
	UserID string
}

// CreateMessageOptions holds parameters for appending a ChatMessage.
type CreateMessageOptions struct {
	ID      string
	ChatID  string
	Role    model.MessageRole
	Content json.RawMessage
}

// ListRecentMessagesOptions bounds the history window for one chat.
type ListRecentMessagesOptions struct {
	ChatID string
	Limit  int
}

// CreateWordPairOptions holds parameters for inserting a WordPair.
type CreateWordPairOptions struct {
	ID              string
	UserID          string
	SourceWord      string
	TranslatedWord  string
	ContextSentence string
}

// GetOneWordPairOptions filters WordPair rows; non-empty fields are ANDed.
type GetOneWordPairOptions struct {
	UserID         string
	SourceWord     string
	TranslatedWord string
}

// CreateProfileOptions holds parameters for lazily creating a profile.
// Context and TargetLanguage may be empty (stored as NULL).
type CreateProfileOptions struct {
	UserID         string
	Context        string
	TargetLanguage string
}

// UpsertPronunciationOptions holds the cache key and serialized analysis.
type UpsertPronunciationOptions struct {
	UserID   string
	Word     string
	Analysis model.PronunciationAnalysis
}
