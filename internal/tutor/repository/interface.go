package repository

import (
	"context"

	"language-tutor/internal/model"
)

// Repository is the composed interface for the tutor domain data store.
type Repository interface {
	ChatRepository
	MessageRepository
	WordPairRepository
	ProfileRepository
	PronunciationRepository
}

// ChatRepository defines data access for Chat rows.
type ChatRepository interface {
	CreateChat(ctx context.Context, opt CreateChatOptions) (model.Chat, error)
	// GetOneChat returns a zero-value Chat (ID == "") when not found.
	GetOneChat(ctx context.Context, opt GetOneChatOptions) (model.Chat, error)
	ListChats(ctx context.Context, userID string) ([]model.Chat, error)
	// TouchChat refreshes the chat's updated_at timestamp.
	TouchChat(ctx context.Context, chatID string) error
}

// MessageRepository defines data access for append-only ChatMessage rows.
type MessageRepository interface {
	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.ChatMessage, error)
	// ListRecentMessages returns up to Limit most recent messages,
	// oldest first within the window.
	ListRecentMessages(ctx context.Context, opt ListRecentMessagesOptions) ([]model.ChatMessage, error)
	ListMessages(ctx context.Context, chatID string) ([]model.ChatMessage, error)
}

// WordPairRepository defines data access for WordPair rows.
type WordPairRepository interface {
	CreateWordPair(ctx context.Context, opt CreateWordPairOptions) (model.WordPair, error)
	// GetOneWordPair returns a zero-value WordPair (ID == "") when not found.
	GetOneWordPair(ctx context.Context, opt GetOneWordPairOptions) (model.WordPair, error)
	ListWordPairs(ctx context.Context, userID string) ([]model.WordPair, error)
	// DeleteWordPair reports the number of rows removed; zero means the
	// pair did not exist for this user.
	DeleteWordPair(ctx context.Context, userID, id string) (int64, error)
}

// ProfileRepository defines data access for UserProfile rows.
type ProfileRepository interface {
	// GetProfile returns a zero-value UserProfile (ID == "") when not found.
	GetProfile(ctx context.Context, userID string) (model.UserProfile, error)
	CreateProfile(ctx context.Context, opt CreateProfileOptions) (model.UserProfile, error)
	// UpdateTargetLanguage returns a zero-value UserProfile when no row
	// was updated (entity absent, not an error).
	UpdateTargetLanguage(ctx context.Context, userID, lang string) (model.UserProfile, error)
}

// PronunciationRepository defines data access for the pronunciation cache.
type PronunciationRepository interface {
	// GetPronunciation returns a zero-value entry (Word == "") on a miss.
	GetPronunciation(ctx context.Context, userID, word string) (model.PronunciationEntry, error)
	// UpsertPronunciation overwrites any existing entry for the key.
	UpsertPronunciation(ctx context.Context, opt UpsertPronunciationOptions) error
}
