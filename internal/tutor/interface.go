package tutor

import (
	"context"

	"language-tutor/internal/model"
)

// UseCase defines the business logic interface for the tutor domain.
type UseCase interface {
	// HandleMessage runs one inbound message through the pipeline:
	// route → specialist → tools → persist.
	HandleMessage(ctx context.Context, sc model.Scope, input HandleMessageInput) (HandleMessageOutput, error)

	// PronunciationTips returns the cached or freshly generated
	// pronunciation analysis for one word.
	PronunciationTips(ctx context.Context, sc model.Scope, word string) (PronunciationOutput, error)

	// RandomPhrase generates a practice phrase from the user's saved words.
	RandomPhrase(ctx context.Context, sc model.Scope, words []string) (PhraseOutput, error)

	// GetProfile returns the user profile, lazily creating it when absent.
	GetProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error)

	// UpdateTargetLanguage sets the user's target language, creating the
	// profile when it does not exist yet.
	UpdateTargetLanguage(ctx context.Context, sc model.Scope, lang string) (model.UserProfile, error)

	// ListChats returns the user's chats, most recently updated first.
	ListChats(ctx context.Context, sc model.Scope) ([]model.Chat, error)

	// ListMessages returns a chat's messages oldest first.
	ListMessages(ctx context.Context, sc model.Scope, chatID string) ([]model.ChatMessage, error)

	// ListWordPairs returns the user's saved flashcard pairs.
	ListWordPairs(ctx context.Context, sc model.Scope) ([]model.WordPair, error)

	// DeleteWordPair removes one of the user's saved pairs.
	DeleteWordPair(ctx context.Context, sc model.Scope, id string) error
}
