package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"language-tutor/internal/agent"
	"language-tutor/internal/model"
	"language-tutor/internal/tutor/repository"
	pkgLog "language-tutor/pkg/log"
)

// SaveWordPairTool saves a flashcard pair to the user's deck.
type SaveWordPairTool struct {
	repo repository.WordPairRepository
	l    pkgLog.Logger
}

// NewSaveWordPairTool creates a new save_word_pair tool.
func NewSaveWordPairTool(repo repository.WordPairRepository, l pkgLog.Logger) agent.Tool {
	return &SaveWordPairTool{repo: repo, l: l}
}

func (t *SaveWordPairTool) Name() string {
	return agent.ToolSaveWordPair
}

func (t *SaveWordPairTool) Description() string {
	return "Save a word and its translation to the user's personal flashcard deck for future practice. Use after providing a translation the user may want to remember, or when suggesting new vocabulary."
}

func (t *SaveWordPairTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"source_word": map[string]interface{}{
				"type":        "string",
				"description": "The word in the user's native language (e.g., \"thank you\")",
			},
			"translated_word": map[string]interface{}{
				"type":        "string",
				"description": "The translation in the target language (e.g., \"dziękuję\")",
			},
			"context_sentence": map[string]interface{}{
				"type":        "string",
				"description": "An example sentence using the word (optional)",
			},
		},
		"required": []string{"source_word", "translated_word"},
	}
}

// Execute validates the pair, rejects duplicates without inserting, and
// otherwise stores it under the authenticated user.
func (t *SaveWordPairTool) Execute(ctx context.Context, sc model.Scope, args map[string]interface{}) (string, error) {
	sourceWord := stringArg(args, "source_word")
	translatedWord := stringArg(args, "translated_word")
	contextSentence := stringArg(args, "context_sentence")

	if sourceWord == "" || translatedWord == "" {
		return "", fmt.Errorf("%w: source_word and translated_word are required", agent.ErrInvalidToolArguments)
	}

	// (user, source, translated) is the natural key; the check runs here
	// because the store enforces no unique constraint.
	existing, err := t.repo.GetOneWordPair(ctx, repository.GetOneWordPairOptions{
		UserID:         sc.UserID,
		SourceWord:     sourceWord,
		TranslatedWord: translatedWord,
	})
	if err != nil {
		return "", fmt.Errorf("duplicate check failed: %w", err)
	}
	if existing.ID != "" {
		t.l.Infof(ctx, "save_word_pair: duplicate for user=%s pair=%q->%q", sc.UserID, sourceWord, translatedWord)
		return fmt.Sprintf("'%s → %s' is already saved in your flashcard deck.", sourceWord, translatedWord), nil
	}

	if _, err := t.repo.CreateWordPair(ctx, repository.CreateWordPairOptions{
		ID:              uuid.NewString(),
		UserID:          sc.UserID,
		SourceWord:      sourceWord,
		TranslatedWord:  translatedWord,
		ContextSentence: contextSentence,
	}); err != nil {
		return "", fmt.Errorf("failed to save word pair: %w", err)
	}

	confirmation := fmt.Sprintf("Done! I've added '%s → %s' to your flashcard deck.", sourceWord, translatedWord)
	if contextSentence != "" {
		confirmation += fmt.Sprintf(" Example: %s", contextSentence)
	}
	return confirmation, nil
}

// stringArg extracts a trimmed string argument; non-strings count as absent.
func stringArg(args map[string]interface{}, key string) string {
	if val, ok := args[key]; ok {
		if str, ok := val.(string); ok {
			return strings.TrimSpace(str)
		}
	}
	return ""
}
