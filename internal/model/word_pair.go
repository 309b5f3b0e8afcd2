package model

import (
	"database/sql"
	"time"
)

// WordPair is a saved flashcard pair. (UserID, SourceWord, TranslatedWord)
// is treated as a natural key: duplicates are rejected at the application
// level before insert.
type WordPair struct {
	ID              string         `db:"id"`
	UserID          string         `db:"user_id"`
	SourceWord      string         `db:"source_word"`
	TranslatedWord  string         `db:"translated_word"`
	ContextSentence sql.NullString `db:"context_sentence"`
	CreatedAt       time.Time      `db:"created_at"`
}
