package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"language-tutor/internal/model"
	repo "language-tutor/internal/tutor/repository"
)

type pronunciationRow struct {
	UserID    string    `db:"user_id"`
	Word      string    `db:"word"`
	Analysis  []byte    `db:"analysis"`
	UpdatedAt time.Time `db:"updated_at"`
}

// GetPronunciation retrieves a cached analysis for (userID, word).
// Returns zero-value entry (Word == "") on a miss.
func (r *implRepository) GetPronunciation(ctx context.Context, userID, word string) (model.PronunciationEntry, error) {
	const query = `
		SELECT user_id, word, analysis, updated_at
		FROM pronunciation_cache
		WHERE user_id = $1 AND word = $2
		LIMIT 1`

	var row pronunciationRow
	err := r.db.GetContext(ctx, &row, query, userID, word)
	if err == sql.ErrNoRows {
		return model.PronunciationEntry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetPronunciation"), err)
		return model.PronunciationEntry{}, repo.ErrFailedToGet
	}

	entry := model.PronunciationEntry{
		UserID:    row.UserID,
		Word:      row.Word,
		UpdatedAt: row.UpdatedAt,
	}
	if err := json.Unmarshal(row.Analysis, &entry.Analysis); err != nil {
		// A row we cannot decode is as good as a miss; the caller will
		// regenerate and overwrite it.
		r.l.Warnf(ctx, "%s: corrupt analysis for (%s, %s): %v", r.dsn("GetPronunciation"), userID, word, err)
		return model.PronunciationEntry{}, nil
	}
	return entry, nil
}

// UpsertPronunciation writes an analysis with last-writer-wins semantics.
func (r *implRepository) UpsertPronunciation(ctx context.Context, opt repo.UpsertPronunciationOptions) error {
	const query = `
		INSERT INTO pronunciation_cache (user_id, word, analysis, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, word)
		DO UPDATE SET analysis = EXCLUDED.analysis, updated_at = NOW()`

	payload, err := json.Marshal(opt.Analysis)
	if err != nil {
		r.l.Errorf(ctx, "%s: marshal: %v", r.dsn("UpsertPronunciation"), err)
		return repo.ErrFailedToUpsert
	}

	if _, err := r.db.ExecContext(ctx, query, opt.UserID, opt.Word, payload); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertPronunciation"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}
