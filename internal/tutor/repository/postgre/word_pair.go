package postgre

import (
	"context"
	"database/sql"

	"language-tutor/internal/model"
	repo "language-tutor/internal/tutor/repository"
)

// CreateWordPair inserts a new WordPair row and returns the created entity.
func (r *implRepository) CreateWordPair(ctx context.Context, opt repo.CreateWordPairOptions) (model.WordPair, error) {
	const query = `
		INSERT INTO word_pairs (id, user_id, source_word, translated_word, context_sentence, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NOW())
		RETURNING id, user_id, source_word, translated_word, context_sentence, created_at`

	var pair model.WordPair
	err := r.db.QueryRowxContext(ctx, query,
		opt.ID, opt.UserID, opt.SourceWord, opt.TranslatedWord, opt.ContextSentence,
	).StructScan(&pair)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateWordPair"), err)
		return model.WordPair{}, repo.ErrFailedToInsert
	}
	return pair, nil
}

// GetOneWordPair retrieves a single WordPair by the natural key filters.
// Returns zero-value WordPair (ID == "") when not found.
func (r *implRepository) GetOneWordPair(ctx context.Context, opt repo.GetOneWordPairOptions) (model.WordPair, error) {
	const query = `
		SELECT id, user_id, source_word, translated_word, context_sentence, created_at
		FROM word_pairs
		WHERE user_id = $1 AND source_word = $2 AND translated_word = $3
		LIMIT 1`

	var pair model.WordPair
	err := r.db.GetContext(ctx, &pair, query, opt.UserID, opt.SourceWord, opt.TranslatedWord)
	if err == sql.ErrNoRows {
		return model.WordPair{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneWordPair"), err)
		return model.WordPair{}, repo.ErrFailedToGet
	}
	return pair, nil
}

// ListWordPairs returns the user's saved pairs, newest first.
func (r *implRepository) ListWordPairs(ctx context.Context, userID string) ([]model.WordPair, error) {
	const query = `
		SELECT id, user_id, source_word, translated_word, context_sentence, created_at
		FROM word_pairs
		WHERE user_id = $1
		ORDER BY created_at DESC`

	var pairs []model.WordPair
	if err := r.db.SelectContext(ctx, &pairs, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListWordPairs"), err)
		return nil, repo.ErrFailedToList
	}
	return pairs, nil
}

// DeleteWordPair removes one pair scoped to its owner and reports how many
// rows were removed.
func (r *implRepository) DeleteWordPair(ctx context.Context, userID, id string) (int64, error) {
	const query = `DELETE FROM word_pairs WHERE user_id = $1 AND id = $2`

	res, err := r.db.ExecContext(ctx, query, userID, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteWordPair"), err)
		return 0, repo.ErrFailedToDelete
	}
	affected, _ := res.RowsAffected()
	return affected, nil
}
