package postgre

import (
	"context"
	"database/sql"

	"language-tutor/internal/model"
	repo "language-tutor/internal/tutor/repository"
)

// GetProfile retrieves a single UserProfile.
// Returns zero-value UserProfile (ID == "") when not found.
func (r *implRepository) GetProfile(ctx context.Context, userID string) (model.UserProfile, error) {
	const query = `SELECT id, context, target_language FROM profiles WHERE id = $1 LIMIT 1`

	var profile model.UserProfile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err == sql.ErrNoRows {
		return model.UserProfile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetProfile"), err)
		return model.UserProfile{}, repo.ErrFailedToGet
	}
	return profile, nil
}

// CreateProfile inserts a profile row. Empty Context/TargetLanguage are
// stored as NULL.
func (r *implRepository) CreateProfile(ctx context.Context, opt repo.CreateProfileOptions) (model.UserProfile, error) {
	const query = `
		INSERT INTO profiles (id, context, target_language)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		RETURNING id, context, target_language`

	var profile model.UserProfile
	err := r.db.QueryRowxContext(ctx, query, opt.UserID, opt.Context, opt.TargetLanguage).StructScan(&profile)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProfile"), err)
		return model.UserProfile{}, repo.ErrFailedToInsert
	}
	return profile, nil
}

// UpdateTargetLanguage updates the target language for a profile. Zero rows
// updated means the profile is absent: a zero-value UserProfile is returned
// without error so the caller can fall back to creation.
func (r *implRepository) UpdateTargetLanguage(ctx context.Context, userID, lang string) (model.UserProfile, error) {
	const query = `
		UPDATE profiles
		SET target_language = $1
		WHERE id = $2
		RETURNING id, context, target_language`

	var profile model.UserProfile
	err := r.db.QueryRowxContext(ctx, query, lang, userID).StructScan(&profile)
	if err == sql.ErrNoRows {
		return model.UserProfile{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTargetLanguage"), err)
		return model.UserProfile{}, repo.ErrFailedToUpdate
	}
	return profile, nil
}
