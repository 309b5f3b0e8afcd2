package usecase

import (
	"context"

	"language-tutor/internal/model"
	"language-tutor/internal/tutor"
)

// ListWordPairs returns the caller's saved flashcard pairs, newest first.
func (uc implUseCase) ListWordPairs(ctx context.Context, sc model.Scope) ([]model.WordPair, error) {
	pairs, err := uc.repo.ListWordPairs(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.ListWordPairs: %v", err)
		return nil, tutor.ErrStoreUnavailable
	}
	return pairs, nil
}

// DeleteWordPair removes one saved pair. Deleting a pair the caller does
// not own reads as not found.
func (uc implUseCase) DeleteWordPair(ctx context.Context, sc model.Scope, id string) error {
	affected, err := uc.repo.DeleteWordPair(ctx, sc.UserID, id)
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.DeleteWordPair: %v", err)
		return tutor.ErrStoreUnavailable
	}
	if affected == 0 {
		return tutor.ErrWordPairNotFound
	}
	return nil
}
