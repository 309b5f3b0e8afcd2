package usecase

import (
	"context"
	"strings"

	"language-tutor/internal/model"
	"language-tutor/internal/tutor"
	"language-tutor/internal/tutor/repository"
)

// profileForTurn loads the caller's profile for the pipeline, lazily
// creating the row on first contact. Failures degrade to an empty profile:
// personalization is never worth failing a turn over.
func (uc implUseCase) profileForTurn(ctx context.Context, sc model.Scope) model.UserProfile {
	profile, err := uc.repo.GetProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "tutor.usecase.profileForTurn: %v", err)
		return model.UserProfile{}
	}
	if profile.ID != "" {
		return profile
	}

	profile, err = uc.repo.CreateProfile(ctx, repository.CreateProfileOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Warnf(ctx, "tutor.usecase.profileForTurn.CreateProfile: %v", err)
		return model.UserProfile{}
	}
	return profile
}

// GetProfile returns the caller's profile, lazily creating an empty row on
// first access.
func (uc implUseCase) GetProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error) {
	profile, err := uc.repo.GetProfile(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.GetProfile: %v", err)
		return model.UserProfile{}, tutor.ErrStoreUnavailable
	}
	if profile.ID != "" {
		return profile, nil
	}

	profile, err = uc.repo.CreateProfile(ctx, repository.CreateProfileOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.GetProfile.CreateProfile: %v", err)
		return model.UserProfile{}, tutor.ErrStoreUnavailable
	}
	return profile, nil
}

// UpdateTargetLanguage sets the language the caller is learning, creating
// the profile row when it does not exist yet. A concurrent first access can
// insert the row between the update and the insert here; the retry makes
// the operation converge instead of failing.
func (uc implUseCase) UpdateTargetLanguage(ctx context.Context, sc model.Scope, lang string) (model.UserProfile, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if !model.ValidTargetLanguage(lang) {
		return model.UserProfile{}, tutor.ErrInvalidLanguage
	}

	profile, err := uc.repo.UpdateTargetLanguage(ctx, sc.UserID, lang)
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.UpdateTargetLanguage: %v", err)
		return model.UserProfile{}, tutor.ErrStoreUnavailable
	}
	if profile.ID != "" {
		return profile, nil
	}

	profile, err = uc.repo.CreateProfile(ctx, repository.CreateProfileOptions{
		UserID:         sc.UserID,
		TargetLanguage: lang,
	})
	if err == nil {
		return profile, nil
	}
	uc.l.Warnf(ctx, "tutor.usecase.UpdateTargetLanguage.CreateProfile: %v", err)

	profile, err = uc.repo.UpdateTargetLanguage(ctx, sc.UserID, lang)
	if err != nil || profile.ID == "" {
		uc.l.Errorf(ctx, "tutor.usecase.UpdateTargetLanguage(retry): %v", err)
		return model.UserProfile{}, tutor.ErrStoreUnavailable
	}
	return profile, nil
}
