package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"language-tutor/internal/capability"
	"language-tutor/internal/model"
	"language-tutor/internal/tutor"
	"language-tutor/internal/tutor/usecase"
)

func newStoreOnlyUseCase(t *testing.T, repo *memRepo) (tutor.UseCase, func()) {
	t.Helper()
	llm, ts, _ := newCountingLLM(t, "unused")
	uc := usecase.New(&mockLogger{}, llm, capability.NewRegistry(), &mockRouter{}, &mockExecutor{}, repo, usecase.Config{
		HistoryWindow:      20,
		HistoryFormatLimit: 10,
		CacheSize:          8,
		CacheTTL:           time.Minute,
	})
	return uc, ts.Close
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("First Access Lazily Creates The Row", func(t *testing.T) {
		repo := newMemRepo()
		uc, done := newStoreOnlyUseCase(t, repo)
		defer done()

		profile, err := uc.GetProfile(ctx, sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.ID != "u1" {
			t.Errorf("expected a lazily created profile, got %q", profile.ID)
		}
		if profile.TargetLanguage.Valid {
			t.Errorf("a fresh profile has no target language")
		}
	})

	t.Run("Update Creates When Absent", func(t *testing.T) {
		repo := newMemRepo()
		uc, done := newStoreOnlyUseCase(t, repo)
		defer done()

		profile, err := uc.UpdateTargetLanguage(ctx, sc, " Polish ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.TargetLanguage.String != "polish" {
			t.Errorf("expected normalized language, got %q", profile.TargetLanguage.String)
		}
	})

	t.Run("Update Overwrites An Existing Language", func(t *testing.T) {
		repo := newMemRepo()
		uc, done := newStoreOnlyUseCase(t, repo)
		defer done()

		if _, err := uc.UpdateTargetLanguage(ctx, sc, "polish"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		profile, err := uc.UpdateTargetLanguage(ctx, sc, "italian")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile.TargetLanguage.String != "italian" {
			t.Errorf("expected italian, got %q", profile.TargetLanguage.String)
		}
	})

	t.Run("Unsupported Language Is Rejected", func(t *testing.T) {
		repo := newMemRepo()
		uc, done := newStoreOnlyUseCase(t, repo)
		defer done()

		_, err := uc.UpdateTargetLanguage(ctx, sc, "klingon")
		if !errors.Is(err, tutor.ErrInvalidLanguage) {
			t.Fatalf("expected ErrInvalidLanguage, got %v", err)
		}
		if len(repo.profiles) != 0 {
			t.Errorf("invalid input must not create a profile")
		}
	})
}

func TestWordPairs(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Delete Missing Pair Is Not Found", func(t *testing.T) {
		repo := newMemRepo()
		uc, done := newStoreOnlyUseCase(t, repo)
		defer done()

		err := uc.DeleteWordPair(ctx, sc, "nope")
		if !errors.Is(err, tutor.ErrWordPairNotFound) {
			t.Fatalf("expected ErrWordPairNotFound, got %v", err)
		}
	})

	t.Run("Delete Is Scoped To The Owner", func(t *testing.T) {
		repo := newMemRepo()
		repo.pairs = append(repo.pairs, model.WordPair{ID: "wp1", UserID: "someone-else", SourceWord: "hi", TranslatedWord: "cześć"})
		uc, done := newStoreOnlyUseCase(t, repo)
		defer done()

		err := uc.DeleteWordPair(ctx, sc, "wp1")
		if !errors.Is(err, tutor.ErrWordPairNotFound) {
			t.Fatalf("expected ErrWordPairNotFound, got %v", err)
		}
		if len(repo.pairs) != 1 {
			t.Errorf("another user's pair must not be deleted")
		}
	})
}

func TestListMessages(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("Other Users Chat Is Not Found", func(t *testing.T) {
		repo := newMemRepo()
		repo.chats["c1"] = model.Chat{ID: "c1", UserID: "someone-else"}
		uc, done := newStoreOnlyUseCase(t, repo)
		defer done()

		_, err := uc.ListMessages(ctx, sc, "c1")
		if !errors.Is(err, tutor.ErrChatNotFound) {
			t.Fatalf("expected ErrChatNotFound, got %v", err)
		}
	})
}
