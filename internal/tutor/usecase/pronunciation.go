package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"language-tutor/internal/capability"
	"language-tutor/internal/model"
	"language-tutor/internal/tutor"
	"language-tutor/internal/tutor/repository"
	"language-tutor/pkg/gemini"
)

// normalizeWord maps user input onto the cache key space. "Dzień" and
// " dzień " are the same word.
func normalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// PronunciationTips returns the pronunciation analysis for one word,
// read-through cached: in-process LRU first, then the store, then one
// generation followed by a write-through. Cache write failures are logged
// only; the caller still gets the analysis.
func (uc implUseCase) PronunciationTips(ctx context.Context, sc model.Scope, word string) (tutor.PronunciationOutput, error) {
	key := normalizeWord(word)
	if key == "" {
		return tutor.PronunciationOutput{}, tutor.ErrEmptyWord
	}

	lruKey := sc.UserID + "|" + key
	if analysis, ok := uc.pronunciationCache.Get(lruKey); ok {
		return tutor.PronunciationOutput{Analysis: analysis, Cached: true}, nil
	}

	entry, err := uc.repo.GetPronunciation(ctx, sc.UserID, key)
	if err != nil {
		// A broken cache read degrades to generation.
		uc.l.Warnf(ctx, "tutor.usecase.PronunciationTips.GetPronunciation: %v", err)
	} else if entry.Word != "" {
		uc.pronunciationCache.Add(lruKey, entry.Analysis)
		return tutor.PronunciationOutput{Analysis: entry.Analysis, Cached: true}, nil
	}

	analysis, err := uc.generatePronunciation(ctx, sc, key)
	if err != nil {
		return tutor.PronunciationOutput{}, err
	}

	uc.pronunciationCache.Add(lruKey, analysis)
	if err := uc.repo.UpsertPronunciation(ctx, repository.UpsertPronunciationOptions{
		UserID:   sc.UserID,
		Word:     key,
		Analysis: analysis,
	}); err != nil {
		uc.l.Warnf(ctx, "tutor.usecase.PronunciationTips.UpsertPronunciation: %v", err)
	}

	return tutor.PronunciationOutput{Analysis: analysis, Cached: false}, nil
}

func (uc implUseCase) generatePronunciation(ctx context.Context, sc model.Scope, word string) (model.PronunciationAnalysis, error) {
	tpl, ok := uc.registry.Get(capability.Pronunciation)
	if !ok {
		return model.PronunciationAnalysis{}, fmt.Errorf("tutor.usecase.generatePronunciation: capability not registered")
	}

	targetLanguage := uc.profileForTurn(ctx, sc).TargetLanguage.String
	if targetLanguage == "" {
		targetLanguage = "unspecified"
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: fmt.Sprintf(tpl.Prompt, targetLanguage, word)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     tpl.Temperature,
			MaxOutputTokens: tpl.MaxTokens,
		},
	})
	if err != nil {
		return model.PronunciationAnalysis{}, fmt.Errorf("tutor.usecase.generatePronunciation: LLM call failed: %w", err)
	}

	text := resp.FirstText()
	if strings.TrimSpace(text) == "" {
		return model.PronunciationAnalysis{}, tutor.ErrMalformedAnalysis
	}

	var analysis model.PronunciationAnalysis
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(text)), &analysis); err != nil || analysis.Word == "" {
		uc.l.Warnf(ctx, "tutor.usecase.generatePronunciation: unparseable analysis for %q", word)
		return model.PronunciationAnalysis{}, tutor.ErrMalformedAnalysis
	}

	return analysis, nil
}
