package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"language-tutor/internal/capability"
	"language-tutor/internal/model"
	"language-tutor/internal/tutor"
	"language-tutor/pkg/gemini"
)

// RandomPhrase builds one practice phrase from the given saved words.
func (uc implUseCase) RandomPhrase(ctx context.Context, sc model.Scope, words []string) (tutor.PhraseOutput, error) {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			cleaned = append(cleaned, w)
		}
	}
	if len(cleaned) == 0 {
		return tutor.PhraseOutput{}, tutor.ErrEmptyWords
	}

	tpl, ok := uc.registry.Get(capability.RandomPhrase)
	if !ok {
		return tutor.PhraseOutput{}, fmt.Errorf("tutor.usecase.RandomPhrase: capability not registered")
	}

	profile := uc.profileForTurn(ctx, sc)
	targetLanguage := profile.TargetLanguage.String
	if targetLanguage == "" {
		targetLanguage = "unspecified"
	}
	userContext := profile.Context.String
	if userContext == "" {
		userContext = "(none)"
	}

	wordList, err := json.Marshal(cleaned)
	if err != nil {
		return tutor.PhraseOutput{}, err
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: fmt.Sprintf(tpl.Prompt, targetLanguage, userContext, string(wordList))}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     tpl.Temperature,
			MaxOutputTokens: tpl.MaxTokens,
		},
	})
	if err != nil {
		return tutor.PhraseOutput{}, fmt.Errorf("tutor.usecase.RandomPhrase: LLM call failed: %w", err)
	}

	text := resp.FirstText()
	if strings.TrimSpace(text) == "" {
		return tutor.PhraseOutput{}, tutor.ErrMalformedPhrase
	}

	var out tutor.PhraseOutput
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(text)), &out); err != nil || out.Phrase == "" {
		uc.l.Warnf(ctx, "tutor.usecase.RandomPhrase: unparseable phrase output")
		return tutor.PhraseOutput{}, tutor.ErrMalformedPhrase
	}

	out.TargetLanguage = targetLanguage
	if len(out.WordsUsed) == 0 {
		out.WordsUsed = cleaned
	}

	return out, nil
}
