package router

import (
	"context"
	"encoding/json"
	"fmt"

	"language-tutor/internal/capability"
	"language-tutor/pkg/gemini"
)

const (
	logPrefixClassify = "internal.router.Classify"

	historyNone = "(no prior conversation)"
	contextNone = "(none)"
)

// Classify determines how to handle one user message. A response that does
// not parse into a RoutingDecision is a hard failure for this stage
// (ErrMalformedDecision) — there is deliberately no fallback agent: a
// classification that failed to specify the route must surface as an error,
// not silently pick a specialist.
func (r *IntentRouter) Classify(ctx context.Context, input ClassifyInput) (RoutingDecision, error) {
	tpl, ok := r.registry.Get(capability.Route)
	if !ok {
		return RoutingDecision{}, fmt.Errorf("%s: route capability not registered", logPrefixClassify)
	}

	userContext := input.UserContext
	if userContext == "" {
		userContext = contextNone
	}
	targetLanguage := input.TargetLanguage
	if targetLanguage == "" {
		targetLanguage = "unspecified"
	}
	history := input.FormattedHistory
	if history == "" {
		history = historyNone
	}

	prompt := fmt.Sprintf(tpl.Prompt, userContext, targetLanguage, history, input.Message)

	resp, err := r.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     tpl.Temperature,
			MaxOutputTokens: tpl.MaxTokens,
		},
	})
	if err != nil {
		return RoutingDecision{}, fmt.Errorf("%s: LLM call failed: %w", logPrefixClassify, err)
	}

	text := resp.FirstText()
	if text == "" {
		r.l.Warnf(ctx, "%s: empty LLM response", logPrefixClassify)
		return RoutingDecision{}, ErrMalformedDecision
	}

	var decision RoutingDecision
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(text)), &decision); err != nil {
		r.l.Warnf(ctx, "%s: failed to parse decision: %v", logPrefixClassify, err)
		return RoutingDecision{}, ErrMalformedDecision
	}

	r.l.Infof(ctx, "%s: should_respond=%t agent=%s", logPrefixClassify, decision.ShouldRespond, decision.Agent)
	return decision, nil
}
