package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"language-tutor/internal/capability"
	"language-tutor/internal/model"
	"language-tutor/internal/router"
	"language-tutor/internal/tutor"
	"language-tutor/pkg/gemini"
)

// dispatch maps a routing decision onto a specialist capability. The mapping
// is a closed set: an agent name outside it is a routing defect, answered
// with an error-typed response instead of a guessed specialist.
func (uc implUseCase) dispatch(ctx context.Context, sc model.Scope, decision router.RoutingDecision, profile model.UserProfile, formattedHistory string) tutor.TutorResponse {
	var id capability.ID
	switch decision.Agent {
	case router.AgentTranslation:
		id = capability.Translation
	case router.AgentVocabulary:
		id = capability.Vocabulary
	default:
		uc.l.Errorf(ctx, "tutor.usecase.dispatch: unroutable agent %q", decision.Agent)
		return errorResponse(genericErrorMessage)
	}

	return uc.invokeSpecialist(ctx, id, decision, profile, formattedHistory)
}

// invokeSpecialist runs one structured specialist call. A transport failure
// yields an error-typed response; output that is not a valid TutorResponse
// downgrades to a plain text response carrying the raw model text.
func (uc implUseCase) invokeSpecialist(ctx context.Context, id capability.ID, decision router.RoutingDecision, profile model.UserProfile, formattedHistory string) tutor.TutorResponse {
	tpl, ok := uc.registry.Get(id)
	if !ok {
		uc.l.Errorf(ctx, "tutor.usecase.invokeSpecialist: capability %q not registered", id)
		return errorResponse(genericErrorMessage)
	}

	targetLanguage := profile.TargetLanguage.String
	if targetLanguage == "" {
		targetLanguage = "unspecified"
	}
	userContext := profile.Context.String
	if userContext == "" {
		userContext = "(none)"
	}
	if formattedHistory == "" {
		formattedHistory = "(no prior conversation)"
	}

	prompt := fmt.Sprintf(tpl.Prompt, targetLanguage, userContext, formattedHistory, decision.UserRequest, decision.ContextForAgent)
	prompt += uc.toolCatalog()

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     tpl.Temperature,
			MaxOutputTokens: tpl.MaxTokens,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.invokeSpecialist(%s): LLM call failed: %v", id, err)
		return errorResponse(genericErrorMessage)
	}

	text := resp.FirstText()
	if strings.TrimSpace(text) == "" {
		uc.l.Warnf(ctx, "tutor.usecase.invokeSpecialist(%s): empty LLM response", id)
		return errorResponse(genericErrorMessage)
	}

	var response tutor.TutorResponse
	if err := json.Unmarshal([]byte(gemini.ExtractJSON(text)), &response); err != nil || response.Content == "" {
		// The specialist said something, just not in shape. Keep the text.
		uc.l.Warnf(ctx, "tutor.usecase.invokeSpecialist(%s): unstructured response, downgrading to text", id)
		return tutor.TutorResponse{
			ResponseType: tutor.ResponseText,
			Content:      strings.TrimSpace(text),
		}
	}

	switch response.ResponseType {
	case tutor.ResponseText, tutor.ResponseWordSuggestion, tutor.ResponseSaveConfirmation, tutor.ResponseError:
	default:
		response.ResponseType = tutor.ResponseText
	}

	return response
}

// toolCatalog renders the registered tool declarations as a prompt suffix so
// specialists only request calls that exist.
func (uc implUseCase) toolCatalog() string {
	decls := uc.executor.FunctionDeclarations()
	if len(decls) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nAvailable tools:\n")
	for _, d := range decls {
		fmt.Fprintf(&b, "- %s: %s\n", d.Name, d.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}
