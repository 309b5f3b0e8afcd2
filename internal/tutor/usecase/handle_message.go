package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"language-tutor/internal/model"
	"language-tutor/internal/router"
	"language-tutor/internal/tutor"
	"language-tutor/internal/tutor/repository"
)

// userMessagePayload is the persisted shape of the user's side of a turn.
type userMessagePayload struct {
	Content string `json:"content"`
}

// HandleMessage runs one tutoring turn: load context, classify intent,
// dispatch to the routed specialist, run its tool calls, persist both sides
// of the turn. Classification and specialist failures degrade into an
// error-typed response that is still persisted; only the assistant write
// itself is allowed to fail the request.
func (uc implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input tutor.HandleMessageInput) (tutor.HandleMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return tutor.HandleMessageOutput{}, tutor.ErrEmptyMessage
	}

	chatID := strings.TrimSpace(input.ChatID)
	var history []model.ChatMessage
	if chatID != "" {
		chat, err := uc.repo.GetOneChat(ctx, repository.GetOneChatOptions{ID: chatID, UserID: sc.UserID})
		if err != nil {
			uc.l.Errorf(ctx, "tutor.usecase.HandleMessage.GetOneChat: %v", err)
			return tutor.HandleMessageOutput{}, tutor.ErrStoreUnavailable
		}
		if chat.ID == "" {
			return tutor.HandleMessageOutput{}, tutor.ErrChatNotFound
		}

		history, err = uc.repo.ListRecentMessages(ctx, repository.ListRecentMessagesOptions{
			ChatID: chatID,
			Limit:  uc.cfg.HistoryWindow,
		})
		if err != nil {
			// The turn can proceed without history.
			uc.l.Warnf(ctx, "tutor.usecase.HandleMessage.ListRecentMessages: %v", err)
			history = nil
		}
	}

	profile := uc.profileForTurn(ctx, sc)
	formattedHistory := uc.formatHistory(history)

	response := uc.respond(ctx, sc, message, profile, formattedHistory)

	toolResults := uc.runToolCalls(ctx, sc, response.ToolCalls)

	if chatID == "" {
		chat, err := uc.repo.CreateChat(ctx, repository.CreateChatOptions{
			ID:     uuid.NewString(),
			UserID: sc.UserID,
			Title:  chatTitle(message),
		})
		if err != nil {
			uc.l.Errorf(ctx, "tutor.usecase.HandleMessage.CreateChat: %v", err)
			return tutor.HandleMessageOutput{}, tutor.ErrStoreUnavailable
		}
		chatID = chat.ID
	}

	userContent, err := json.Marshal(userMessagePayload{Content: message})
	if err != nil {
		return tutor.HandleMessageOutput{}, err
	}
	if _, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		ID:      uuid.NewString(),
		ChatID:  chatID,
		Role:    model.RoleUser,
		Content: userContent,
	}); err != nil {
		// Tolerated: the assistant write below is the one that must land.
		uc.l.Errorf(ctx, "tutor.usecase.HandleMessage.CreateMessage(user): %v", err)
	}

	assistantContent, err := json.Marshal(response)
	if err != nil {
		return tutor.HandleMessageOutput{}, err
	}
	assistantMsg, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		ID:      uuid.NewString(),
		ChatID:  chatID,
		Role:    model.RoleAssistant,
		Content: assistantContent,
	})
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.HandleMessage.CreateMessage(assistant): %v", err)
		return tutor.HandleMessageOutput{}, tutor.ErrStoreUnavailable
	}

	if err := uc.repo.TouchChat(ctx, chatID); err != nil {
		uc.l.Warnf(ctx, "tutor.usecase.HandleMessage.TouchChat: %v", err)
	}

	return tutor.HandleMessageOutput{
		ChatID:      chatID,
		Message:     assistantMsg,
		Response:    response,
		ToolResults: toolResults,
	}, nil
}

// respond classifies the message and produces the structured response for
// this turn. Every path yields a response to persist; failures map to
// error-typed payloads rather than aborting the turn.
func (uc implUseCase) respond(ctx context.Context, sc model.Scope, message string, profile model.UserProfile, formattedHistory string) tutor.TutorResponse {
	decision, err := uc.router.Classify(ctx, router.ClassifyInput{
		Message:          message,
		TargetLanguage:   profile.TargetLanguage.String,
		UserContext:      profile.Context.String,
		FormattedHistory: formattedHistory,
	})
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.HandleMessage.Classify: %v", err)
		return errorResponse(genericErrorMessage)
	}

	if !decision.ShouldRespond {
		reason := strings.TrimSpace(decision.RejectionReason)
		if reason == "" {
			reason = genericRejectionMessage
		}
		return errorResponse(reason)
	}

	return uc.dispatch(ctx, sc, decision, profile, formattedHistory)
}

// runToolCalls executes specialist tool calls in order. A failing call is
// logged and skipped; it never voids the turn, and confirmations are never
// folded back into the persisted response.
func (uc implUseCase) runToolCalls(ctx context.Context, sc model.Scope, calls []tutor.ToolCall) []string {
	if len(calls) == 0 {
		return nil
	}

	results := make([]string, 0, len(calls))
	for _, call := range calls {
		result, err := uc.executor.Execute(ctx, sc, call.Name, call.Arguments)
		if err != nil {
			uc.l.Errorf(ctx, "tutor.usecase.HandleMessage.Execute(%s): %v", call.Name, err)
			continue
		}
		results = append(results, result)
	}

	return results
}

func errorResponse(content string) tutor.TutorResponse {
	return tutor.TutorResponse{
		ResponseType: tutor.ResponseError,
		Content:      content,
	}
}
