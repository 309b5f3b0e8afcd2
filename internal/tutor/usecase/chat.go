package usecase

import (
	"context"

	"language-tutor/internal/model"
	"language-tutor/internal/tutor"
	"language-tutor/internal/tutor/repository"
)

// ListChats returns the caller's chats, most recently updated first.
func (uc implUseCase) ListChats(ctx context.Context, sc model.Scope) ([]model.Chat, error) {
	chats, err := uc.repo.ListChats(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.ListChats: %v", err)
		return nil, tutor.ErrStoreUnavailable
	}
	return chats, nil
}

// ListMessages returns one chat's messages oldest first. Ownership is
// checked first so another user's chat id reads as not found.
func (uc implUseCase) ListMessages(ctx context.Context, sc model.Scope, chatID string) ([]model.ChatMessage, error) {
	chat, err := uc.repo.GetOneChat(ctx, repository.GetOneChatOptions{ID: chatID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.ListMessages.GetOneChat: %v", err)
		return nil, tutor.ErrStoreUnavailable
	}
	if chat.ID == "" {
		return nil, tutor.ErrChatNotFound
	}

	messages, err := uc.repo.ListMessages(ctx, chatID)
	if err != nil {
		uc.l.Errorf(ctx, "tutor.usecase.ListMessages: %v", err)
		return nil, tutor.ErrStoreUnavailable
	}
	return messages, nil
}
