package postgre

import (
	"context"

	"language-tutor/internal/model"
	repo "language-tutor/internal/tutor/repository"
)

// CreateMessage appends a ChatMessage row. Messages are never mutated once
// written.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (model.ChatMessage, error) {
	const query = `
		INSERT INTO chat_messages (id, chat_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, chat_id, role, content, created_at`

	var msg model.ChatMessage
	err := r.db.QueryRowxContext(ctx, query, opt.ID, opt.ChatID, opt.Role, []byte(opt.Content)).StructScan(&msg)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.ChatMessage{}, repo.ErrFailedToInsert
	}
	return msg, nil
}

// ListRecentMessages returns up to opt.Limit most recent messages for a
// chat, reordered oldest-to-newest for prompt assembly.
func (r *implRepository) ListRecentMessages(ctx context.Context, opt repo.ListRecentMessagesOptions) ([]model.ChatMessage, error) {
	const query = `
		SELECT id, chat_id, role, content, created_at
		FROM chat_messages
		WHERE chat_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var msgs []model.ChatMessage
	if err := r.db.SelectContext(ctx, &msgs, query, opt.ChatID, opt.Limit); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRecentMessages"), err)
		return nil, repo.ErrFailedToList
	}

	// DESC fetch, ASC return.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// ListMessages returns all messages of a chat oldest first.
func (r *implRepository) ListMessages(ctx context.Context, chatID string) ([]model.ChatMessage, error) {
	const query = `
		SELECT id, chat_id, role, content, created_at
		FROM chat_messages
		WHERE chat_id = $1
		ORDER BY created_at ASC`

	var msgs []model.ChatMessage
	if err := r.db.SelectContext(ctx, &msgs, query, chatID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	return msgs, nil
}
