package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"language-tutor/internal/model"
	repo "language-tutor/internal/tutor/repository"
)

// CreateChat inserts a new Chat row and returns the created entity.
func (r *implRepository) CreateChat(ctx context.Context, opt repo.CreateChatOptions) (model.Chat, error) {
	const query = `
		INSERT INTO chats (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, user_id, title, created_at, updated_at`

	var chat model.Chat
	err := r.db.QueryRowxContext(ctx, query, opt.ID, opt.UserID, opt.Title).StructScan(&chat)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateChat"), err)
		return model.Chat{}, repo.ErrFailedToInsert
	}
	return chat, nil
}

// GetOneChat retrieves a single Chat by the provided filters (AND condition).
// Returns zero-value Chat (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneChat(ctx context.Context, opt repo.GetOneChatOptions) (model.Chat, error) {
	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if opt.ID != "" {
		args = append(args, opt.ID)
		conds = append(conds, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}

	query := fmt.Sprintf(
		`SELECT id, user_id, title, created_at, updated_at FROM chats WHERE %s LIMIT 1`,
		strings.Join(conds, " AND "),
	)

	var chat model.Chat
	err := r.db.GetContext(ctx, &chat, query, args...)
	if err == sql.ErrNoRows {
		return model.Chat{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneChat"), err)
		return model.Chat{}, repo.ErrFailedToGet
	}
	return chat, nil
}

// ListChats returns the user's chats, most recently updated first.
func (r *implRepository) ListChats(ctx context.Context, userID string) ([]model.Chat, error) {
	const query = `
		SELECT id, user_id, title, created_at, updated_at
		FROM chats
		WHERE user_id = $1
		ORDER BY updated_at DESC`

	var chats []model.Chat
	if err := r.db.SelectContext(ctx, &chats, query, userID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListChats"), err)
		return nil, repo.ErrFailedToList
	}
	return chats, nil
}

// TouchChat refreshes updated_at for a chat.
func (r *implRepository) TouchChat(ctx context.Context, chatID string) error {
	const query = `UPDATE chats SET updated_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, chatID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TouchChat"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
