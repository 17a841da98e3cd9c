package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/standupshop/backend/internal/models"
)

// ChatRepository отвечает за сообщения чата поддержки.
type ChatRepository struct {
	db *sqlx.DB
}

// NewChatRepository создаёт новый экземпляр.
func NewChatRepository(db *sqlx.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Add сохраняет сообщение чата.
func (r *ChatRepository) Add(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (session_id, sender_name, sender_email, message, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		msg.SessionID, msg.SenderName, msg.SenderEmail, msg.Message, msg.IsAdmin,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("chat repository: add %w", err)
	}
	return nil
}

// ListBySession возвращает сообщения сессии от старых к новым.
func (r *ChatRepository) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	err := r.db.SelectContext(ctx, &messages, `
		SELECT id, session_id, sender_name, sender_email, message, is_admin, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("chat repository: list by session %w", err)
	}
	return messages, nil
}

// ListSessions собирает сводку диалогов для админки: по каждому session_id берётся
// имя и email отправителя, последнее сообщение и счётчик.
func (r *ChatRepository) ListSessions(ctx context.Context) ([]models.ChatSession, error) {
	sessions := []models.ChatSession{}
	err := r.db.SelectContext(ctx, &sessions, `
		SELECT * FROM (
			SELECT DISTINCT ON (session_id)
				session_id,
				FIRST_VALUE(sender_name) OVER w AS sender_name,
				FIRST_VALUE(sender_email) OVER w AS sender_email,
				LAST_VALUE(message) OVER w AS last_message,
				LAST_VALUE(created_at) OVER w AS last_message_at,
				COUNT(*) OVER (PARTITION BY session_id)::int AS message_count
			FROM chat_messages
			WINDOW w AS (
				PARTITION BY session_id ORDER BY created_at
				ROWS BETWEEN UNBOUNDED PRECEDING AND UNBOUNDED FOLLOWING
			)
			ORDER BY session_id
		) s
		ORDER BY last_message_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("chat repository: list sessions %w", err)
	}
	return sessions, nil
}
