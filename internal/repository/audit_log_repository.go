package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/standupshop/backend/internal/models"
)

// AuditLogRepository пишет записи в отдельный журнал действий админов.
type AuditLogRepository struct {
	db *sqlx.DB
}

// NewAuditLogRepository создаёт новый экземпляр.
func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Add добавляет запись в журнал. Журнал только дополняется.
func (r *AuditLogRepository) Add(ctx context.Context, orderID, actorID uuid.UUID, actorEmail, action string, comment *string, createdAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_audit_logs (order_id, actor_id, actor_email, action, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, orderID, actorID, actorEmail, action, comment, createdAt)
	if err != nil {
		return fmt.Errorf("audit log repository: add %w", err)
	}
	return nil
}

// ListByOrder возвращает журнал действий по заказу (от старых к новым).
func (r *AuditLogRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]models.OrderAuditLog, error) {
	logs := []models.OrderAuditLog{}
	err := r.db.SelectContext(ctx, &logs, `
		SELECT id, order_id, actor_id, actor_email, action, comment, created_at
		FROM order_audit_logs
		WHERE order_id = $1
		ORDER BY created_at ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("audit log repository: list by order %w", err)
	}
	return logs, nil
}
