package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderAuditLog описывает запись в отдельном append-only журнале действий админов.
// Пишется best-effort при каждой смене статуса заказа.
type OrderAuditLog struct {
	ID         uuid.UUID `db:"id" json:"id"`
	OrderID    uuid.UUID `db:"order_id" json:"order_id"`
	ActorID    uuid.UUID `db:"actor_id" json:"actor_id"`
	ActorEmail string    `db:"actor_email" json:"actor_email"`
	Action     string    `db:"action" json:"action"`
	Comment    *string   `db:"comment" json:"comment,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
