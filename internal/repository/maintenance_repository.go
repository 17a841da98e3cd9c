package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/standupshop/backend/internal/repository/common"
)

// MaintenanceRepository выполняет административную очистку данных витрины.
// Используется только ручкой bulk-wipe; в обычной работе данные не удаляются.
type MaintenanceRepository struct {
	db *sqlx.DB
}

// NewMaintenanceRepository создаёт новый экземпляр.
func NewMaintenanceRepository(db *sqlx.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// wipeTables перечисляет таблицы, очищаемые bulk-wipe. Администраторы и настройки остаются.
var wipeTables = []string{
	"order_audit_logs",
	"orders",
	"fan_cards",
	"presale_requests",
	"chat_messages",
	"shows",
}

// ClearAll очищает данные витрины одной транзакцией.
func (r *MaintenanceRepository) ClearAll(ctx context.Context) error {
	return common.WithTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, table := range wipeTables {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("maintenance repository: clear %s: %w", table, err)
			}
		}
		return nil
	})
}
