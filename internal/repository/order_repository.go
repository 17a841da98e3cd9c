package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/repository/common"
)

// OrderRepository отвечает за работу с заказами витрины.
type OrderRepository struct {
	db *sqlx.DB
}

// Ошибки уровня репозитория.
var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderNumberTaken       = errors.New("order number already taken")
	ErrHistoryVersionConflict = common.ErrVersionConflict
)

// NewOrderRepository создаёт новый экземпляр.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

const orderColumns = `
	id, order_number, customer_name, customer_email, shipping_address,
	items, total_amount, payment_method, payment_details,
	status, status_history, admin_comments, history_version,
	created_at, updated_at
`

// Create сохраняет новый заказ и заполняет сгенерированные поля.
// Нарушение уникальности order_number возвращается как ErrOrderNumberTaken,
// чтобы сервис мог перегенерировать номер.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (
			order_number, customer_name, customer_email, shipping_address,
			items, total_amount, payment_method, payment_details, status, status_history
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, history_version, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		order.OrderNumber,
		order.CustomerName,
		order.CustomerEmail,
		order.ShippingAddress,
		order.Items,
		order.TotalAmount,
		order.PaymentMethod,
		order.PaymentDetails,
		order.Status,
		order.StatusHistory,
	).Scan(&order.ID, &order.HistoryVersion, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrOrderNumberTaken
		}
		return fmt.Errorf("order repository: create %w", err)
	}
	return nil
}

// GetByID возвращает заказ по внутреннему идентификатору.
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if err := r.db.GetContext(ctx, &order, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("order repository: get by id %w", err)
	}
	return &order, nil
}

// GetByOrderNumber возвращает заказ по публичному номеру отслеживания.
// order_number уникален на уровне схемы, поэтому ноль строк однозначно
// означает «не найдено».
func (r *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`
	if err := r.db.GetContext(ctx, &order, query, orderNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("order repository: get by order number %w", err)
	}
	return &order, nil
}

// ListFilterParams задаёт фильтры списка заказов для вкладок админки.
type ListFilterParams struct {
	ItemType      string
	PaymentMethod string
}

// List возвращает заказы, отсортированные по created_at по убыванию.
func (r *OrderRepository) List(ctx context.Context, params ListFilterParams) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	var conditions []string
	var args []interface{}

	if params.ItemType != "" {
		args = append(args, fmt.Sprintf(`[{"type": %q}]`, params.ItemType))
		conditions = append(conditions, fmt.Sprintf("items @> $%d", len(args)))
	}
	if params.PaymentMethod != "" {
		args = append(args, params.PaymentMethod)
		conditions = append(conditions, fmt.Sprintf("payment_method = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	orders := []models.Order{}
	if err := r.db.SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("order repository: list %w", err)
	}
	return orders, nil
}

// UpdateStatus выполняет основную запись перехода: статус и updated_at.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3
	`, status, now, id)
	if err != nil {
		return fmt.Errorf("order repository: update status %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order repository: update status %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// UpdateHistory перезаписывает историю статусов под защитой оптимистичной
// блокировки: запись проходит только если history_version не изменился
// с момента чтения. При конфликте возвращает ErrHistoryVersionConflict.
func (r *OrderRepository) UpdateHistory(ctx context.Context, id uuid.UUID, history models.StatusHistory, expectedVersion int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status_history = $1, history_version = history_version + 1
		WHERE id = $2 AND history_version = $3
	`, history, id, expectedVersion)
	if err != nil {
		return fmt.Errorf("order repository: update history %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("order repository: update history %w", err)
	}
	if affected == 0 {
		return ErrHistoryVersionConflict
	}
	return nil
}

// SetAdminComment перезаписывает комментарий админа (last-write-wins).
func (r *OrderRepository) SetAdminComment(ctx context.Context, id uuid.UUID, comment string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders SET admin_comments = $1 WHERE id = $2
	`, comment, id)
	if err != nil {
		return fmt.Errorf("order repository: set admin comment %w", err)
	}
	return nil
}
