package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/standupshop/backend/internal/models"
)

// PresaleRepository отвечает за заявки на предпродажные коды.
type PresaleRepository struct {
	db *sqlx.DB
}

var ErrPresaleRequestNotFound = errors.New("presale request not found")

// NewPresaleRepository создаёт новый экземпляр.
func NewPresaleRepository(db *sqlx.DB) *PresaleRepository {
	return &PresaleRepository{db: db}
}

// Create сохраняет новую заявку со статусом pending.
func (r *PresaleRepository) Create(ctx context.Context, req *models.PresaleRequest) error {
	query := `
		INSERT INTO presale_requests (name, email, address, codes_needed, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		req.Name, req.Email, req.Address, req.CodesNeeded, req.Status,
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		return fmt.Errorf("presale repository: create %w", err)
	}
	return nil
}

// List возвращает заявки от новых к старым.
func (r *PresaleRepository) List(ctx context.Context) ([]models.PresaleRequest, error) {
	requests := []models.PresaleRequest{}
	err := r.db.SelectContext(ctx, &requests, `
		SELECT id, name, email, address, codes_needed, status, created_at
		FROM presale_requests
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("presale repository: list %w", err)
	}
	return requests, nil
}

// UpdateStatus меняет статус заявки.
func (r *PresaleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE presale_requests SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return fmt.Errorf("presale repository: update status %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("presale repository: update status %w", err)
	}
	if affected == 0 {
		return ErrPresaleRequestNotFound
	}
	return nil
}
