package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/standupshop/backend/internal/models"
)

// FanCardRepository отвечает за заявки на клубные карты.
type FanCardRepository struct {
	db *sqlx.DB
}

var ErrFanCardNotFound = errors.New("fan card not found")

// NewFanCardRepository создаёт новый экземпляр.
func NewFanCardRepository(db *sqlx.DB) *FanCardRepository {
	return &FanCardRepository{db: db}
}

// Create сохраняет заявку на карту со статусом pending.
func (r *FanCardRepository) Create(ctx context.Context, card *models.FanCard) error {
	query := `
		INSERT INTO fan_cards (name, address, waybill_address, card_type, photo_url, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		card.Name, card.Address, card.WaybillAddress, card.CardType, card.PhotoURL, card.Status,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
	if err != nil {
		return fmt.Errorf("fan card repository: create %w", err)
	}
	return nil
}

// List возвращает заявки от новых к старым.
func (r *FanCardRepository) List(ctx context.Context) ([]models.FanCard, error) {
	cards := []models.FanCard{}
	err := r.db.SelectContext(ctx, &cards, `
		SELECT id, name, address, waybill_address, card_type, photo_url, status, created_at, updated_at
		FROM fan_cards
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("fan card repository: list %w", err)
	}
	return cards, nil
}

// UpdateStatus меняет статус заявки на карту.
func (r *FanCardRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE fan_cards SET status = $1, updated_at = $2 WHERE id = $3
	`, status, now, id)
	if err != nil {
		return fmt.Errorf("fan card repository: update status %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("fan card repository: update status %w", err)
	}
	if affected == 0 {
		return ErrFanCardNotFound
	}
	return nil
}
