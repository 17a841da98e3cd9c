package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/repository/common"
)

// ShowRepository отвечает за афишу выступлений.
type ShowRepository struct {
	db *sqlx.DB
}

var ErrShowNotFound = errors.New("show not found")

// NewShowRepository создаёт новый экземпляр.
func NewShowRepository(db *sqlx.DB) *ShowRepository {
	return &ShowRepository{db: db}
}

// List возвращает афишу, отсортированную по дате от ближайших.
func (r *ShowRepository) List(ctx context.Context) ([]models.Show, error) {
	shows := []models.Show{}
	err := r.db.SelectContext(ctx, &shows, `
		SELECT id, date, city, venue, ticket_status, ticket_url, created_at
		FROM shows
		ORDER BY date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("show repository: list %w", err)
	}
	return shows, nil
}

// GetByID возвращает выступление по идентификатору.
func (r *ShowRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Show, error) {
	return common.GetByID[models.Show](ctx, r.db, "shows", id, ErrShowNotFound)
}

// Create добавляет выступление в афишу.
func (r *ShowRepository) Create(ctx context.Context, show *models.Show) error {
	query := `
		INSERT INTO shows (date, city, venue, ticket_status, ticket_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowxContext(ctx, query,
		show.Date, show.City, show.Venue, show.TicketStatus, show.TicketURL,
	).Scan(&show.ID, &show.CreatedAt)
	if err != nil {
		return fmt.Errorf("show repository: create %w", err)
	}
	return nil
}

// ShowUpdateInput задаёт изменяемые поля выступления. nil значит не трогать поле.
type ShowUpdateInput struct {
	Date         *time.Time
	City         *string
	Venue        *string
	TicketStatus *string
	TicketURL    *string
}

// Update частично обновляет выступление.
func (r *ShowRepository) Update(ctx context.Context, id uuid.UUID, in ShowUpdateInput) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE shows SET
			date = COALESCE($1, date),
			city = COALESCE($2, city),
			venue = COALESCE($3, venue),
			ticket_status = COALESCE($4, ticket_status),
			ticket_url = COALESCE($5, ticket_url)
		WHERE id = $6
	`, in.Date, in.City, in.Venue, in.TicketStatus, in.TicketURL, id)
	if err != nil {
		return fmt.Errorf("show repository: update %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("show repository: update %w", err)
	}
	if affected == 0 {
		return ErrShowNotFound
	}
	return nil
}

// Delete удаляет выступление из афиши.
func (r *ShowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("show repository: delete %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("show repository: delete %w", err)
	}
	if affected == 0 {
		return ErrShowNotFound
	}
	return nil
}
