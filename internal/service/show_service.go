package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/pkg/apperror"
	"github.com/standupshop/backend/internal/repository"
)

// ShowRepositoryIface описывает зависимости сервиса афиши.
type ShowRepositoryIface interface {
	List(ctx context.Context) ([]models.Show, error)
	Create(ctx context.Context, show *models.Show) error
	Update(ctx context.Context, id uuid.UUID, in repository.ShowUpdateInput) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ShowService содержит бизнес-логику афиши выступлений.
type ShowService struct {
	repo ShowRepositoryIface
}

// NewShowService создаёт новый сервис афиши.
func NewShowService(repo ShowRepositoryIface) *ShowService {
	return &ShowService{repo: repo}
}

// List возвращает афишу по возрастанию даты.
func (s *ShowService) List(ctx context.Context) ([]models.Show, error) {
	return s.repo.List(ctx)
}

// CreateShowInput описывает новое выступление.
type CreateShowInput struct {
	Date         time.Time
	City         string
	Venue        string
	TicketStatus string
	TicketURL    *string
}

// Create добавляет выступление в афишу.
func (s *ShowService) Create(ctx context.Context, in CreateShowInput) (*models.Show, error) {
	if in.City == "" || in.Venue == "" {
		return nil, fmt.Errorf("show service: город и площадка обязательны")
	}
	if !models.TicketStatuses[in.TicketStatus] {
		return nil, fmt.Errorf("show service: неизвестный статус билетов %q", in.TicketStatus)
	}

	show := &models.Show{
		Date:         in.Date,
		City:         in.City,
		Venue:        in.Venue,
		TicketStatus: in.TicketStatus,
		TicketURL:    in.TicketURL,
	}
	if err := s.repo.Create(ctx, show); err != nil {
		return nil, err
	}
	return show, nil
}

// Update частично обновляет выступление.
func (s *ShowService) Update(ctx context.Context, id uuid.UUID, in repository.ShowUpdateInput) error {
	if in.TicketStatus != nil && !models.TicketStatuses[*in.TicketStatus] {
		return apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("неизвестный статус билетов %q", *in.TicketStatus))
	}
	return s.repo.Update(ctx, id, in)
}

// Delete удаляет выступление из афиши.
func (s *ShowService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
