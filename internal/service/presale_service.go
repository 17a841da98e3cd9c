package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/pkg/apperror"
	"github.com/standupshop/backend/internal/validation"
)

// PresaleRepositoryIface описывает зависимости сервиса предпродаж.
type PresaleRepositoryIface interface {
	Create(ctx context.Context, req *models.PresaleRequest) error
	List(ctx context.Context) ([]models.PresaleRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

// PresaleService обрабатывает заявки на предпродажные коды.
type PresaleService struct {
	repo PresaleRepositoryIface
}

// NewPresaleService создаёт новый сервис предпродаж.
func NewPresaleService(repo PresaleRepositoryIface) *PresaleService {
	return &PresaleService{repo: repo}
}

// CreatePresaleInput описывает заявку зрителя.
type CreatePresaleInput struct {
	Name        string
	Email       string
	Address     string
	CodesNeeded int
}

// Create сохраняет заявку со статусом pending.
func (s *PresaleService) Create(ctx context.Context, in CreatePresaleInput) (*models.PresaleRequest, error) {
	if err := validation.ValidateRequired("имя", in.Name); err != nil {
		return nil, fmt.Errorf("presale service: %w", err)
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, fmt.Errorf("presale service: %w", err)
	}
	if err := validation.ValidateRequired("адрес", in.Address); err != nil {
		return nil, fmt.Errorf("presale service: %w", err)
	}
	if err := validation.ValidateCodesNeeded(in.CodesNeeded); err != nil {
		return nil, fmt.Errorf("presale service: %w", err)
	}

	req := &models.PresaleRequest{
		Name:        in.Name,
		Email:       in.Email,
		Address:     in.Address,
		CodesNeeded: in.CodesNeeded,
		Status:      models.PresaleStatusPending,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// List возвращает заявки для админки.
func (s *PresaleService) List(ctx context.Context) ([]models.PresaleRequest, error) {
	return s.repo.List(ctx)
}

// UpdateStatus меняет статус заявки.
func (s *PresaleService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.PresaleStatuses[status] {
		return apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("неизвестный статус %q", status))
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
