package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/pkg/apperror"
	"github.com/standupshop/backend/internal/validation"
)

// FanCardRepositoryIface описывает зависимости сервиса клубных карт.
type FanCardRepositoryIface interface {
	Create(ctx context.Context, card *models.FanCard) error
	List(ctx context.Context) ([]models.FanCard, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, now time.Time) error
}

// FanCardService обрабатывает заявки на клубные карты.
type FanCardService struct {
	repo FanCardRepositoryIface
}

// NewFanCardService создаёт новый сервис клубных карт.
func NewFanCardService(repo FanCardRepositoryIface) *FanCardService {
	return &FanCardService{repo: repo}
}

// CreateFanCardInput описывает заявку на карту.
type CreateFanCardInput struct {
	Name           string
	Address        string
	WaybillAddress *string
	CardType       string
	PhotoURL       *string
}

// Create сохраняет заявку со статусом pending.
func (s *FanCardService) Create(ctx context.Context, in CreateFanCardInput) (*models.FanCard, error) {
	if err := validation.ValidateRequired("имя", in.Name); err != nil {
		return nil, fmt.Errorf("fan card service: %w", err)
	}
	if err := validation.ValidateRequired("адрес", in.Address); err != nil {
		return nil, fmt.Errorf("fan card service: %w", err)
	}
	if !models.CardTypes[in.CardType] {
		return nil, fmt.Errorf("fan card service: неизвестный тип карты %q", in.CardType)
	}

	card := &models.FanCard{
		Name:           in.Name,
		Address:        in.Address,
		WaybillAddress: in.WaybillAddress,
		CardType:       in.CardType,
		PhotoURL:       in.PhotoURL,
		Status:         models.CardStatusPending,
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

// List возвращает заявки для админки.
func (s *FanCardService) List(ctx context.Context) ([]models.FanCard, error) {
	return s.repo.List(ctx)
}

// UpdateStatus меняет статус заявки на карту.
func (s *FanCardService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if !models.CardStatuses[status] {
		return apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("неизвестный статус %q", status))
	}
	return s.repo.UpdateStatus(ctx, id, status, time.Now().UTC())
}
