package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/repository"
)

type mockPresaleRepository struct {
	requests map[uuid.UUID]*models.PresaleRequest
}

func newMockPresaleRepository() *mockPresaleRepository {
	return &mockPresaleRepository{requests: make(map[uuid.UUID]*models.PresaleRequest)}
}

func (m *mockPresaleRepository) Create(ctx context.Context, req *models.PresaleRequest) error {
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	m.requests[req.ID] = req
	return nil
}

func (m *mockPresaleRepository) List(ctx context.Context) ([]models.PresaleRequest, error) {
	out := make([]models.PresaleRequest, 0, len(m.requests))
	for _, req := range m.requests {
		out = append(out, *req)
	}
	return out, nil
}

func (m *mockPresaleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	req, ok := m.requests[id]
	if !ok {
		return repository.ErrPresaleRequestNotFound
	}
	req.Status = status
	return nil
}

func TestPresaleService_Create(t *testing.T) {
	repo := newMockPresaleRepository()
	service := NewPresaleService(repo)
	ctx := context.Background()

	req, err := service.Create(ctx, CreatePresaleInput{
		Name:        "Олег",
		Email:       "oleg@example.com",
		Address:     "Новосибирск",
		CodesNeeded: 2,
	})
	if err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}
	if req.Status != models.PresaleStatusPending {
		t.Fatalf("новая заявка должна быть pending")
	}

	if _, err := service.Create(ctx, CreatePresaleInput{
		Name:        "Олег",
		Email:       "oleg@example.com",
		Address:     "Новосибирск",
		CodesNeeded: 0,
	}); err == nil {
		t.Fatalf("заявка без кодов должна отклоняться")
	}
}

func TestPresaleService_UpdateStatus(t *testing.T) {
	repo := newMockPresaleRepository()
	service := NewPresaleService(repo)
	ctx := context.Background()

	req, err := service.Create(ctx, CreatePresaleInput{
		Name:        "Олег",
		Email:       "oleg@example.com",
		Address:     "Новосибирск",
		CodesNeeded: 1,
	})
	if err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}

	if err := service.UpdateStatus(ctx, req.ID, models.PresaleStatusFulfilled); err != nil {
		t.Fatalf("update вернул ошибку: %v", err)
	}
	if repo.requests[req.ID].Status != models.PresaleStatusFulfilled {
		t.Fatalf("статус должен смениться")
	}

	if err := service.UpdateStatus(ctx, req.ID, "done"); err == nil {
		t.Fatalf("неизвестный статус должен отклоняться")
	}
}
