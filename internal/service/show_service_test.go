package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/repository"
)

type mockShowRepository struct {
	shows map[uuid.UUID]*models.Show
}

func newMockShowRepository() *mockShowRepository {
	return &mockShowRepository{shows: make(map[uuid.UUID]*models.Show)}
}

func (m *mockShowRepository) List(ctx context.Context) ([]models.Show, error) {
	out := make([]models.Show, 0, len(m.shows))
	for _, show := range m.shows {
		out = append(out, *show)
	}
	return out, nil
}

func (m *mockShowRepository) Create(ctx context.Context, show *models.Show) error {
	show.ID = uuid.New()
	show.CreatedAt = time.Now()
	m.shows[show.ID] = show
	return nil
}

func (m *mockShowRepository) Update(ctx context.Context, id uuid.UUID, in repository.ShowUpdateInput) error {
	show, ok := m.shows[id]
	if !ok {
		return repository.ErrShowNotFound
	}
	if in.City != nil {
		show.City = *in.City
	}
	if in.Venue != nil {
		show.Venue = *in.Venue
	}
	if in.TicketStatus != nil {
		show.TicketStatus = *in.TicketStatus
	}
	return nil
}

func (m *mockShowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.shows[id]; !ok {
		return repository.ErrShowNotFound
	}
	delete(m.shows, id)
	return nil
}

func TestShowService_Create(t *testing.T) {
	repo := newMockShowRepository()
	service := NewShowService(repo)

	show, err := service.Create(context.Background(), CreateShowInput{
		Date:         time.Now().Add(30 * 24 * time.Hour),
		City:         "Екатеринбург",
		Venue:        "Дом печати",
		TicketStatus: models.TicketStatusAvailable,
	})
	if err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}
	if show.ID == uuid.Nil {
		t.Fatalf("выступление должно получить идентификатор")
	}

	if _, err := service.Create(context.Background(), CreateShowInput{
		City:         "",
		Venue:        "клуб",
		TicketStatus: models.TicketStatusAvailable,
	}); err == nil {
		t.Fatalf("выступление без города должно отклоняться")
	}

	if _, err := service.Create(context.Background(), CreateShowInput{
		City:         "Казань",
		Venue:        "клуб",
		TicketStatus: "almost_gone",
	}); err == nil {
		t.Fatalf("неизвестный статус билетов должен отклоняться")
	}
}

func TestShowService_UpdateAndDelete(t *testing.T) {
	repo := newMockShowRepository()
	service := NewShowService(repo)
	ctx := context.Background()

	show, err := service.Create(ctx, CreateShowInput{
		Date:         time.Now(),
		City:         "Казань",
		Venue:        "клуб",
		TicketStatus: models.TicketStatusAvailable,
	})
	if err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}

	soldOut := models.TicketStatusSoldOut
	if err := service.Update(ctx, show.ID, repository.ShowUpdateInput{TicketStatus: &soldOut}); err != nil {
		t.Fatalf("update вернул ошибку: %v", err)
	}
	if repo.shows[show.ID].TicketStatus != models.TicketStatusSoldOut {
		t.Fatalf("статус билетов должен обновиться")
	}

	bad := "almost_gone"
	if err := service.Update(ctx, show.ID, repository.ShowUpdateInput{TicketStatus: &bad}); err == nil {
		t.Fatalf("неизвестный статус билетов должен отклоняться")
	}

	if err := service.Delete(ctx, show.ID); err != nil {
		t.Fatalf("delete вернул ошибку: %v", err)
	}
	if err := service.Delete(ctx, show.ID); err == nil {
		t.Fatalf("повторное удаление должно вернуть ошибку")
	}
}
