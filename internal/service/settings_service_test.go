package service

import (
	"context"
	"testing"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/repository"
)

type mockSettingsRepository struct {
	values map[string]string
}

func newMockSettingsRepository() *mockSettingsRepository {
	return &mockSettingsRepository{values: make(map[string]string)}
}

func (m *mockSettingsRepository) List(ctx context.Context) ([]models.AdminSetting, error) {
	out := make([]models.AdminSetting, 0, len(m.values))
	for key, value := range m.values {
		out = append(out, models.AdminSetting{Key: key, Value: value})
	}
	return out, nil
}

func (m *mockSettingsRepository) Get(ctx context.Context, key string) (*models.AdminSetting, error) {
	value, ok := m.values[key]
	if !ok {
		return nil, repository.ErrSettingNotFound
	}
	return &models.AdminSetting{Key: key, Value: value}, nil
}

func (m *mockSettingsRepository) Upsert(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func TestSettingsService_Update(t *testing.T) {
	repo := newMockSettingsRepository()
	service := NewSettingsService(repo)
	ctx := context.Background()

	wallet := "bc1qexample"
	if err := service.Update(ctx, SettingsUpdateInput{BTCWallet: &wallet}); err != nil {
		t.Fatalf("update вернул ошибку: %v", err)
	}

	got, err := service.GetBTCWallet(ctx)
	if err != nil {
		t.Fatalf("get вернул ошибку: %v", err)
	}
	if got != wallet {
		t.Fatalf("ожидался кошелёк %s, получили %s", wallet, got)
	}

	// Не переданная настройка не трогается.
	sig := "https://shop.example.com/media/signatures/sig.png"
	if err := service.Update(ctx, SettingsUpdateInput{SignatureURL: &sig}); err != nil {
		t.Fatalf("update вернул ошибку: %v", err)
	}
	if repo.values[SettingBTCWallet] != wallet {
		t.Fatalf("кошелёк не должен меняться при обновлении подписи")
	}

	if err := service.Update(ctx, SettingsUpdateInput{}); err == nil {
		t.Fatalf("пустое обновление должно отклоняться")
	}
}

func TestSettingsService_GetBTCWallet_NotSet(t *testing.T) {
	service := NewSettingsService(newMockSettingsRepository())

	if _, err := service.GetBTCWallet(context.Background()); err == nil {
		t.Fatalf("отсутствующий кошелёк должен возвращать ошибку")
	}
}
