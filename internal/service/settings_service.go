package service

import (
	"context"
	"fmt"

	"github.com/standupshop/backend/internal/models"
)

// Ключи настроек магазина.
const (
	SettingBTCWallet    = "btc_wallet"
	SettingSignatureURL = "signature_url"
)

// SettingsRepositoryIface описывает зависимости сервиса настроек.
type SettingsRepositoryIface interface {
	List(ctx context.Context) ([]models.AdminSetting, error)
	Get(ctx context.Context, key string) (*models.AdminSetting, error)
	Upsert(ctx context.Context, key, value string) error
}

// SettingsService управляет настройками магазина.
type SettingsService struct {
	repo SettingsRepositoryIface
}

// NewSettingsService создаёт новый сервис настроек.
func NewSettingsService(repo SettingsRepositoryIface) *SettingsService {
	return &SettingsService{repo: repo}
}

// List возвращает все настройки.
func (s *SettingsService) List(ctx context.Context) ([]models.AdminSetting, error) {
	return s.repo.List(ctx)
}

// GetBTCWallet возвращает адрес кошелька для crypto-оплаты.
// Публичный: checkout показывает его покупателю.
func (s *SettingsService) GetBTCWallet(ctx context.Context) (string, error) {
	setting, err := s.repo.Get(ctx, SettingBTCWallet)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// UpdateInput задаёт изменяемые настройки. nil значит не трогать настройку.
type SettingsUpdateInput struct {
	BTCWallet    *string
	SignatureURL *string
}

// Update записывает переданные настройки.
func (s *SettingsService) Update(ctx context.Context, in SettingsUpdateInput) error {
	if in.BTCWallet == nil && in.SignatureURL == nil {
		return fmt.Errorf("settings service: нет изменений")
	}

	if in.BTCWallet != nil && *in.BTCWallet != "" {
		if err := s.repo.Upsert(ctx, SettingBTCWallet, *in.BTCWallet); err != nil {
			return err
		}
	}
	if in.SignatureURL != nil && *in.SignatureURL != "" {
		if err := s.repo.Upsert(ctx, SettingSignatureURL, *in.SignatureURL); err != nil {
			return err
		}
	}
	return nil
}
