package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/standupshop/backend/internal/models"
)

// SettingsRepository отвечает за пары ключ/значение настроек магазина.
type SettingsRepository struct {
	db *sqlx.DB
}

var ErrSettingNotFound = errors.New("setting not found")

// NewSettingsRepository создаёт новый экземпляр.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// List возвращает все настройки.
func (r *SettingsRepository) List(ctx context.Context) ([]models.AdminSetting, error) {
	settings := []models.AdminSetting{}
	err := r.db.SelectContext(ctx, &settings, `
		SELECT key, value, updated_at FROM admin_settings ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("settings repository: list %w", err)
	}
	return settings, nil
}

// Get возвращает значение настройки по ключу.
func (r *SettingsRepository) Get(ctx context.Context, key string) (*models.AdminSetting, error) {
	var setting models.AdminSetting
	err := r.db.GetContext(ctx, &setting, `
		SELECT key, value, updated_at FROM admin_settings WHERE key = $1
	`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("settings repository: get %w", err)
	}
	return &setting, nil
}

// Upsert записывает значение настройки, создавая ключ при необходимости.
func (r *SettingsRepository) Upsert(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admin_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("settings repository: upsert %w", err)
	}
	return nil
}
