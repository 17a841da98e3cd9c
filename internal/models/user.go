package models

import (
	"time"

	"github.com/google/uuid"
)

// User представляет администратора бэк-офиса. Других ролей в системе нет:
// достаточно факта аутентификации.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"last_login_at,omitempty"`
}

// AdminSetting описывает пару ключ/значение настроек магазина (btc_wallet, signature_url).
type AdminSetting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
