package models

import (
	"time"

	"github.com/google/uuid"
)

// FanCard описывает заявку на именную клубную карту (silver/gold/platinum).
// Фото заявителя лежит в файловом хранилище, здесь только публичный URL.
type FanCard struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Address        string    `db:"address" json:"address"`
	WaybillAddress *string   `db:"waybill_address" json:"waybill_address,omitempty"`
	CardType       string    `db:"card_type" json:"card_type"`
	PhotoURL       *string   `db:"photo_url" json:"photo_url,omitempty"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
