package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Order описывает один заказ покупателя: мерч, книга, билет или клубная карта.
type Order struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	OrderNumber     string         `db:"order_number" json:"order_number"`
	CustomerName    string         `db:"customer_name" json:"customer_name"`
	CustomerEmail   string         `db:"customer_email" json:"customer_email"`
	ShippingAddress string         `db:"shipping_address" json:"shipping_address"`
	Items           OrderItems     `db:"items" json:"items"`
	TotalAmount     float64        `db:"total_amount" json:"total_amount"`
	PaymentMethod   string         `db:"payment_method" json:"payment_method"`
	PaymentDetails  PaymentDetails `db:"payment_details" json:"payment_details"`
	Status          string         `db:"status" json:"status"`
	StatusHistory   StatusHistory  `db:"status_history" json:"status_history"`
	AdminComments   *string        `db:"admin_comments" json:"admin_comments,omitempty"`
	// HistoryVersion защищает read-modify-write истории от потерянных обновлений.
	HistoryVersion int       `db:"history_version" json:"-"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// OrderItem описывает одну позицию заказа. Витрина всегда кладёт ровно одну позицию.
type OrderItem struct {
	Type     string  `json:"type"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Size     string  `json:"size,omitempty"`
	Format   string  `json:"format,omitempty"`
	CardID   string  `json:"cardId,omitempty"`
	ShowID   string  `json:"showId,omitempty"`
	ShowDate string  `json:"showDate,omitempty"`
	Venue    string  `json:"venue,omitempty"`
}

// StatusEntry описывает одну запись в истории статусов заказа.
type StatusEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Comment   *string   `json:"comment"`
	Actor     string    `json:"actor"`
}

// OrderItems хранится в jsonb колонке.
type OrderItems []OrderItem

func (i OrderItems) Value() (driver.Value, error) {
	if i == nil {
		i = OrderItems{}
	}
	return json.Marshal(i)
}

func (i *OrderItems) Scan(src interface{}) error {
	return scanJSONB(src, i, "items")
}

// StatusHistory хранится в jsonb колонке, только дополняется.
type StatusHistory []StatusEntry

func (h StatusHistory) Value() (driver.Value, error) {
	if h == nil {
		h = StatusHistory{}
	}
	return json.Marshal(h)
}

func (h *StatusHistory) Scan(src interface{}) error {
	return scanJSONB(src, h, "status_history")
}

// PaymentDetails хранит произвольные детали оплаты, зависящие от способа.
// Для crypto: {walletSentTo, confirmedByUser}; для gift_card: {giftCardType, giftCardImage}.
type PaymentDetails map[string]interface{}

func (d PaymentDetails) Value() (driver.Value, error) {
	if d == nil {
		d = PaymentDetails{}
	}
	return json.Marshal(d)
}

func (d *PaymentDetails) Scan(src interface{}) error {
	return scanJSONB(src, d, "payment_details")
}

func scanJSONB(src, dst interface{}, field string) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("models: неожиданный тип %T для jsonb колонки %s", src, field)
	}
}
