package models

import (
	"time"

	"github.com/google/uuid"
)

// Show описывает выступление в афише.
type Show struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Date         time.Time `db:"date" json:"date"`
	City         string    `db:"city" json:"city"`
	Venue        string    `db:"venue" json:"venue"`
	TicketStatus string    `db:"ticket_status" json:"ticket_status"`
	TicketURL    *string   `db:"ticket_url" json:"ticket_url,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// PresaleRequest описывает заявку зрителя на предпродажные коды в свой город.
type PresaleRequest struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Address     string    `db:"address" json:"address"`
	CodesNeeded int       `db:"codes_needed" json:"codes_needed"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
