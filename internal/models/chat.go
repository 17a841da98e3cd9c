package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage описывает одно сообщение в чате поддержки.
// Сессия определяется клиентским session_id, отдельной таблицы сессий нет:
// список диалогов в админке выводится из последних сообщений по session_id.
type ChatMessage struct {
	ID          uuid.UUID `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	SenderName  string    `db:"sender_name" json:"sender_name"`
	SenderEmail string    `db:"sender_email" json:"sender_email"`
	Message     string    `db:"message" json:"message"`
	IsAdmin     bool      `db:"is_admin" json:"is_admin"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ChatSession описывает сводку диалога для админки: последнее сообщение на session_id.
type ChatSession struct {
	SessionID     string    `db:"session_id" json:"session_id"`
	SenderName    string    `db:"sender_name" json:"sender_name"`
	SenderEmail   string    `db:"sender_email" json:"sender_email"`
	LastMessage   string    `db:"last_message" json:"last_message"`
	LastMessageAt time.Time `db:"last_message_at" json:"last_message_at"`
	MessageCount  int       `db:"message_count" json:"message_count"`
}
