package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/standupshop/backend/internal/logger"
	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/validation"
)

// ChatRepositoryIface описывает зависимости чата поддержки.
type ChatRepositoryIface interface {
	Add(ctx context.Context, msg *models.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	ListSessions(ctx context.Context) ([]models.ChatSession, error)
}

// ChatService содержит логику чата поддержки.
type ChatService struct {
	repo ChatRepositoryIface
	hub  TopicNotifier
}

// NewChatService создаёт новый сервис чата.
func NewChatService(repo ChatRepositoryIface) *ChatService {
	return &ChatService{repo: repo}
}

// SetHub устанавливает hub для отправки realtime уведомлений.
func (s *ChatService) SetHub(hub TopicNotifier) {
	s.hub = hub
}

// PostMessageInput описывает сообщение чата.
type PostMessageInput struct {
	SessionID   string
	SenderName  string
	SenderEmail string
	Message     string
	IsAdmin     bool
}

// PostMessage сохраняет сообщение и рассылает его подписчикам сессии.
func (s *ChatService) PostMessage(ctx context.Context, in PostMessageInput) (*models.ChatMessage, error) {
	if strings.TrimSpace(in.SessionID) == "" {
		return nil, fmt.Errorf("chat service: session_id обязателен")
	}
	if err := validation.ValidateLength("сообщение", in.Message, validation.MinMessageLength, validation.MaxMessageLength); err != nil {
		return nil, fmt.Errorf("chat service: %w", err)
	}
	// Имя и email обязательны только для посетителя; у ответа админа
	// отправитель фиксированный.
	if !in.IsAdmin {
		if err := validation.ValidateRequired("имя отправителя", in.SenderName); err != nil {
			return nil, fmt.Errorf("chat service: %w", err)
		}
		if err := validation.ValidateEmail(in.SenderEmail); err != nil {
			return nil, fmt.Errorf("chat service: %w", err)
		}
	}

	msg := &models.ChatMessage{
		SessionID:   in.SessionID,
		SenderName:  in.SenderName,
		SenderEmail: in.SenderEmail,
		Message:     in.Message,
		IsAdmin:     in.IsAdmin,
	}
	if err := s.repo.Add(ctx, msg); err != nil {
		return nil, err
	}

	if s.hub != nil {
		if err := s.hub.BroadcastToTopic("chat:"+in.SessionID, "chat_message", msg); err != nil {
			logger.WithComponent("chat").Warnf("не удалось отправить realtime уведомление: %v", err)
		}
	}

	return msg, nil
}

// ListBySession возвращает сообщения сессии.
func (s *ChatService) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("chat service: session_id обязателен")
	}
	return s.repo.ListBySession(ctx, sessionID)
}

// ListSessions возвращает сводку диалогов для админки.
func (s *ChatService) ListSessions(ctx context.Context) ([]models.ChatSession, error) {
	return s.repo.ListSessions(ctx)
}
