package service

import (
	"context"
	"testing"

	"github.com/standupshop/backend/internal/models"
)

// mockChatRepository хранит сообщения в памяти.
type mockChatRepository struct {
	messages []models.ChatMessage
}

func (m *mockChatRepository) Add(ctx context.Context, msg *models.ChatMessage) error {
	m.messages = append(m.messages, *msg)
	return nil
}

func (m *mockChatRepository) ListBySession(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, msg := range m.messages {
		if msg.SessionID == sessionID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (m *mockChatRepository) ListSessions(ctx context.Context) ([]models.ChatSession, error) {
	seen := make(map[string]bool)
	var out []models.ChatSession
	for _, msg := range m.messages {
		if !seen[msg.SessionID] {
			seen[msg.SessionID] = true
			out = append(out, models.ChatSession{SessionID: msg.SessionID})
		}
	}
	return out, nil
}

func TestChatService_PostMessage(t *testing.T) {
	repo := &mockChatRepository{}
	notifier := &mockNotifier{}
	service := NewChatService(repo)
	service.SetHub(notifier)

	msg, err := service.PostMessage(context.Background(), PostMessageInput{
		SessionID:   "sess-1",
		SenderName:  "Анна",
		SenderEmail: "anna@example.com",
		Message:     "Когда отправите заказ?",
	})
	if err != nil {
		t.Fatalf("post вернул ошибку: %v", err)
	}
	if msg.IsAdmin {
		t.Fatalf("сообщение посетителя не должно помечаться админским")
	}
	if len(repo.messages) != 1 {
		t.Fatalf("сообщение должно сохраниться")
	}
	if len(notifier.topics) != 1 || notifier.topics[0] != "chat:sess-1" {
		t.Fatalf("уведомление должно уйти в топик сессии: %v", notifier.topics)
	}
	if notifier.events[0] != "chat_message" {
		t.Fatalf("неожиданное событие: %s", notifier.events[0])
	}
}

func TestChatService_PostMessage_Validation(t *testing.T) {
	service := NewChatService(&mockChatRepository{})
	ctx := context.Background()

	if _, err := service.PostMessage(ctx, PostMessageInput{Message: "привет"}); err == nil {
		t.Fatalf("ожидалась ошибка на пустой session_id")
	}

	if _, err := service.PostMessage(ctx, PostMessageInput{
		SessionID: "sess-1",
		Message:   "привет",
	}); err == nil {
		t.Fatalf("посетитель без имени и email должен отклоняться")
	}
}

func TestChatService_PostMessage_AdminReply(t *testing.T) {
	repo := &mockChatRepository{}
	service := NewChatService(repo)

	// У ответа админа отправитель фиксированный, имя и email не требуются.
	msg, err := service.PostMessage(context.Background(), PostMessageInput{
		SessionID:  "sess-1",
		SenderName: "Support",
		Message:    "Отправим завтра",
		IsAdmin:    true,
	})
	if err != nil {
		t.Fatalf("ответ админа вернул ошибку: %v", err)
	}
	if !msg.IsAdmin {
		t.Fatalf("ответ должен быть помечен админским")
	}
}

func TestChatService_ListBySession(t *testing.T) {
	repo := &mockChatRepository{}
	service := NewChatService(repo)
	ctx := context.Background()

	for _, sess := range []string{"a", "a", "b"} {
		if _, err := service.PostMessage(ctx, PostMessageInput{
			SessionID:   sess,
			SenderName:  "Гость",
			SenderEmail: "guest@example.com",
			Message:     "вопрос",
		}); err != nil {
			t.Fatalf("post вернул ошибку: %v", err)
		}
	}

	msgs, err := service.ListBySession(ctx, "a")
	if err != nil {
		t.Fatalf("list вернул ошибку: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("ожидались 2 сообщения сессии a, получили %d", len(msgs))
	}

	sessions, err := service.ListSessions(ctx)
	if err != nil {
		t.Fatalf("list sessions вернул ошибку: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("ожидались 2 сессии, получили %d", len(sessions))
	}
}
