package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func waitForSubscribers(t *testing.T, hub *Hub, topic string, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if hub.SubscriberCount(topic) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("топик %s: ожидалось %d подписчиков, получили %d", topic, want, hub.SubscriberCount(topic))
}

func TestHub_BroadcastToTopic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(ctx)
	go hub.Run()

	orderClient := NewClient(nil, hub, "order:ORD-1-AAAAA")
	chatClient := NewClient(nil, hub, "chat:sess-1")
	hub.Register(orderClient)
	hub.Register(chatClient)

	waitForSubscribers(t, hub, "order:ORD-1-AAAAA", 1)
	waitForSubscribers(t, hub, "chat:sess-1", 1)

	if err := hub.BroadcastToTopic("order:ORD-1-AAAAA", "order_updated", map[string]string{"status": "approved"}); err != nil {
		t.Fatalf("broadcast вернул ошибку: %v", err)
	}

	select {
	case raw := <-orderClient.send:
		var msg struct {
			Type string            `json:"type"`
			Data map[string]string `json:"data"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("сообщение не парсится: %v", err)
		}
		if msg.Type != "order_updated" || msg.Data["status"] != "approved" {
			t.Fatalf("неожиданное сообщение: %s", raw)
		}
	case <-time.After(time.Second):
		t.Fatalf("подписчик топика заказа не получил сообщение")
	}

	select {
	case raw := <-chatClient.send:
		t.Fatalf("подписчик чужого топика получил сообщение: %s", raw)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_Unregister(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(ctx)
	go hub.Run()

	client := NewClient(nil, hub, "chat:sess-1")
	hub.Register(client)
	waitForSubscribers(t, hub, "chat:sess-1", 1)

	hub.Unregister(client)
	waitForSubscribers(t, hub, "chat:sess-1", 0)
}

func TestHub_MultipleSubscribersSameTopic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(ctx)
	go hub.Run()

	first := NewClient(nil, hub, "order:ORD-2-BBBBB")
	second := NewClient(nil, hub, "order:ORD-2-BBBBB")
	hub.Register(first)
	hub.Register(second)
	waitForSubscribers(t, hub, "order:ORD-2-BBBBB", 2)

	if err := hub.BroadcastToTopic("order:ORD-2-BBBBB", "order_updated", nil); err != nil {
		t.Fatalf("broadcast вернул ошибку: %v", err)
	}

	for _, client := range []*Client{first, second} {
		select {
		case <-client.send:
		case <-time.After(time.Second):
			t.Fatalf("не все подписчики получили сообщение")
		}
	}
}
