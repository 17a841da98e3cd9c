package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"sync"
)

// Hub управляет всеми WebSocket клиентами.
// Клиенты подписываются на топики вида "order:<order_number>" (страница
// отслеживания) и "chat:<session_id>" (виджет чата и админка): это замена
// строчных подписок realtime-фида прежней хостинговой базы.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	ctx        context.Context
}

type message struct {
	topic   string
	payload []byte
}

// NewHub создаёт новый хаб.
func NewHub(ctx context.Context) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 32),
		ctx:        ctx,
	}
}

// Run запускает главный цикл хаба.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.send(msg.topic, msg.payload)
		case <-h.ctx.Done():
			return
		}
	}
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// BroadcastToTopic отправляет событие всем подписчикам топика.
// Сообщение следует контракту WebSocket API: поле "type" содержит имя
// события, "data" — обновлённую строку.
func (h *Hub) BroadcastToTopic(topic string, event string, data any) error {
	payload := map[string]any{
		"type": event,
		"data": data,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("ws: не удалось сериализовать сообщение: %w", err)
	}

	h.broadcast <- message{topic: topic, payload: raw}
	return nil
}

// SubscriberCount возвращает число подписчиков топика.
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.topic]; !ok {
		h.clients[client.topic] = make(map[*Client]struct{})
	}
	h.clients[client.topic][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.topic]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, client.topic)
		}
	}
}

func (h *Hub) send(topic string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[topic] {
		select {
		case client.send <- payload:
		default:
			// Медленного клиента отключаем, не блокируя рассылку.
			go func(c *Client) {
				defer func() {
					if r := recover(); r != nil {
						fmt.Printf("ws: panic при закрытии клиента: %v\n%s\n", r, debug.Stack())
					}
				}()
				c.Close()
			}(client)
		}
	}
}
