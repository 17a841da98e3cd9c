package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/standupshop/backend/internal/ws"
)

// Префиксы топиков, открытых для подписки без авторизации.
// Покупатель знает номер своего заказа, посетитель чата знает свой session_id,
// этого достаточно для подписки на обновления.
var publicTopicPrefixes = []string{"order:", "chat:"}

// WSHandler отвечает за установку WebSocket соединений.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер.
func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle обслуживает GET /api/ws?topic=...
func (h *WSHandler) Handle(c *gin.Context) {
	topic := c.Query("topic")
	if !isSubscribableTopic(topic) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректный топик подписки"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	client := ws.NewClient(conn, h.hub, topic)
	h.hub.Register(client)

	client.Run(c.Request.Context())
}

func isSubscribableTopic(topic string) bool {
	for _, prefix := range publicTopicPrefixes {
		if strings.HasPrefix(topic, prefix) && len(topic) > len(prefix) {
			return true
		}
	}
	return false
}
