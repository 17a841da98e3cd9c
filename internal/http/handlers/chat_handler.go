package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/dto"
	"github.com/standupshop/backend/internal/http/handlers/common"
	"github.com/standupshop/backend/internal/service"
)

// ChatHandler обслуживает чат поддержки: виджет на сайте и вкладку в админке.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler создаёт новый хэндлер.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// PostMessage обрабатывает POST /api/chat/messages (виджет посетителя).
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req dto.PostChatMessageRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	msg, err := h.chat.PostMessage(c.Request.Context(), service.PostMessageInput{
		SessionID:   req.SessionID,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
		Message:     req.Message,
		IsAdmin:     false,
	})
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

// ListMessages обрабатывает GET /api/chat/messages?session_id=...
func (h *ChatHandler) ListMessages(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		common.RespondBadRequest(c, "параметр session_id обязателен")
		return
	}

	messages, err := h.chat.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ChatMessagesResponse{Messages: messages})
}

// ListSessions обрабатывает GET /api/admin/chat/sessions.
func (h *ChatHandler) ListSessions(c *gin.Context) {
	sessions, err := h.chat.ListSessions(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ChatSessionsResponse{Sessions: sessions})
}

// Reply обрабатывает POST /api/admin/chat/messages (ответ админа).
func (h *ChatHandler) Reply(c *gin.Context) {
	email, err := common.CurrentUserEmail(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.PostChatMessageRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	msg, err := h.chat.PostMessage(c.Request.Context(), service.PostMessageInput{
		SessionID:   req.SessionID,
		SenderName:  "Support",
		SenderEmail: email,
		Message:     req.Message,
		IsAdmin:     true,
	})
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
