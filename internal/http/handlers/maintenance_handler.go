package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/http/handlers/common"
	"github.com/standupshop/backend/internal/service"
)

// MaintenanceHandler обслуживает административную очистку данных.
type MaintenanceHandler struct {
	service *service.MaintenanceService
}

// NewMaintenanceHandler создаёт новый хэндлер.
func NewMaintenanceHandler(service *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// ClearAll обрабатывает POST /api/admin/maintenance/clear.
// Удаляет все заказы, заявки, карты и сообщения чата. Необратимо.
func (h *MaintenanceHandler) ClearAll(c *gin.Context) {
	actorEmail, err := common.CurrentUserEmail(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	if err := h.service.ClearAll(c.Request.Context(), actorEmail); err != nil {
		c.Error(err)
		return
	}

	common.RespondOK(c)
}
