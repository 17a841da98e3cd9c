package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/dto"
	"github.com/standupshop/backend/internal/http/handlers/common"
	"github.com/standupshop/backend/internal/service"
)

// PresaleHandler обслуживает заявки на предпродажные коды.
type PresaleHandler struct {
	presale *service.PresaleService
}

// NewPresaleHandler создаёт новый хэндлер.
func NewPresaleHandler(presale *service.PresaleService) *PresaleHandler {
	return &PresaleHandler{presale: presale}
}

// CreateRequest обрабатывает POST /api/presale-requests (публичный).
func (h *PresaleHandler) CreateRequest(c *gin.Context) {
	var req dto.CreatePresaleRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	request, err := h.presale.Create(c.Request.Context(), service.CreatePresaleInput{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		CodesNeeded: req.CodesNeeded,
	})
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": request.ID})
}

// ListRequests обрабатывает GET /api/admin/presale-requests.
func (h *PresaleHandler) ListRequests(c *gin.Context) {
	requests, err := h.presale.List(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.PresaleRequestsResponse{Requests: requests})
}

// UpdateStatus обрабатывает PATCH /api/admin/presale-requests.
func (h *PresaleHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePresaleStatusRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	requestID, err := common.ParseUUID(req.ID, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.presale.UpdateStatus(c.Request.Context(), requestID, req.Status); err != nil {
		c.Error(err)
		return
	}

	common.RespondOK(c)
}
