package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/dto"
	"github.com/standupshop/backend/internal/http/handlers/common"
	"github.com/standupshop/backend/internal/service"
)

// FanCardHandler обслуживает заявки на клубные карты.
type FanCardHandler struct {
	cards *service.FanCardService
}

// NewFanCardHandler создаёт новый хэндлер.
func NewFanCardHandler(cards *service.FanCardService) *FanCardHandler {
	return &FanCardHandler{cards: cards}
}

// CreateCard обрабатывает POST /api/fan-cards (публичная заявка).
func (h *FanCardHandler) CreateCard(c *gin.Context) {
	var req dto.CreateFanCardRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	card, err := h.cards.Create(c.Request.Context(), service.CreateFanCardInput{
		Name:           req.Name,
		Address:        req.Address,
		WaybillAddress: req.WaybillAddress,
		CardType:       req.CardType,
		PhotoURL:       req.PhotoURL,
	})
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": card.ID})
}

// ListCards обрабатывает GET /api/admin/fan-cards.
func (h *FanCardHandler) ListCards(c *gin.Context) {
	cards, err := h.cards.List(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.FanCardsResponse{Cards: cards})
}

// UpdateStatus обрабатывает PATCH /api/admin/fan-cards.
func (h *FanCardHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateFanCardStatusRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	cardID, err := common.ParseUUID(req.ID, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.cards.UpdateStatus(c.Request.Context(), cardID, req.Status); err != nil {
		c.Error(err)
		return
	}

	common.RespondOK(c)
}
