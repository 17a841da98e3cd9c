package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/dto"
	"github.com/standupshop/backend/internal/http/handlers/common"
	"github.com/standupshop/backend/internal/repository"
	"github.com/standupshop/backend/internal/service"
)

// ShowHandler обслуживает афишу выступлений.
type ShowHandler struct {
	shows *service.ShowService
}

// NewShowHandler создаёт новый хэндлер.
func NewShowHandler(shows *service.ShowService) *ShowHandler {
	return &ShowHandler{shows: shows}
}

// ListShows обрабатывает GET /api/shows (публичная афиша).
func (h *ShowHandler) ListShows(c *gin.Context) {
	shows, err := h.shows.List(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.ShowsResponse{Shows: shows})
}

// CreateShow обрабатывает POST /api/admin/shows.
func (h *ShowHandler) CreateShow(c *gin.Context) {
	var req dto.CreateShowRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		common.RespondBadRequest(c, "date должен быть в формате RFC3339")
		return
	}

	var ticketURL *string
	if req.TicketURL != "" {
		ticketURL = &req.TicketURL
	}

	show, err := h.shows.Create(c.Request.Context(), service.CreateShowInput{
		Date:         date,
		City:         req.City,
		Venue:        req.Venue,
		TicketStatus: req.TicketStatus,
		TicketURL:    ticketURL,
	})
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"show": show})
}

// UpdateShow обрабатывает PATCH /api/admin/shows.
func (h *ShowHandler) UpdateShow(c *gin.Context) {
	var req dto.UpdateShowRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	showID, err := common.ParseUUID(req.ID, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			common.RespondBadRequest(c, "date должен быть в формате RFC3339")
			return
		}
		date = &parsed
	}

	err = h.shows.Update(c.Request.Context(), showID, repository.ShowUpdateInput{
		Date:         date,
		City:         req.City,
		Venue:        req.Venue,
		TicketStatus: req.TicketStatus,
		TicketURL:    req.TicketURL,
	})
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondOK(c)
}

// DeleteShow обрабатывает DELETE /api/admin/shows?id=...
func (h *ShowHandler) DeleteShow(c *gin.Context) {
	showID, err := common.ParseUUID(c.Query("id"), "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	if err := h.shows.Delete(c.Request.Context(), showID); err != nil {
		c.Error(err)
		return
	}

	common.RespondOK(c)
}
