package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/dto"
	"github.com/standupshop/backend/internal/http/handlers/common"
	"github.com/standupshop/backend/internal/repository"
	"github.com/standupshop/backend/internal/service"
)

// SettingsHandler обслуживает настройки магазина.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler создаёт новый хэндлер.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GetBTCWallet обрабатывает GET /api/settings/btc-wallet.
// Публичный: checkout показывает адрес кошелька при crypto-оплате.
func (h *SettingsHandler) GetBTCWallet(c *gin.Context) {
	wallet, err := h.settings.GetBTCWallet(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			common.RespondNotFound(c, "кошелёк не настроен")
			return
		}
		common.RespondInternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"btc_wallet": wallet})
}

// ListSettings обрабатывает GET /api/admin/settings.
func (h *SettingsHandler) ListSettings(c *gin.Context) {
	settings, err := h.settings.List(c.Request.Context())
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}
	c.JSON(http.StatusOK, dto.SettingsResponse{Settings: settings})
}

// UpdateSettings обрабатывает PATCH /api/admin/settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	err := h.settings.Update(c.Request.Context(), service.SettingsUpdateInput{
		BTCWallet:    req.BTCWallet,
		SignatureURL: req.SignatureURL,
	})
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	common.RespondOK(c)
}
