package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/service"
)

// SeedHandler создаёт первичного администратора в development окружении.
type SeedHandler struct {
	auth          *service.AuthService
	adminEmail    string
	adminPassword string
}

// NewSeedHandler создаёт новый seed handler.
func NewSeedHandler(auth *service.AuthService, adminEmail, adminPassword string) *SeedHandler {
	return &SeedHandler{
		auth:          auth,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// SeedAdmin обрабатывает POST /api/seed/admin.
// Идемпотентно: если администратор уже существует, возвращает его.
func (h *SeedHandler) SeedAdmin(c *gin.Context) {
	if h.adminEmail == "" || h.adminPassword == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ADMIN_EMAIL и ADMIN_PASSWORD не настроены"})
		return
	}

	user, err := h.auth.EnsureAdmin(c.Request.Context(), h.adminEmail, h.adminPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "администратор готов",
		"user":    user,
	})
}
