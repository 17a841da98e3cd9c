package dto

import (
	"github.com/standupshop/backend/internal/models"
)

// ErrorResponse is the uniform error payload
type ErrorResponse struct {
	Error string `json:"error"`
}

// OKResponse is the uniform success payload for mutations without a body
type OKResponse struct {
	OK bool `json:"ok"`
}

// OrderResponse wraps a single order (tracking page)
type OrderResponse struct {
	Order *models.Order `json:"order"`
}

// OrdersResponse wraps the admin order list
type OrdersResponse struct {
	Orders []models.Order `json:"orders"`
}

// ShowsResponse wraps the show listing
type ShowsResponse struct {
	Shows []models.Show `json:"shows"`
}

// PresaleRequestsResponse wraps the admin presale request list
type PresaleRequestsResponse struct {
	Requests []models.PresaleRequest `json:"requests"`
}

// FanCardsResponse wraps the admin card application list
type FanCardsResponse struct {
	Cards []models.FanCard `json:"cards"`
}

// ChatMessagesResponse wraps a chat session's messages
type ChatMessagesResponse struct {
	Messages []models.ChatMessage `json:"messages"`
}

// ChatSessionsResponse wraps the admin chat session summaries
type ChatSessionsResponse struct {
	Sessions []models.ChatSession `json:"sessions"`
}

// SettingsResponse wraps the shop settings
type SettingsResponse struct {
	Settings []models.AdminSetting `json:"settings"`
}

// UploadResponse returns the public URL of an uploaded file
type UploadResponse struct {
	URL string `json:"url"`
}
