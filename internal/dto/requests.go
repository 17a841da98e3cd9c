package dto

// CreateOrderRequest represents the checkout request to create an order
type CreateOrderRequest struct {
	CustomerName    string                 `json:"customer_name" binding:"required"`
	CustomerEmail   string                 `json:"customer_email" binding:"required"`
	ShippingAddress string                 `json:"shipping_address" binding:"required"`
	Item            *OrderItemRequest      `json:"item" binding:"required"`
	PaymentMethod   string                 `json:"payment_method" binding:"required"`
	PaymentDetails  map[string]interface{} `json:"payment_details"`
}

// OrderItemRequest represents the single line item of a checkout
type OrderItemRequest struct {
	Type     string  `json:"type" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity" binding:"required"`
	Size     string  `json:"size"`
	Format   string  `json:"format"`
	CardID   string  `json:"cardId"`
	ShowID   string  `json:"showId"`
	ShowDate string  `json:"showDate"`
	Venue    string  `json:"venue"`
}

// UpdateOrderStatusRequest represents the admin request to transition an order
type UpdateOrderStatusRequest struct {
	ID      string `json:"id" binding:"required"`
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment"`
}

// CreateShowRequest represents the admin request to add a show
type CreateShowRequest struct {
	Date         string `json:"date" binding:"required"`
	City         string `json:"city" binding:"required"`
	Venue        string `json:"venue" binding:"required"`
	TicketStatus string `json:"ticket_status" binding:"required"`
	TicketURL    string `json:"ticket_url"`
}

// UpdateShowRequest represents the admin request to edit a show
type UpdateShowRequest struct {
	ID           string  `json:"id" binding:"required"`
	Date         *string `json:"date"`
	City         *string `json:"city"`
	Venue        *string `json:"venue"`
	TicketStatus *string `json:"ticket_status"`
	TicketURL    *string `json:"ticket_url"`
}

// CreatePresaleRequest represents a visitor's presale codes request
type CreatePresaleRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Address     string `json:"address" binding:"required"`
	CodesNeeded int    `json:"codes_needed" binding:"required"`
}

// UpdatePresaleStatusRequest represents the admin request to settle a presale request
type UpdatePresaleStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// CreateFanCardRequest represents a membership card application
type CreateFanCardRequest struct {
	Name           string  `json:"name" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	WaybillAddress *string `json:"waybill_address"`
	CardType       string  `json:"card_type" binding:"required"`
	PhotoURL       *string `json:"photo_url"`
}

// UpdateFanCardStatusRequest represents the admin request to moderate a card application
type UpdateFanCardStatusRequest struct {
	ID     string `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// PostChatMessageRequest represents a support chat message from the widget or the admin
type PostChatMessageRequest struct {
	SessionID   string `json:"session_id" binding:"required"`
	SenderName  string `json:"sender_name"`
	SenderEmail string `json:"sender_email"`
	Message     string `json:"message" binding:"required"`
}

// UpdateSettingsRequest represents the admin request to change shop settings
type UpdateSettingsRequest struct {
	BTCWallet    *string `json:"btc_wallet"`
	SignatureURL *string `json:"signature_url"`
}

// LoginRequest represents the admin login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the token refresh request
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
