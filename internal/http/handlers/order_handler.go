package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/standupshop/backend/internal/dto"
	"github.com/standupshop/backend/internal/http/handlers/common"
	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/repository"
	"github.com/standupshop/backend/internal/service"
)

// OrderHandler обслуживает checkout, страницу отслеживания и вкладки
// заказов в админке.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler создаёт новый хэндлер.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder обрабатывает POST /api/orders (публичный checkout).
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Item: models.OrderItem{
			Type:     req.Item.Type,
			Name:     req.Item.Name,
			Price:    req.Item.Price,
			Quantity: req.Item.Quantity,
			Size:     req.Item.Size,
			Format:   req.Item.Format,
			CardID:   req.Item.CardID,
			ShowID:   req.Item.ShowID,
			ShowDate: req.Item.ShowDate,
			Venue:    req.Item.Venue,
		},
		PaymentMethod:  req.PaymentMethod,
		PaymentDetails: req.PaymentDetails,
	})
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, dto.OrderResponse{Order: order})
}

// TrackOrder обрабатывает GET /api/orders/track?order_number=...
// Публичная страница отслеживания ищет заказ только по номеру,
// внутренний id наружу не отдаётся в качестве ключа.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	orderNumber := c.Query("order_number")
	if orderNumber == "" {
		common.RespondBadRequest(c, "параметр order_number обязателен")
		return
	}

	order, err := h.orders.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			common.RespondNotFound(c, "заказ не найден")
			return
		}
		common.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.OrderResponse{Order: order})
}

// ListOrders обрабатывает GET /api/admin/orders.
// Фильтры item_type и payment_method обслуживают вкладки админки.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), repository.ListFilterParams{
		ItemType:      c.Query("item_type"),
		PaymentMethod: c.Query("payment_method"),
	})
	if err != nil {
		common.RespondInternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.OrdersResponse{Orders: orders})
}

// UpdateStatus обрабатывает PATCH /api/admin/orders.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actorID, err := common.CurrentUserID(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}
	actorEmail, err := common.CurrentUserEmail(c)
	if err != nil {
		common.RespondUnauthorized(c, err.Error())
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	orderID, err := common.ParseUUID(req.ID, "id")
	if err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	err = h.orders.Transition(c.Request.Context(), service.TransitionInput{
		OrderID:    orderID,
		NewStatus:  req.Status,
		Comment:    req.Comment,
		ActorID:    actorID,
		ActorEmail: actorEmail,
	})
	if err != nil {
		c.Error(err)
		return
	}

	common.RespondOK(c)
}
