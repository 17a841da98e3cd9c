package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/standupshop/backend/internal/logger"
	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/pkg/apperror"
	"github.com/standupshop/backend/internal/repository"
	"github.com/standupshop/backend/internal/validation"
)

// OrderRepository описывает зависимости сервиса от слоя хранилища.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	List(ctx context.Context, params repository.ListFilterParams) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, now time.Time) error
	UpdateHistory(ctx context.Context, id uuid.UUID, history models.StatusHistory, expectedVersion int) error
	SetAdminComment(ctx context.Context, id uuid.UUID, comment string) error
}

// AuditLogger пишет записи в отдельный журнал действий админов.
type AuditLogger interface {
	Add(ctx context.Context, orderID, actorID uuid.UUID, actorEmail, action string, comment *string, createdAt time.Time) error
}

// TopicNotifier интерфейс для отправки realtime уведомлений подписчикам.
type TopicNotifier interface {
	BroadcastToTopic(topic string, event string, data any) error
}

// OrderService содержит бизнес-логику жизненного цикла заказа.
type OrderService struct {
	repo  OrderRepository
	audit AuditLogger
	hub   TopicNotifier

	randMu sync.Mutex
	rand   *rand.Rand
}

// NewOrderService создаёт новый сервис заказов.
func NewOrderService(repo OrderRepository, audit AuditLogger) *OrderService {
	return &OrderService{
		repo:  repo,
		audit: audit,
		rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetHub устанавливает hub для отправки realtime уведомлений.
func (s *OrderService) SetHub(hub TopicNotifier) {
	s.hub = hub
}

// CreateOrderInput описывает входные данные оформления заказа.
type CreateOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	Item            models.OrderItem
	PaymentMethod   string
	PaymentDetails  models.PaymentDetails
}

// количество попыток при коллизии номера заказа
const orderNumberAttempts = 3

// CreateOrder проверяет данные checkout, генерирует номер отслеживания
// и сохраняет заказ со статусом pending и пустой историей.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if err := validation.ValidateRequired("имя покупателя", in.CustomerName); err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}
	if err := validation.ValidateEmail(in.CustomerEmail); err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}
	if err := validation.ValidateRequired("адрес доставки", in.ShippingAddress); err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}
	if err := validation.ValidateRequired("название товара", in.Item.Name); err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}
	if !models.PaymentMethods[in.PaymentMethod] {
		return nil, fmt.Errorf("order service: неизвестный способ оплаты %q", in.PaymentMethod)
	}
	if err := validation.ValidateQuantity(in.Item.Quantity); err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}
	if err := validation.ValidatePrice(in.Item.Price); err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}

	order := &models.Order{
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		Items:           models.OrderItems{in.Item},
		TotalAmount:     in.Item.Price * float64(in.Item.Quantity),
		PaymentMethod:   in.PaymentMethod,
		PaymentDetails:  in.PaymentDetails,
		Status:          models.OrderStatusPending,
		StatusHistory:   models.StatusHistory{},
	}
	if order.PaymentDetails == nil {
		order.PaymentDetails = models.PaymentDetails{}
	}

	// Номер уникален на уровне схемы; при коллизии генерируем заново.
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		order.OrderNumber = s.generateOrderNumber()
		err = s.repo.Create(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, repository.ErrOrderNumberTaken) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("order service: не удалось подобрать уникальный номер заказа: %w", err)
}

const orderNumberAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// generateOrderNumber формирует публичный номер ORD-<unix ms>-<5 символов>.
func (s *OrderService) generateOrderNumber() string {
	s.randMu.Lock()
	defer s.randMu.Unlock()

	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[s.rand.Intn(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), strings.ToUpper(string(suffix)))
}

// TransitionInput описывает смену статуса заказа админом.
type TransitionInput struct {
	OrderID    uuid.UUID
	NewStatus  string
	Comment    string
	ActorID    uuid.UUID
	ActorEmail string
}

// количество попыток дозаписи истории при конфликте версий
const historyAppendAttempts = 3

// Transition переводит заказ в новый статус.
//
// Основная запись (статус + updated_at) обязательна: её ошибка возвращается
// вызывающему. Дальнейшие шаги (дозапись истории, комментарий админа,
// журнал аудита, realtime уведомление) выполняются best-effort: их ошибки
// логируются и не отменяют уже сменившийся статус.
func (s *OrderService) Transition(ctx context.Context, in TransitionInput) error {
	if !models.OrderStatuses[in.NewStatus] {
		return apperror.New(apperror.ErrCodeValidation, fmt.Sprintf("неизвестный статус %q", in.NewStatus))
	}

	order, err := s.repo.GetByID(ctx, in.OrderID)
	if err != nil {
		return err
	}

	// Переходы вне пути, который предлагает админка, принимаются,
	// но отмечаются в логе.
	if order.Status != in.NewStatus && !models.IsOfferedTransition(order.Status, in.NewStatus) {
		logger.WithComponent("orders").WithField("order_number", order.OrderNumber).
			Warnf("нетипичный переход статуса: %s -> %s", order.Status, in.NewStatus)
	}

	now := time.Now().UTC()

	if err := s.repo.UpdateStatus(ctx, in.OrderID, in.NewStatus, now); err != nil {
		return err
	}

	actor := in.ActorEmail
	if actor == "" {
		actor = in.ActorID.String()
	}
	var comment *string
	if strings.TrimSpace(in.Comment) != "" {
		c := in.Comment
		comment = &c
	}

	log := logger.WithComponent("orders").WithField("order_number", order.OrderNumber)

	if err := s.appendHistory(ctx, in.OrderID, models.StatusEntry{
		Status:    in.NewStatus,
		Timestamp: now,
		Comment:   comment,
		Actor:     actor,
	}); err != nil {
		log.Warnf("не удалось дописать историю статусов: %v", err)
	}

	if comment != nil {
		if err := s.repo.SetAdminComment(ctx, in.OrderID, *comment); err != nil {
			log.Warnf("не удалось сохранить комментарий админа: %v", err)
		}
	}

	if err := s.audit.Add(ctx, in.OrderID, in.ActorID, in.ActorEmail, "status:"+in.NewStatus, comment, now); err != nil {
		log.Warnf("не удалось записать журнал аудита: %v", err)
	}

	s.notifyOrderUpdated(ctx, in.OrderID, order.OrderNumber)

	return nil
}

// appendHistory дописывает запись в историю статусов под оптимистичной
// блокировкой: читаем актуальную историю, дописываем, пишем с проверкой
// версии; при конфликте повторяем с перечитыванием.
func (s *OrderService) appendHistory(ctx context.Context, orderID uuid.UUID, entry models.StatusEntry) error {
	var err error
	for attempt := 0; attempt < historyAppendAttempts; attempt++ {
		var order *models.Order
		order, err = s.repo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}

		history := append(order.StatusHistory, entry)
		err = s.repo.UpdateHistory(ctx, orderID, history, order.HistoryVersion)
		if err == nil {
			return nil
		}
		if !errors.Is(err, repository.ErrHistoryVersionConflict) {
			return err
		}
	}
	return fmt.Errorf("конфликт версий истории после %d попыток: %w", historyAppendAttempts, err)
}

// notifyOrderUpdated отправляет обновлённый заказ подписчикам страницы
// отслеживания. Best-effort: ошибки только логируются.
func (s *OrderService) notifyOrderUpdated(ctx context.Context, orderID uuid.UUID, orderNumber string) {
	if s.hub == nil {
		return
	}

	updated, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		logger.WithComponent("orders").Warnf("не удалось перечитать заказ для уведомления: %v", err)
		return
	}

	if err := s.hub.BroadcastToTopic("order:"+orderNumber, "order_updated", updated); err != nil {
		logger.WithComponent("orders").Warnf("не удалось отправить realtime уведомление: %v", err)
	}
}

// GetByOrderNumber возвращает заказ для публичной страницы отслеживания.
func (s *OrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return nil, fmt.Errorf("order service: order_number обязателен")
	}
	return s.repo.GetByOrderNumber(ctx, orderNumber)
}

// List возвращает заказы для вкладок админки.
func (s *OrderService) List(ctx context.Context, params repository.ListFilterParams) ([]models.Order, error) {
	return s.repo.List(ctx, params)
}
