package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/standupshop/backend/internal/models"
	"github.com/standupshop/backend/internal/repository"
)

// mockOrderRepository реализует OrderRepository поверх карты в памяти.
type mockOrderRepository struct {
	orders map[uuid.UUID]*models.Order
	byNum  map[string]uuid.UUID

	createErrs       []error // ошибки для последовательных вызовов Create
	updateStatusErr  error
	historyConflicts int // сколько первых вызовов UpdateHistory вернут конфликт
	commentErr       error
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{
		orders: make(map[uuid.UUID]*models.Order),
		byNum:  make(map[string]uuid.UUID),
	}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		if err != nil {
			return err
		}
	}
	if _, taken := m.byNum[order.OrderNumber]; taken {
		return repository.ErrOrderNumberTaken
	}
	order.ID = uuid.New()
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	cp := *order
	m.orders[order.ID] = &cp
	m.byNum[order.OrderNumber] = order.ID
	return nil
}

func (m *mockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	cp := *order
	cp.StatusHistory = append(models.StatusHistory{}, order.StatusHistory...)
	return &cp, nil
}

func (m *mockOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	id, ok := m.byNum[orderNumber]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return m.GetByID(ctx, id)
}

func (m *mockOrderRepository) List(ctx context.Context, params repository.ListFilterParams) ([]models.Order, error) {
	out := make([]models.Order, 0, len(m.orders))
	for _, order := range m.orders {
		out = append(out, *order)
	}
	return out, nil
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, now time.Time) error {
	if m.updateStatusErr != nil {
		return m.updateStatusErr
	}
	order, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = now
	return nil
}

func (m *mockOrderRepository) UpdateHistory(ctx context.Context, id uuid.UUID, history models.StatusHistory, expectedVersion int) error {
	order, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	if m.historyConflicts > 0 {
		m.historyConflicts--
		// Имитируем конкурентную запись: версия в базе ушла вперёд.
		order.HistoryVersion++
		return repository.ErrHistoryVersionConflict
	}
	if order.HistoryVersion != expectedVersion {
		return repository.ErrHistoryVersionConflict
	}
	order.StatusHistory = history
	order.HistoryVersion++
	return nil
}

func (m *mockOrderRepository) SetAdminComment(ctx context.Context, id uuid.UUID, comment string) error {
	if m.commentErr != nil {
		return m.commentErr
	}
	order, ok := m.orders[id]
	if !ok {
		return repository.ErrOrderNotFound
	}
	order.AdminComments = &comment
	return nil
}

// mockAuditLogger пишет записи журнала в память.
type mockAuditLogger struct {
	entries []string
	err     error
}

func (m *mockAuditLogger) Add(ctx context.Context, orderID, actorID uuid.UUID, actorEmail, action string, comment *string, createdAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, action)
	return nil
}

// mockNotifier запоминает отправленные realtime события.
type mockNotifier struct {
	topics []string
	events []string
}

func (m *mockNotifier) BroadcastToTopic(topic string, event string, data any) error {
	m.topics = append(m.topics, topic)
	m.events = append(m.events, event)
	return nil
}

func validCreateInput() CreateOrderInput {
	return CreateOrderInput{
		CustomerName:    "Иван Петров",
		CustomerEmail:   "ivan@example.com",
		ShippingAddress: "Москва, ул. Пушкина, д. 1",
		Item: models.OrderItem{
			Type:     models.ItemTypeMerchandise,
			Name:     "Футболка с тура",
			Price:    25.50,
			Quantity: 2,
			Size:     "L",
		},
		PaymentMethod: models.PaymentMethodCard,
	}
}

var orderNumberRe = regexp.MustCompile(`^ORD-\d+-[0-9A-Z]{5}$`)

func TestOrderService_CreateOrder(t *testing.T) {
	repo := newMockOrderRepository()
	service := NewOrderService(repo, &mockAuditLogger{})

	order, err := service.CreateOrder(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create вернул ошибку: %v", err)
	}

	if !orderNumberRe.MatchString(order.OrderNumber) {
		t.Fatalf("неожиданный формат номера заказа: %s", order.OrderNumber)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("новый заказ должен быть pending, получили %s", order.Status)
	}
	if len(order.StatusHistory) != 0 {
		t.Fatalf("история нового заказа должна быть пустой")
	}
	if order.TotalAmount != 51.0 {
		t.Fatalf("ожидалась сумма 51.0, получили %v", order.TotalAmount)
	}
	if order.PaymentDetails == nil {
		t.Fatalf("payment_details не должны быть nil")
	}
}

func TestOrderService_CreateOrder_Validation(t *testing.T) {
	repo := newMockOrderRepository()
	service := NewOrderService(repo, &mockAuditLogger{})
	ctx := context.Background()

	in := validCreateInput()
	in.CustomerEmail = "not-an-email"
	if _, err := service.CreateOrder(ctx, in); err == nil {
		t.Fatalf("ожидалась ошибка на невалидный email")
	}

	in = validCreateInput()
	in.Item.Quantity = 0
	if _, err := service.CreateOrder(ctx, in); err == nil {
		t.Fatalf("ожидалась ошибка на нулевое количество")
	}

	in = validCreateInput()
	in.PaymentMethod = "paypal"
	if _, err := service.CreateOrder(ctx, in); err == nil {
		t.Fatalf("ожидалась ошибка на неизвестный способ оплаты")
	}

	if len(repo.orders) != 0 {
		t.Fatalf("невалидные заказы не должны сохраняться")
	}
}

func TestOrderService_CreateOrder_RetriesOnNumberCollision(t *testing.T) {
	repo := newMockOrderRepository()
	repo.createErrs = []error{repository.ErrOrderNumberTaken, repository.ErrOrderNumberTaken}
	service := NewOrderService(repo, &mockAuditLogger{})

	order, err := service.CreateOrder(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create должен был пережить две коллизии номера: %v", err)
	}
	if order.ID == uuid.Nil {
		t.Fatalf("заказ должен быть сохранён после повторной генерации номера")
	}
}

func TestOrderService_CreateOrder_GivesUpAfterCollisions(t *testing.T) {
	repo := newMockOrderRepository()
	repo.createErrs = []error{
		repository.ErrOrderNumberTaken,
		repository.ErrOrderNumberTaken,
		repository.ErrOrderNumberTaken,
	}
	service := NewOrderService(repo, &mockAuditLogger{})

	if _, err := service.CreateOrder(context.Background(), validCreateInput()); err == nil {
		t.Fatalf("ожидалась ошибка после исчерпания попыток")
	}
}

func createTestOrder(t *testing.T, service *OrderService) *models.Order {
	t.Helper()
	order, err := service.CreateOrder(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("не удалось подготовить заказ: %v", err)
	}
	return order
}

func TestOrderService_Transition(t *testing.T) {
	repo := newMockOrderRepository()
	audit := &mockAuditLogger{}
	notifier := &mockNotifier{}
	service := NewOrderService(repo, audit)
	service.SetHub(notifier)

	order := createTestOrder(t, service)
	ctx := context.Background()

	err := service.Transition(ctx, TransitionInput{
		OrderID:    order.ID,
		NewStatus:  models.OrderStatusApproved,
		Comment:    "оплата подтверждена",
		ActorID:    uuid.New(),
		ActorEmail: "admin@example.com",
	})
	if err != nil {
		t.Fatalf("transition вернул ошибку: %v", err)
	}

	updated, err := service.GetByOrderNumber(ctx, order.OrderNumber)
	if err != nil {
		t.Fatalf("не удалось перечитать заказ: %v", err)
	}
	if updated.Status != models.OrderStatusApproved {
		t.Fatalf("ожидался статус approved, получили %s", updated.Status)
	}
	if len(updated.StatusHistory) != 1 {
		t.Fatalf("ожидалась одна запись истории, получили %d", len(updated.StatusHistory))
	}
	entry := updated.StatusHistory[0]
	if entry.Status != models.OrderStatusApproved || entry.Actor != "admin@example.com" {
		t.Fatalf("неожиданная запись истории: %+v", entry)
	}
	if entry.Comment == nil || *entry.Comment != "оплата подтверждена" {
		t.Fatalf("комментарий должен попасть в историю")
	}
	if updated.AdminComments == nil || *updated.AdminComments != "оплата подтверждена" {
		t.Fatalf("комментарий должен попасть в admin_comments")
	}
	if len(audit.entries) != 1 || audit.entries[0] != "status:approved" {
		t.Fatalf("неожиданный журнал аудита: %v", audit.entries)
	}
	if len(notifier.topics) != 1 || notifier.topics[0] != "order:"+order.OrderNumber {
		t.Fatalf("уведомление должно уйти в топик заказа: %v", notifier.topics)
	}
	if notifier.events[0] != "order_updated" {
		t.Fatalf("неожиданное событие: %s", notifier.events[0])
	}
}

func TestOrderService_Transition_RepeatedStatusAppendsAgain(t *testing.T) {
	repo := newMockOrderRepository()
	service := NewOrderService(repo, &mockAuditLogger{})
	order := createTestOrder(t, service)
	ctx := context.Background()

	in := TransitionInput{
		OrderID:    order.ID,
		NewStatus:  models.OrderStatusApproved,
		ActorID:    uuid.New(),
		ActorEmail: "admin@example.com",
	}
	if err := service.Transition(ctx, in); err != nil {
		t.Fatalf("первый transition вернул ошибку: %v", err)
	}
	// Повторная установка того же статуса не отклоняется и даёт
	// вторую запись в истории.
	if err := service.Transition(ctx, in); err != nil {
		t.Fatalf("повторный transition вернул ошибку: %v", err)
	}

	updated, _ := service.GetByOrderNumber(ctx, order.OrderNumber)
	if len(updated.StatusHistory) != 2 {
		t.Fatalf("ожидались две записи истории, получили %d", len(updated.StatusHistory))
	}
}

func TestOrderService_Transition_BestEffortStepsDoNotFail(t *testing.T) {
	repo := newMockOrderRepository()
	repo.commentErr = errors.New("disk full")
	audit := &mockAuditLogger{err: errors.New("audit down")}
	service := NewOrderService(repo, audit)
	order := createTestOrder(t, service)

	err := service.Transition(context.Background(), TransitionInput{
		OrderID:    order.ID,
		NewStatus:  models.OrderStatusRejected,
		Comment:    "нет на складе",
		ActorID:    uuid.New(),
		ActorEmail: "admin@example.com",
	})
	if err != nil {
		t.Fatalf("ошибки best-effort шагов не должны проваливать переход: %v", err)
	}

	updated, _ := service.GetByOrderNumber(context.Background(), order.OrderNumber)
	if updated.Status != models.OrderStatusRejected {
		t.Fatalf("статус обязан быть записан несмотря на сбои остальных шагов")
	}
}

func TestOrderService_Transition_RequiredStepFails(t *testing.T) {
	repo := newMockOrderRepository()
	service := NewOrderService(repo, &mockAuditLogger{})
	order := createTestOrder(t, service)

	repo.updateStatusErr = errors.New("connection reset")

	err := service.Transition(context.Background(), TransitionInput{
		OrderID:    order.ID,
		NewStatus:  models.OrderStatusApproved,
		ActorID:    uuid.New(),
		ActorEmail: "admin@example.com",
	})
	if err == nil {
		t.Fatalf("ошибка основной записи статуса должна возвращаться вызывающему")
	}

	updated, _ := service.GetByOrderNumber(context.Background(), order.OrderNumber)
	if len(updated.StatusHistory) != 0 {
		t.Fatalf("история не должна пополняться, если статус не записан")
	}
}

func TestOrderService_Transition_HistoryConflictRetried(t *testing.T) {
	repo := newMockOrderRepository()
	repo.historyConflicts = 2
	service := NewOrderService(repo, &mockAuditLogger{})
	order := createTestOrder(t, service)

	err := service.Transition(context.Background(), TransitionInput{
		OrderID:    order.ID,
		NewStatus:  models.OrderStatusApproved,
		ActorID:    uuid.New(),
		ActorEmail: "admin@example.com",
	})
	if err != nil {
		t.Fatalf("transition вернул ошибку: %v", err)
	}

	updated, _ := service.GetByOrderNumber(context.Background(), order.OrderNumber)
	if len(updated.StatusHistory) != 1 {
		t.Fatalf("запись истории должна пройти после повторных попыток, получили %d записей", len(updated.StatusHistory))
	}
}

func TestOrderService_Transition_UnknownStatus(t *testing.T) {
	repo := newMockOrderRepository()
	service := NewOrderService(repo, &mockAuditLogger{})
	order := createTestOrder(t, service)

	err := service.Transition(context.Background(), TransitionInput{
		OrderID:   order.ID,
		NewStatus: "cancelled",
		ActorID:   uuid.New(),
	})
	if err == nil {
		t.Fatalf("ожидалась ошибка на неизвестный статус")
	}
}

func TestOrderService_Transition_OrderNotFound(t *testing.T) {
	repo := newMockOrderRepository()
	service := NewOrderService(repo, &mockAuditLogger{})

	err := service.Transition(context.Background(), TransitionInput{
		OrderID:   uuid.New(),
		NewStatus: models.OrderStatusApproved,
		ActorID:   uuid.New(),
	})
	if !errors.Is(err, repository.ErrOrderNotFound) {
		t.Fatalf("ожидалась ErrOrderNotFound, получили %v", err)
	}
}

func TestOrderService_GetByOrderNumber(t *testing.T) {
	repo := newMockOrderRepository()
	service := NewOrderService(repo, &mockAuditLogger{})
	order := createTestOrder(t, service)
	ctx := context.Background()

	found, err := service.GetByOrderNumber(ctx, order.OrderNumber)
	if err != nil {
		t.Fatalf("поиск по номеру вернул ошибку: %v", err)
	}
	if found.ID != order.ID {
		t.Fatalf("найден не тот заказ")
	}

	if _, err := service.GetByOrderNumber(ctx, "ORD-0-XXXXX"); !errors.Is(err, repository.ErrOrderNotFound) {
		t.Fatalf("ожидалась ErrOrderNotFound, получили %v", err)
	}

	if _, err := service.GetByOrderNumber(ctx, "  "); err == nil {
		t.Fatalf("пустой номер должен отклоняться")
	}
}

func TestOrderService_OrderNumbersUnique(t *testing.T) {
	repo := newMockOrderRepository()
	service := NewOrderService(repo, &mockAuditLogger{})
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		order, err := service.CreateOrder(ctx, validCreateInput())
		if err != nil {
			t.Fatalf("create вернул ошибку: %v", err)
		}
		if seen[order.OrderNumber] {
			t.Fatalf("номер %s сгенерирован дважды", order.OrderNumber)
		}
		seen[order.OrderNumber] = true
	}
}
