package models

// Статусы заказа.
const (
	OrderStatusPending   = "pending"
	OrderStatusApproved  = "approved"
	OrderStatusRejected  = "rejected"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
)

// OrderStatuses список допустимых статусов заказа.
var OrderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusApproved:  true,
	OrderStatusRejected:  true,
	OrderStatusShipped:   true,
	OrderStatusCompleted: true,
}

// OfferedTransitions описывает переходы, которые предлагает админка.
// Операция смены статуса их не навязывает: любой переход принимается,
// но переход вне этой таблицы логируется предупреждением.
var OfferedTransitions = map[string][]string{
	OrderStatusPending:  {OrderStatusApproved, OrderStatusRejected},
	OrderStatusApproved: {OrderStatusShipped},
	OrderStatusShipped:  {OrderStatusCompleted},
}

// IsOfferedTransition сообщает, предлагает ли админка переход from → to.
func IsOfferedTransition(from, to string) bool {
	for _, s := range OfferedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Способы оплаты.
const (
	PaymentMethodCard     = "card"
	PaymentMethodGiftCard = "gift_card"
	PaymentMethodCrypto   = "crypto"
)

// PaymentMethods список допустимых способов оплаты.
var PaymentMethods = map[string]bool{
	PaymentMethodCard:     true,
	PaymentMethodGiftCard: true,
	PaymentMethodCrypto:   true,
}

// Типы позиций заказа.
const (
	ItemTypeFanCard     = "fan_card"
	ItemTypeMerchandise = "merchandise"
	ItemTypeBook        = "book"
	ItemTypeTicket      = "ticket"
)

// Статусы продажи билетов на выступления.
const (
	TicketStatusAvailable = "available"
	TicketStatusLow       = "low_tickets"
	TicketStatusSoldOut   = "sold_out"
)

var TicketStatuses = map[string]bool{
	TicketStatusAvailable: true,
	TicketStatusLow:       true,
	TicketStatusSoldOut:   true,
}

// Статусы заявок на предпродажу.
const (
	PresaleStatusPending   = "pending"
	PresaleStatusFulfilled = "fulfilled"
	PresaleStatusRejected  = "rejected"
)

var PresaleStatuses = map[string]bool{
	PresaleStatusPending:   true,
	PresaleStatusFulfilled: true,
	PresaleStatusRejected:  true,
}

// Типы клубных карт.
const (
	CardTypeSilver   = "silver"
	CardTypeGold     = "gold"
	CardTypePlatinum = "platinum"
)

var CardTypes = map[string]bool{
	CardTypeSilver:   true,
	CardTypeGold:     true,
	CardTypePlatinum: true,
}

// Статусы заявок на клубные карты.
const (
	CardStatusPending  = "pending"
	CardStatusApproved = "approved"
	CardStatusRejected = "rejected"
)

var CardStatuses = map[string]bool{
	CardStatusPending:  true,
	CardStatusApproved: true,
	CardStatusRejected: true,
}
