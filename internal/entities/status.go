package entities

import "strings"

type OrderStatus string

const (
	StatusProcessing      OrderStatus = "processing"
	StatusReadyToShip     OrderStatus = "ready_to_ship"
	StatusShipped         OrderStatus = "shipped"
	StatusOutForDelivery  OrderStatus = "out_for_delivery"
	StatusDelivered       OrderStatus = "delivered"
	StatusReturnInTransit OrderStatus = "return_in_transit"
	StatusReturned        OrderStatus = "returned"
	StatusCancelled       OrderStatus = "cancelled"
	StatusLost            OrderStatus = "lost"
	StatusDamaged         OrderStatus = "damaged"
)

var allStatuses = []OrderStatus{
	StatusProcessing,
	StatusReadyToShip,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusReturnInTransit,
	StatusReturned,
	StatusCancelled,
	StatusLost,
	StatusDamaged,
}

func AllStatuses() []OrderStatus {
	out := make([]OrderStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s OrderStatus) String() string {
	return string(s)
}

// IsTerminal reports whether no further carrier-driven transition is expected.
func (s OrderStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

// Статусы Shiprocket. Ключи в верхнем регистре.
var carrierStatuses = map[string]OrderStatus{
	"PICKUP SCHEDULED": StatusReadyToShip,
	"PICKUP GENERATED": StatusReadyToShip,
	"OUT FOR PICKUP":   StatusReadyToShip,

	"PICKED UP":  StatusShipped,
	"SHIPPED":    StatusShipped,
	"IN TRANSIT": StatusShipped,

	"OUT FOR DELIVERY": StatusOutForDelivery,
	"DELIVERED":        StatusDelivered,

	"RTO INITIATED":  StatusReturnInTransit,
	"RTO IN TRANSIT": StatusReturnInTransit,
	"RTO DELIVERED":  StatusReturned,

	"CANCELLED": StatusCancelled,
	"CANCELED":  StatusCancelled,
	"LOST":      StatusLost,
	"DAMAGED":   StatusDamaged,
}

// MapCarrierStatus maps a free-text carrier status onto the internal order status.
// Unknown strings map to processing.
func MapCarrierStatus(raw string) OrderStatus {
	if status, ok := carrierStatuses[strings.ToUpper(strings.TrimSpace(raw))]; ok {
		return status
	}
	return StatusProcessing
}
