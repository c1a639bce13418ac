package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          string
	OrderNumber string

	Status           OrderStatus
	PaymentStatus    PaymentStatus
	ShiprocketStatus string

	AWBNumber            string
	CourierName          string
	ShiprocketShipmentID string

	PaymentOrderID string
	PaymentID      string
	TotalAmount    decimal.Decimal
	Currency       string

	// не разбираем, только отдаем в админку как есть
	LineItems       json.RawMessage
	ShippingAddress json.RawMessage

	CreatedAt            time.Time
	UpdatedAt            *time.Time
	ShippedAt            *time.Time
	DeliveredAt          *time.Time
	ExpectedDeliveryDate *time.Time
}

// OrderPatch is a single-row update. Nil fields are not touched.
type OrderPatch struct {
	Status               *OrderStatus
	PaymentStatus        *PaymentStatus
	ShiprocketStatus     *string
	ShiprocketShipmentID *string
	PaymentOrderID       *string
	PaymentID            *string
	ExpectedDeliveryDate *time.Time

	AWBNumber   *string
	CourierName *string
	ShippedAt   *time.Time
	DeliveredAt *time.Time

	// Written only when the column is currently NULL.
	AWBNumberIfNull   *string
	CourierNameIfNull *string
	ShippedAtIfNull   *time.Time
	DeliveredAtIfNull *time.Time

	UpdatedAt *time.Time

	// Conditions checked by the UPDATE itself against the stored row.

	// GuardTransition applies Status and the transition stamps only when the
	// stored status may move to Status. Other fields are written regardless.
	GuardTransition bool
	// RequireTransition rejects the whole update with ErrInvalidTransition when
	// the stored status may not move to Status.
	RequireTransition bool
	// KeepPaid rejects the whole update with ErrAlreadyPaid when the stored
	// payment status is paid.
	KeepPaid bool
}

// IsEmpty reports whether the patch changes no column. Conditions alone do not count.
func (p OrderPatch) IsEmpty() bool {
	p.GuardTransition, p.RequireTransition, p.KeepPaid = false, false, false
	return p == OrderPatch{}
}

type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	Limit         uint64
	Offset        uint64
}

const (
	WebhookOutcomeSuccess = "success"
	WebhookOutcomeFailed  = "failed"
)

// ShipmentWebhookLog is an append-only audit record of an inbound carrier update.
type ShipmentWebhookLog struct {
	OrderID   string
	Source    string
	Payload   json.RawMessage
	Outcome   string
	Error     string
	CreatedAt time.Time
}

type PaymentEvent struct {
	EventID   string
	OrderID   string
	Type      PaymentEventType
	CreatedAt time.Time
}

func Ptr[T any](v T) *T {
	return &v
}
