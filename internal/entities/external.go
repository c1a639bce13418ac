package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// StatusChange is published after an order status actually changed.
type StatusChange struct {
	EventID     string
	OrderID     string
	OrderNumber string
	OldStatus   OrderStatus
	NewStatus   OrderStatus
	Source      string
	ChangedAt   time.Time
}

// Tracking is the carrier's current view of a shipment.
type Tracking struct {
	AWB              string
	CourierName      string
	CurrentStatus    string
	ExpectedDelivery *time.Time
	Raw              json.RawMessage
}

type PaymentOrderRequest struct {
	Receipt  string
	Amount   decimal.Decimal
	Currency string
	Notes    map[string]string
}

type PaymentOrder struct {
	ID          string
	AmountMinor int64
	Currency    string
	Status      string
}

// PaymentWebhook is a verified gateway notification.
type PaymentWebhook struct {
	EventID        string
	Event          string
	PaymentOrderID string
	PaymentID      string
}
