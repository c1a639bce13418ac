package entities

import "strings"

type PaymentEventType string

const (
	PaymentEventCaptured  PaymentEventType = "payment.captured"
	PaymentEventFailed    PaymentEventType = "payment.failed"
	PaymentEventOrderPaid PaymentEventType = "order.paid"
)

// NormalizePaymentEvent maps a gateway event name onto the internal vocabulary.
// The second result is false for events the service does not act on.
func NormalizePaymentEvent(name string) (PaymentEventType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "payment.captured", "payment_intent.succeeded", "charge.succeeded":
		return PaymentEventCaptured, true
	case "payment.failed", "payment_intent.payment_failed", "charge.failed":
		return PaymentEventFailed, true
	case "order.paid":
		return PaymentEventOrderPaid, true
	}
	return "", false
}

// PaymentStatus returns the payment status an event leads to.
func (e PaymentEventType) PaymentStatus() PaymentStatus {
	if e == PaymentEventFailed {
		return PaymentFailed
	}
	return PaymentPaid
}
