package entities

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyPaid       = errors.New("order already paid")
	ErrNoShipment        = errors.New("order has no shipment")
	ErrNotDelivered      = errors.New("order is not delivered")
	ErrDeliveryDateSet   = errors.New("delivery date already set")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrDuplicateEvent    = errors.New("duplicate event")
)
