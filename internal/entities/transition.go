package entities

import (
	"fmt"
	"time"
)

// transitions lists the allowed next statuses. Terminal statuses have none.
var transitions = map[OrderStatus][]OrderStatus{
	StatusProcessing: {
		StatusReadyToShip, StatusShipped, StatusOutForDelivery, StatusDelivered,
		StatusCancelled, StatusLost, StatusDamaged,
	},
	StatusReadyToShip: {
		StatusShipped, StatusOutForDelivery, StatusDelivered,
		StatusCancelled, StatusLost, StatusDamaged,
	},
	StatusShipped: {
		StatusOutForDelivery, StatusDelivered, StatusReturnInTransit,
		StatusLost, StatusDamaged,
	},
	StatusOutForDelivery: {
		StatusShipped, StatusDelivered, StatusReturnInTransit,
		StatusLost, StatusDamaged,
	},
	StatusReturnInTransit: {StatusReturned, StatusLost, StatusDamaged},
	StatusDamaged:         {StatusReturnInTransit, StatusReturned},
	StatusDelivered:       {},
	StatusReturned:        {},
	StatusCancelled:       {},
	StatusLost:            {},
}

// CanTransition reports whether an order may move from one status to another.
// Staying in the same status is always allowed.
func CanTransition(from, to OrderStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedFrom lists every status that may move to the given one, itself included.
func AllowedFrom(to OrderStatus) []OrderStatus {
	var out []OrderStatus
	for _, from := range allStatuses {
		if CanTransition(from, to) {
			out = append(out, from)
		}
	}
	return out
}

// ApplyStatusTransition adds a status change to the patch. Reaching shipped or
// delivered also stamps shipped_at / delivered_at with at, but only if the
// column is still empty. The patch is left untouched on error.
func ApplyStatusTransition(patch *OrderPatch, from, to OrderStatus, at time.Time) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	ForceStatus(patch, to, at)
	return nil
}

// ForceStatus sets the status without consulting the transition table.
// Timestamps are stamped the same way as in ApplyStatusTransition.
func ForceStatus(patch *OrderPatch, to OrderStatus, at time.Time) {
	patch.Status = Ptr(to)
	switch to {
	case StatusShipped:
		if patch.ShippedAt == nil {
			patch.ShippedAtIfNull = Ptr(at)
		}
	case StatusDelivered:
		if patch.DeliveredAt == nil {
			patch.DeliveredAtIfNull = Ptr(at)
		}
	}
}
