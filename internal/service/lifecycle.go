package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

// OrderUpdate is an admin edit. Nil fields are left as they are.
type OrderUpdate struct {
	ID     string
	Status *entities.OrderStatus
	// Force skips the transition table.
	Force bool

	PaymentStatus        *entities.PaymentStatus
	AWBNumber            *string
	CourierName          *string
	ShiprocketShipmentID *string
	ExpectedDeliveryDate *time.Time
	ShippedAt            *time.Time
	DeliveredAt          *time.Time
}

// UpdateOrder applies an admin edit. A status change is checked against the
// transition table unless forced, and shipped_at / delivered_at are stamped on
// first entry unless the edit sets them explicitly.
func (s *orderService) UpdateOrder(ctx context.Context, upd OrderUpdate) (entities.Order, error) {
	if strings.TrimSpace(upd.ID) == "" {
		return entities.Order{}, fmt.Errorf("%w: order id is required", entities.ErrInvalidInput)
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidInput, *upd.Status)
	}
	if upd.PaymentStatus != nil && !upd.PaymentStatus.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown payment status %q", entities.ErrInvalidInput, *upd.PaymentStatus)
	}

	now := s.now()
	patch := entities.OrderPatch{
		PaymentStatus:        upd.PaymentStatus,
		AWBNumber:            upd.AWBNumber,
		CourierName:          upd.CourierName,
		ShiprocketShipmentID: upd.ShiprocketShipmentID,
		ExpectedDeliveryDate: upd.ExpectedDeliveryDate,
		ShippedAt:            upd.ShippedAt,
		DeliveredAt:          upd.DeliveredAt,
		UpdatedAt:            &now,
	}

	if upd.Status == nil {
		order, err := s.repo.UpdateOrder(ctx, upd.ID, patch)
		if err != nil {
			return entities.Order{}, wrapUpdateErr(err)
		}
		return order, nil
	}

	current, err := s.repo.GetOrderByID(ctx, upd.ID)
	if err != nil {
		return entities.Order{}, err
	}
	if upd.Force {
		entities.ForceStatus(&patch, *upd.Status, now)
	} else {
		if err := entities.ApplyStatusTransition(&patch, current.Status, *upd.Status, now); err != nil {
			return entities.Order{}, err
		}
		// current мог прийти из кэша, UPDATE проверяет переход по самой строке
		patch.RequireTransition = true
	}

	order, err := s.repo.UpdateOrder(ctx, upd.ID, patch)
	if err != nil {
		return entities.Order{}, wrapUpdateErr(err)
	}
	s.publishStatusChange(ctx, current, order, SourceAdmin)
	return order, nil
}

// MarkShipped, MarkDelivered and Cancel are shortcuts used by the admin panel buttons.
func (s *orderService) MarkShipped(ctx context.Context, id string) (entities.Order, error) {
	return s.UpdateOrder(ctx, OrderUpdate{ID: id, Status: entities.Ptr(entities.StatusShipped)})
}

func (s *orderService) MarkDelivered(ctx context.Context, id string) (entities.Order, error) {
	return s.UpdateOrder(ctx, OrderUpdate{ID: id, Status: entities.Ptr(entities.StatusDelivered)})
}

func (s *orderService) Cancel(ctx context.Context, id string) (entities.Order, error) {
	return s.UpdateOrder(ctx, OrderUpdate{ID: id, Status: entities.Ptr(entities.StatusCancelled)})
}

func wrapUpdateErr(err error) error {
	if errors.Is(err, entities.ErrOrderNotFound) || errors.Is(err, entities.ErrInvalidTransition) {
		return err
	}
	return fmt.Errorf("failed to update order: %w", err)
}
