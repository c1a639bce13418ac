package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

const (
	SourceWebhook = "webhook"
	SourceKafka   = "kafka"
	SourceSync    = "sync"
	SourceAdmin   = "admin"
)

// ShipmentUpdate is a carrier notification about one shipment.
type ShipmentUpdate struct {
	OrderNumber      string
	AWB              string
	CourierName      string
	Status           string
	ExpectedDelivery *time.Time
	Source           string
	Payload          json.RawMessage
}

type ShipmentResult struct {
	Order          entities.Order
	PreviousStatus entities.OrderStatus
	// StatusApplied is false when the transition table rejected the carrier status.
	StatusApplied bool
}

// ApplyShipmentUpdate reconciles a carrier update with the stored order.
// Every attempt that reaches an order is written to the webhook audit log.
func (s *orderService) ApplyShipmentUpdate(ctx context.Context, upd ShipmentUpdate) (ShipmentResult, error) {
	upd.OrderNumber = strings.TrimSpace(upd.OrderNumber)
	upd.AWB = strings.TrimSpace(upd.AWB)
	if upd.OrderNumber == "" && upd.AWB == "" {
		return ShipmentResult{}, fmt.Errorf("%w: order id or awb is required", entities.ErrInvalidInput)
	}
	if strings.TrimSpace(upd.Status) == "" {
		return ShipmentResult{}, fmt.Errorf("%w: shipment status is required", entities.ErrInvalidInput)
	}
	if upd.Source == "" {
		upd.Source = SourceWebhook
	}

	logger := s.logger.With(
		slog.String("order_number", upd.OrderNumber),
		slog.String("awb", upd.AWB),
		slog.String("source", upd.Source),
	)

	order, err := s.resolveShipmentOrder(ctx, upd)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			logger.Info("no order for shipment update")
			s.auditShipment(ctx, "", upd, err)
		}
		return ShipmentResult{}, err
	}

	now := s.now()
	mapped := entities.MapCarrierStatus(upd.Status)
	patch := entities.OrderPatch{
		ShiprocketStatus:     &upd.Status,
		ExpectedDeliveryDate: upd.ExpectedDelivery,
		UpdatedAt:            &now,
	}
	if upd.AWB != "" {
		patch.AWBNumberIfNull = &upd.AWB
	}
	if upd.CourierName != "" {
		patch.CourierNameIfNull = &upd.CourierName
	}

	applied := true
	if err := entities.ApplyStatusTransition(&patch, order.Status, mapped, now); err != nil {
		// сырой статус перевозчика все равно сохраняем
		applied = false
		logger.Warn("carrier status rejected",
			slog.String("order_id", order.ID),
			slog.String("raw_status", upd.Status),
			slog.Any("error", err),
		)
	} else {
		// строка могла измениться после чтения, переход перепроверяет UPDATE
		patch.GuardTransition = true
	}

	updated, err := s.repo.UpdateOrder(ctx, order.ID, patch)
	if err != nil {
		s.auditShipment(ctx, order.ID, upd, err)
		return ShipmentResult{}, fmt.Errorf("failed to update order: %w", err)
	}
	if applied && updated.Status != mapped {
		applied = false
		logger.Warn("carrier status rejected by stored status",
			slog.String("order_id", order.ID),
			slog.String("raw_status", upd.Status),
			slog.String("stored_status", string(updated.Status)),
		)
	}
	s.auditShipment(ctx, order.ID, upd, nil)
	if applied {
		s.publishStatusChange(ctx, order, updated, upd.Source)
	}

	logger.Debug("shipment update applied",
		slog.String("order_id", updated.ID),
		slog.String("status", string(updated.Status)),
	)
	return ShipmentResult{Order: updated, PreviousStatus: order.Status, StatusApplied: applied}, nil
}

// resolveShipmentOrder prefers the order number and falls back to the AWB.
func (s *orderService) resolveShipmentOrder(ctx context.Context, upd ShipmentUpdate) (entities.Order, error) {
	if upd.OrderNumber != "" {
		order, err := s.repo.GetOrderByNumber(ctx, upd.OrderNumber)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, fmt.Errorf("failed to get order by number: %w", err)
		}
	}
	if upd.AWB == "" {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	order, err := s.repo.GetOrderByAWB(ctx, upd.AWB)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, err
		}
		return entities.Order{}, fmt.Errorf("failed to get order by awb: %w", err)
	}
	return order, nil
}

func (s *orderService) auditShipment(ctx context.Context, orderID string, upd ShipmentUpdate, cause error) {
	entry := entities.ShipmentWebhookLog{
		OrderID:   orderID,
		Source:    upd.Source,
		Payload:   upd.Payload,
		Outcome:   entities.WebhookOutcomeSuccess,
		CreatedAt: s.now(),
	}
	if cause != nil {
		entry.Outcome = entities.WebhookOutcomeFailed
		entry.Error = cause.Error()
	}
	if len(entry.Payload) == 0 {
		entry.Payload = json.RawMessage("{}")
	}
	if err := s.repo.SaveShipmentWebhookLog(ctx, entry); err != nil {
		s.logger.Warn("failed to save shipment webhook log",
			slog.String("order_id", orderID),
			slog.Any("error", err),
		)
	}
}

// SyncShipment pulls the current tracking state from the carrier and applies it
// like any other shipment update.
func (s *orderService) SyncShipment(ctx context.Context, orderID string) (ShipmentResult, error) {
	if strings.TrimSpace(orderID) == "" {
		return ShipmentResult{}, fmt.Errorf("%w: order id is required", entities.ErrInvalidInput)
	}
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return ShipmentResult{}, err
	}
	if order.AWBNumber == "" {
		return ShipmentResult{}, entities.ErrNoShipment
	}

	tracking, err := s.tracker.TrackByAWB(ctx, order.AWBNumber)
	if err != nil {
		return ShipmentResult{}, fmt.Errorf("failed to track shipment: %w", err)
	}
	if tracking.CurrentStatus == "" {
		return ShipmentResult{}, fmt.Errorf("carrier returned no status for awb %s", order.AWBNumber)
	}

	return s.ApplyShipmentUpdate(ctx, ShipmentUpdate{
		OrderNumber:      order.OrderNumber,
		AWB:              order.AWBNumber,
		CourierName:      tracking.CourierName,
		Status:           tracking.CurrentStatus,
		ExpectedDelivery: tracking.ExpectedDelivery,
		Source:           SourceSync,
		Payload:          tracking.Raw,
	})
}
