package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

const defaultCurrency = "INR"

type PaymentIntent struct {
	OrderID        string
	PaymentOrderID string
	AmountMinor    int64
	Currency       string
	KeyID          string
}

type PaymentWebhookResult struct {
	Event entities.PaymentEventType
	Order entities.Order
	// Ignored is set for gateway events outside the supported vocabulary.
	Ignored   bool
	Duplicate bool
}

// CreatePaymentIntent opens a gateway order for the order total and remembers its id.
func (s *orderService) CreatePaymentIntent(ctx context.Context, orderID string) (PaymentIntent, error) {
	if strings.TrimSpace(orderID) == "" {
		return PaymentIntent{}, fmt.Errorf("%w: order id is required", entities.ErrInvalidInput)
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return PaymentIntent{}, err
	}
	if order.PaymentStatus == entities.PaymentPaid {
		return PaymentIntent{}, entities.ErrAlreadyPaid
	}
	if !order.TotalAmount.IsPositive() {
		return PaymentIntent{}, fmt.Errorf("%w: order total must be positive", entities.ErrInvalidInput)
	}

	currency := order.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	remote, err := s.gateway.CreatePaymentOrder(ctx, entities.PaymentOrderRequest{
		Receipt:  order.OrderNumber,
		Amount:   order.TotalAmount,
		Currency: currency,
		Notes:    map[string]string{"order_id": order.ID},
	})
	if err != nil {
		return PaymentIntent{}, fmt.Errorf("failed to create payment order: %w", err)
	}

	now := s.now()
	patch := entities.OrderPatch{
		PaymentOrderID: &remote.ID,
		UpdatedAt:      &now,
	}
	if order.PaymentStatus == "" {
		patch.PaymentStatus = entities.Ptr(entities.PaymentPending)
	}
	if _, err := s.repo.UpdateOrder(ctx, order.ID, patch); err != nil {
		return PaymentIntent{}, wrapUpdateErr(err)
	}

	return PaymentIntent{
		OrderID:        order.ID,
		PaymentOrderID: remote.ID,
		AmountMinor:    remote.AmountMinor,
		Currency:       remote.Currency,
		KeyID:          s.gateway.KeyID(),
	}, nil
}

// HandlePaymentWebhook verifies and applies a gateway notification. The event id
// is recorded in the same transaction as the payment status, so a redelivered
// event is a no-op. A paid order is never moved back to failed.
func (s *orderService) HandlePaymentWebhook(ctx context.Context, body []byte, signature string) (PaymentWebhookResult, error) {
	hook, err := s.gateway.ParseWebhook(body, signature)
	if err != nil {
		return PaymentWebhookResult{}, err
	}

	eventType, ok := entities.NormalizePaymentEvent(hook.Event)
	if !ok {
		s.logger.Debug("payment event ignored", slog.String("event", hook.Event))
		return PaymentWebhookResult{Ignored: true}, nil
	}
	if hook.PaymentOrderID == "" {
		return PaymentWebhookResult{}, fmt.Errorf("%w: payment order id is missing", entities.ErrInvalidInput)
	}

	order, err := s.repo.GetOrderByPaymentOrderID(ctx, hook.PaymentOrderID)
	if err != nil {
		return PaymentWebhookResult{}, err
	}

	result := PaymentWebhookResult{Event: eventType, Order: order}
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		event := entities.PaymentEvent{
			EventID:   hook.EventID,
			OrderID:   order.ID,
			Type:      eventType,
			CreatedAt: s.now(),
		}
		if err := s.repo.SavePaymentEvent(ctx, event); err != nil {
			return err
		}

		status := eventType.PaymentStatus()
		now := s.now()
		patch := entities.OrderPatch{
			PaymentStatus: &status,
			UpdatedAt:     &now,
			// paid проверяется самим UPDATE, а не по прочитанной выше строке
			KeepPaid: status != entities.PaymentPaid,
		}
		if hook.PaymentID != "" {
			patch.PaymentID = &hook.PaymentID
		}
		updated, err := s.repo.UpdateOrder(ctx, order.ID, patch)
		if errors.Is(err, entities.ErrAlreadyPaid) {
			s.logger.Warn("payment failure after capture ignored",
				slog.String("order_id", order.ID),
				slog.String("event_id", hook.EventID),
			)
			if updated, err = s.repo.GetOrderByID(ctx, order.ID); err != nil {
				return fmt.Errorf("failed to get order: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to update payment status: %w", err)
		}
		result.Order = updated
		return nil
	})
	if errors.Is(err, entities.ErrDuplicateEvent) {
		s.logger.Info("duplicate payment event", slog.String("event_id", hook.EventID))
		result.Duplicate = true
		return result, nil
	}
	if err != nil {
		return PaymentWebhookResult{}, err
	}

	s.logger.Info("payment event applied",
		slog.String("order_id", order.ID),
		slog.String("event", string(eventType)),
		slog.String("payment_status", string(result.Order.PaymentStatus)),
	)
	return result, nil
}
