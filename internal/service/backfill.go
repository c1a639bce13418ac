package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

type BackfillReport struct {
	Fixed int `json:"fixed"`
	Total int `json:"total"`
}

// FindMissingDeliveryDates lists delivered orders whose delivered_at was never recorded.
func (s *orderService) FindMissingDeliveryDates(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repo.ListDeliveredWithoutDeliveredAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// FixDeliveryDate repairs one delivered order. The date defaults to now.
// shipped_at is filled with the same value when it is missing too.
func (s *orderService) FixDeliveryDate(ctx context.Context, orderID string, deliveredAt *time.Time) (entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return entities.Order{}, fmt.Errorf("%w: order id is required", entities.ErrInvalidInput)
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status != entities.StatusDelivered {
		return entities.Order{}, fmt.Errorf("%w: status is %s", entities.ErrNotDelivered, order.Status)
	}
	if order.DeliveredAt != nil {
		return entities.Order{}, entities.ErrDeliveryDateSet
	}

	date := s.now()
	if deliveredAt != nil {
		date = deliveredAt.UTC()
	}

	fixed, err := s.repo.UpdateOrder(ctx, orderID, deliveryRepair(date))
	if err != nil {
		return entities.Order{}, wrapUpdateErr(err)
	}
	s.logger.Info("delivery date fixed",
		slog.String("order_id", orderID),
		slog.Time("delivered_at", date),
	)
	return fixed, nil
}

// FixAllDeliveryDates repairs every delivered order missing delivered_at,
// using the last update time (or creation time) as the best estimate.
// Failures are logged and skipped.
func (s *orderService) FixAllDeliveryDates(ctx context.Context) (BackfillReport, error) {
	orders, err := s.FindMissingDeliveryDates(ctx)
	if err != nil {
		return BackfillReport{}, err
	}

	report := BackfillReport{Total: len(orders)}
	for _, order := range orders {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		date := order.CreatedAt
		if order.UpdatedAt != nil {
			date = *order.UpdatedAt
		}

		if _, err := s.repo.UpdateOrder(ctx, order.ID, deliveryRepair(date)); err != nil {
			s.logger.Error("failed to fix delivery date",
				slog.String("order_id", order.ID),
				slog.Any("error", err),
			)
			continue
		}
		report.Fixed++
	}

	s.logger.Info("delivery dates backfilled",
		slog.Int("fixed", report.Fixed),
		slog.Int("total", report.Total),
	)
	return report, nil
}

// updated_at is not touched, the repair is not a business change
func deliveryRepair(date time.Time) entities.OrderPatch {
	return entities.OrderPatch{
		DeliveredAtIfNull: &date,
		ShippedAtIfNull:   &date,
	}
}
