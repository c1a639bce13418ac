package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
)

func (s *orderService) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Order{}, fmt.Errorf("%w: order id is required", entities.ErrInvalidInput)
	}
	return s.repo.GetOrderByID(ctx, id)
}

func (s *orderService) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidInput, filter.Status)
	}
	if filter.PaymentStatus != "" && !filter.PaymentStatus.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", entities.ErrInvalidInput, filter.PaymentStatus)
	}
	orders, err := s.repo.ListOrders(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
