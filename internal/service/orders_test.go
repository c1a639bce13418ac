package service_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_ListOrders(t *testing.T) {
	deps, d := newTestService(t)
	filter := entities.OrderFilter{Status: entities.StatusShipped, Limit: 10}
	d.repo.EXPECT().ListOrders(mock.Anything, filter).Return([]entities.Order{{ID: "o1"}}, nil)

	svc := service.NewOrderService(discardLogger(), deps)
	orders, err := svc.ListOrders(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	_, err = svc.ListOrders(context.Background(), entities.OrderFilter{Status: "bogus"})
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestOrderService_GetOrder(t *testing.T) {
	deps, d := newTestService(t)
	d.repo.EXPECT().GetOrderByID(mock.Anything, "missing").Return(entities.Order{}, entities.ErrOrderNotFound)

	svc := service.NewOrderService(discardLogger(), deps)
	_, err := svc.GetOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)

	_, err = svc.GetOrder(context.Background(), " ")
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}
