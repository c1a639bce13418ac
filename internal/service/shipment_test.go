package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/storefront-orders/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	repo      *mocks.MockOrderRepo
	publisher *mocks.MockStatusPublisher
	tracker   *mocks.MockTracker
	gateway   *mocks.MockPaymentGateway
	txManager *txMocks.MockManager
}

func newTestService(t *testing.T) (service.Deps, testDeps) {
	d := testDeps{
		repo:      mocks.NewMockOrderRepo(t),
		publisher: mocks.NewMockStatusPublisher(t),
		tracker:   mocks.NewMockTracker(t),
		gateway:   mocks.NewMockPaymentGateway(t),
		txManager: txMocks.NewMockManager(t),
	}
	deps := service.Deps{
		Repo:      d.repo,
		TxManager: d.txManager,
		Publisher: d.publisher,
		Tracker:   d.tracker,
		Gateway:   d.gateway,
		Now:       func() time.Time { return testNow },
	}
	return deps, d
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderService_ApplyShipmentUpdate(t *testing.T) {
	type MockBehavior func(d testDeps)

	dbError := errors.New("db error")
	shipped := entities.Order{ID: "o1", OrderNumber: "ORD1", Status: entities.StatusShipped}

	testCases := []struct {
		name         string
		update       service.ShipmentUpdate
		mockBehavior MockBehavior
		wantStatus   entities.OrderStatus
		wantApplied  bool
		wantErr      error
	}{
		{
			name:   "delivered stamps delivered_at",
			update: service.ShipmentUpdate{OrderNumber: "ORD1", AWB: "AWB1", CourierName: "Delhivery", Status: "Delivered"},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(shipped, nil)
				d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.MatchedBy(func(p entities.OrderPatch) bool {
					return *p.Status == entities.StatusDelivered && p.GuardTransition &&
						p.DeliveredAtIfNull.Equal(testNow) &&
						p.ShippedAtIfNull == nil &&
						*p.ShiprocketStatus == "Delivered" &&
						*p.AWBNumberIfNull == "AWB1" &&
						*p.CourierNameIfNull == "Delhivery" &&
						p.UpdatedAt.Equal(testNow)
				})).Return(entities.Order{ID: "o1", Status: entities.StatusDelivered}, nil)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.MatchedBy(func(l entities.ShipmentWebhookLog) bool {
					return l.OrderID == "o1" && l.Outcome == entities.WebhookOutcomeSuccess
				})).Return(nil)
				d.publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.MatchedBy(func(c entities.StatusChange) bool {
					return c.OldStatus == entities.StatusShipped && c.NewStatus == entities.StatusDelivered && c.Source == service.SourceWebhook
				})).Return(nil)
			},
			wantStatus:  entities.StatusDelivered,
			wantApplied: true,
		},
		{
			name:   "order number takes precedence over unknown awb",
			update: service.ShipmentUpdate{OrderNumber: "ORD1", AWB: "NOPE", Status: "IN TRANSIT"},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(shipped, nil)
				d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.Anything).Return(shipped, nil)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus:  entities.StatusShipped,
			wantApplied: true,
		},
		{
			name:   "falls back to awb",
			update: service.ShipmentUpdate{OrderNumber: "ORD404", AWB: "AWB1", Status: "PICKED UP"},
			mockBehavior: func(d testDeps) {
				processing := entities.Order{ID: "o2", Status: entities.StatusProcessing}
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD404").Return(entities.Order{}, entities.ErrOrderNotFound)
				d.repo.EXPECT().GetOrderByAWB(mock.Anything, "AWB1").Return(processing, nil)
				d.repo.EXPECT().UpdateOrder(mock.Anything, "o2", mock.MatchedBy(func(p entities.OrderPatch) bool {
					return *p.Status == entities.StatusShipped && p.ShippedAtIfNull.Equal(testNow)
				})).Return(entities.Order{ID: "o2", Status: entities.StatusShipped}, nil)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.Anything).Return(nil)
				d.publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus:  entities.StatusShipped,
			wantApplied: true,
		},
		{
			name:   "not found by number nor awb",
			update: service.ShipmentUpdate{OrderNumber: "ORD123", AWB: "AWB999", Status: "DELIVERED"},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD123").Return(entities.Order{}, entities.ErrOrderNotFound)
				d.repo.EXPECT().GetOrderByAWB(mock.Anything, "AWB999").Return(entities.Order{}, entities.ErrOrderNotFound)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.MatchedBy(func(l entities.ShipmentWebhookLog) bool {
					return l.OrderID == "" && l.Outcome == entities.WebhookOutcomeFailed
				})).Return(nil)
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name:   "rejected transition keeps status but mirrors raw status",
			update: service.ShipmentUpdate{OrderNumber: "ORD1", Status: "something new"},
			mockBehavior: func(d testDeps) {
				delivered := entities.Order{ID: "o1", Status: entities.StatusDelivered}
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(delivered, nil)
				d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.MatchedBy(func(p entities.OrderPatch) bool {
					return p.Status == nil && !p.GuardTransition && *p.ShiprocketStatus == "something new"
				})).Return(delivered, nil)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus:  entities.StatusDelivered,
			wantApplied: false,
		},
		{
			name:   "stored status moved past the read one",
			update: service.ShipmentUpdate{OrderNumber: "ORD1", AWB: "AWB1", Status: "OUT FOR DELIVERY"},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(shipped, nil)
				d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.MatchedBy(func(p entities.OrderPatch) bool {
					return p.GuardTransition && *p.Status == entities.StatusOutForDelivery &&
						*p.ShiprocketStatus == "OUT FOR DELIVERY"
				})).Return(entities.Order{ID: "o1", Status: entities.StatusDelivered}, nil)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus:  entities.StatusDelivered,
			wantApplied: false,
		},
		{
			name:   "expected delivery date is always overwritten",
			update: service.ShipmentUpdate{OrderNumber: "ORD1", Status: "IN TRANSIT", ExpectedDelivery: entities.Ptr(testNow.Add(72 * time.Hour))},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(shipped, nil)
				d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.MatchedBy(func(p entities.OrderPatch) bool {
					return p.ExpectedDeliveryDate != nil && p.ExpectedDeliveryDate.Equal(testNow.Add(72*time.Hour))
				})).Return(shipped, nil)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.Anything).Return(nil)
			},
			wantStatus:  entities.StatusShipped,
			wantApplied: true,
		},
		{
			name:   "update failure is reported and audited",
			update: service.ShipmentUpdate{OrderNumber: "ORD1", Status: "DELIVERED"},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(shipped, nil)
				d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.Anything).Return(entities.Order{}, dbError)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.MatchedBy(func(l entities.ShipmentWebhookLog) bool {
					return l.Outcome == entities.WebhookOutcomeFailed && l.Error == "db error"
				})).Return(nil)
			},
			wantErr: dbError,
		},
		{
			name:   "audit failure is not escalated",
			update: service.ShipmentUpdate{OrderNumber: "ORD1", Status: "IN TRANSIT"},
			mockBehavior: func(d testDeps) {
				d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(shipped, nil)
				d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.Anything).Return(shipped, nil)
				d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.Anything).Return(dbError)
			},
			wantStatus:  entities.StatusShipped,
			wantApplied: true,
		},
		{
			name:         "missing identifiers",
			update:       service.ShipmentUpdate{Status: "DELIVERED"},
			mockBehavior: func(d testDeps) {},
			wantErr:      entities.ErrInvalidInput,
		},
		{
			name:         "missing status",
			update:       service.ShipmentUpdate{OrderNumber: "ORD1"},
			mockBehavior: func(d testDeps) {},
			wantErr:      entities.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, d := newTestService(t)
			tc.mockBehavior(d)
			svc := service.NewOrderService(discardLogger(), deps)

			res, err := svc.ApplyShipmentUpdate(context.Background(), tc.update)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, res.Order.Status)
			assert.Equal(t, tc.wantApplied, res.StatusApplied)
		})
	}
}

// The store enforces "only if null", so the second delivery leaves delivered_at alone.
func TestOrderService_ApplyShipmentUpdate_Redelivery(t *testing.T) {
	deps, d := newTestService(t)
	first := testNow.Add(-time.Hour)
	order := entities.Order{ID: "o1", OrderNumber: "ORD1", Status: entities.StatusShipped}

	d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(order, nil).Once()
	d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").
		Return(entities.Order{ID: "o1", Status: entities.StatusDelivered, DeliveredAt: &first}, nil).Once()
	d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.MatchedBy(func(p entities.OrderPatch) bool {
		return *p.Status == entities.StatusDelivered && p.DeliveredAtIfNull != nil && p.DeliveredAt == nil
	})).Return(entities.Order{ID: "o1", Status: entities.StatusDelivered, DeliveredAt: &first}, nil).Twice()
	d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.Anything).Return(nil).Twice()
	d.publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil).Once()

	svc := service.NewOrderService(discardLogger(), deps)
	upd := service.ShipmentUpdate{OrderNumber: "ORD1", Status: "DELIVERED"}

	res, err := svc.ApplyShipmentUpdate(context.Background(), upd)
	require.NoError(t, err)
	assert.Equal(t, first, *res.Order.DeliveredAt)

	res, err = svc.ApplyShipmentUpdate(context.Background(), upd)
	require.NoError(t, err)
	assert.True(t, res.StatusApplied)
	assert.Equal(t, first, *res.Order.DeliveredAt)
}

func TestOrderService_SyncShipment(t *testing.T) {
	t.Run("applies carrier tracking", func(t *testing.T) {
		deps, d := newTestService(t)
		order := entities.Order{ID: "o1", OrderNumber: "ORD1", AWBNumber: "AWB1", Status: entities.StatusShipped}
		edd := testNow.Add(24 * time.Hour)

		d.repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(order, nil)
		d.tracker.EXPECT().TrackByAWB(mock.Anything, "AWB1").
			Return(entities.Tracking{AWB: "AWB1", CurrentStatus: "OUT FOR DELIVERY", ExpectedDelivery: &edd}, nil)
		d.repo.EXPECT().GetOrderByNumber(mock.Anything, "ORD1").Return(order, nil)
		d.repo.EXPECT().UpdateOrder(mock.Anything, "o1", mock.MatchedBy(func(p entities.OrderPatch) bool {
			return *p.Status == entities.StatusOutForDelivery && p.ExpectedDeliveryDate.Equal(edd)
		})).Return(entities.Order{ID: "o1", Status: entities.StatusOutForDelivery}, nil)
		d.repo.EXPECT().SaveShipmentWebhookLog(mock.Anything, mock.MatchedBy(func(l entities.ShipmentWebhookLog) bool {
			return l.Source == service.SourceSync
		})).Return(nil)
		d.publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil)

		svc := service.NewOrderService(discardLogger(), deps)
		res, err := svc.SyncShipment(context.Background(), "o1")
		require.NoError(t, err)
		assert.Equal(t, entities.StatusOutForDelivery, res.Order.Status)
	})

	t.Run("no awb", func(t *testing.T) {
		deps, d := newTestService(t)
		d.repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(entities.Order{ID: "o1"}, nil)

		svc := service.NewOrderService(discardLogger(), deps)
		_, err := svc.SyncShipment(context.Background(), "o1")
		assert.ErrorIs(t, err, entities.ErrNoShipment)
	})

	t.Run("carrier failure", func(t *testing.T) {
		deps, d := newTestService(t)
		carrierErr := errors.New("carrier down")
		d.repo.EXPECT().GetOrderByID(mock.Anything, "o1").Return(entities.Order{ID: "o1", AWBNumber: "AWB1"}, nil)
		d.tracker.EXPECT().TrackByAWB(mock.Anything, "AWB1").Return(entities.Tracking{}, carrierErr)

		svc := service.NewOrderService(discardLogger(), deps)
		_, err := svc.SyncShipment(context.Background(), "o1")
		assert.ErrorIs(t, err, carrierErr)
	})
}
