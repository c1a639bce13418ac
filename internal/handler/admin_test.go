package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/handler"
	mocks "github.com/SergeyBogomolovv/storefront-orders/internal/handler/mocks"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/go-chi/chi/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(svc handler.AdminService) chi.Router {
	h := handler.NewAdminHandler(discardLogger(), svc, noAuth)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestAdminHandler_UpdateOrder(t *testing.T) {
	shipped := entities.Order{ID: "o1", OrderNumber: "ORD1", Status: entities.StatusShipped}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAdminService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "status change",
			body: `{"id":"o1","order_status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(u service.OrderUpdate) bool {
					return u.ID == "o1" && *u.Status == entities.StatusShipped && !u.Force
				})).Return(shipped, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_status":"shipped"`,
		},
		{
			name: "overrides with dates",
			body: `{"id":"o1","courier_name":"BlueDart","delivered_at":"2024-01-10T12:00:00Z"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(u service.OrderUpdate) bool {
					return u.Status == nil && *u.CourierName == "BlueDart" &&
						u.DeliveredAt.Equal(time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))
				})).Return(shipped, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name: "invalid transition",
			body: `{"id":"o1","order_status":"processing"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `invalid status transition`,
		},
		{
			name: "force",
			body: `{"id":"o1","order_status":"processing","force":true}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateOrder(mock.Anything, mock.MatchedBy(func(u service.OrderUpdate) bool {
					return u.Force
				})).Return(entities.Order{ID: "o1", Status: entities.StatusProcessing}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_status":"processing"`,
		},
		{
			name:         "missing id",
			body:         `{"order_status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"ID":"required"`,
		},
		{
			name:         "unknown field",
			body:         `{"id":"o1","orderStatus":"shipped"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `unknown field`,
		},
		{
			name:         "bad date",
			body:         `{"id":"o1","shipped_at":"yesterday"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `shipped_at`,
		},
		{
			name: "not found",
			body: `{"id":"nope","order_status":"shipped"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name: "store failure",
			body: `{"id":"o1","payment_status":"paid"}`,
			mockBehavior: func(svc *mocks.MockAdminService) {
				svc.EXPECT().UpdateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("failed to update order: timeout")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"success":false`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAdminService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, "/api/admin/orders", strings.NewReader(tc.body))
			status, body := serve(t, newAdminRouter(svc), req)

			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestAdminHandler_DeliveryDates(t *testing.T) {
	t.Run("diagnostic", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		svc.EXPECT().FindMissingDeliveryDates(mock.Anything).
			Return([]entities.Order{{ID: "o1", Status: entities.StatusDelivered}, {ID: "o2", Status: entities.StatusDelivered}}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/delivery-dates", nil)
		status, body := serve(t, newAdminRouter(svc), req)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"count":2`)
	})

	t.Run("fix single with explicit date", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
		svc.EXPECT().FixDeliveryDate(mock.Anything, "o1", mock.MatchedBy(func(d *time.Time) bool {
			return d != nil && d.Equal(want)
		})).Return(entities.Order{ID: "o1", Status: entities.StatusDelivered, DeliveredAt: &want}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/delivery-dates",
			strings.NewReader(`{"action":"fix_single","orderId":"o1","deliveryDate":"2024-02-01"}`))
		status, body := serve(t, newAdminRouter(svc), req)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"delivered_at":"2024-02-01T00:00:00Z"`)
		assert.Contains(t, body, `"message"`)
	})

	t.Run("fix single without id", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/delivery-dates", strings.NewReader(`{"action":"fix_single"}`))
		status, _ := serve(t, newAdminRouter(svc), req)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("fix single on order with date", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		svc.EXPECT().FixDeliveryDate(mock.Anything, "o1", (*time.Time)(nil)).
			Return(entities.Order{}, entities.ErrDeliveryDateSet).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/delivery-dates", strings.NewReader(`{"action":"fix_single","orderId":"o1"}`))
		status, _ := serve(t, newAdminRouter(svc), req)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("fix all", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		svc.EXPECT().FixAllDeliveryDates(mock.Anything).Return(service.BackfillReport{Fixed: 2, Total: 3}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/delivery-dates", strings.NewReader(`{"action":"fix_all"}`))
		status, body := serve(t, newAdminRouter(svc), req)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `"fixed":2`)
		assert.Contains(t, body, `"total":3`)
	})

	t.Run("unknown action", func(t *testing.T) {
		svc := mocks.NewMockAdminService(t)
		req := httptest.NewRequest(http.MethodPost, "/api/admin/orders/delivery-dates", strings.NewReader(`{"action":"fix_everything"}`))
		status, _ := serve(t, newAdminRouter(svc), req)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestAdminHandler_Queries(t *testing.T) {
	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().ListOrders(mock.Anything, entities.OrderFilter{Status: entities.StatusShipped, Limit: 10}).
		Return([]entities.Order{{ID: "o1", Status: entities.StatusShipped}}, nil).Once()
	svc.EXPECT().GetOrder(mock.Anything, "o1").Return(entities.Order{ID: "o1"}, nil).Once()
	svc.EXPECT().MarkDelivered(mock.Anything, "o1").Return(entities.Order{ID: "o1", Status: entities.StatusDelivered}, nil).Once()
	svc.EXPECT().SyncShipment(mock.Anything, "o2").Return(service.ShipmentResult{}, entities.ErrNoShipment).Once()
	r := newAdminRouter(svc)

	status, body := serve(t, r, httptest.NewRequest(http.MethodGet, "/api/admin/orders?status=shipped&limit=10", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"count":1`)

	status, _ = serve(t, r, httptest.NewRequest(http.MethodGet, "/api/admin/orders?limit=-1", nil))
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = serve(t, r, httptest.NewRequest(http.MethodGet, "/api/admin/orders/o1", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"id":"o1"`)

	status, body = serve(t, r, httptest.NewRequest(http.MethodPost, "/api/admin/orders/o1/deliver", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"order_status":"delivered"`)

	status, _ = serve(t, r, httptest.NewRequest(http.MethodPost, "/api/admin/orders/o2/sync-shipment", nil))
	assert.Equal(t, http.StatusConflict, status)
}

func TestAdminHandler_RequiresAdminToken(t *testing.T) {
	const secret = "admin-secret-for-tests"
	svc := mocks.NewMockAdminService(t)
	svc.EXPECT().GetOrder(mock.Anything, "o1").Return(entities.Order{ID: "o1"}, nil).Once()

	h := handler.NewAdminHandler(discardLogger(), svc, middleware.AdminAuth(secret))
	r := chi.NewRouter()
	h.Init(r)

	status, _ := serve(t, r, httptest.NewRequest(http.MethodGet, "/api/admin/orders/o1", nil))
	assert.Equal(t, http.StatusUnauthorized, status)

	token, err := middleware.SignAdminToken(secret, "alice", middleware.RoleAdmin, jwt.RegisteredClaims{})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders/o1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	status, _ = serve(t, r, req)
	assert.Equal(t, http.StatusOK, status)
}
