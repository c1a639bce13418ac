package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, id string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	GetOrderByAWB(ctx context.Context, awb string) (entities.Order, error)
	GetOrderByPaymentOrderID(ctx context.Context, paymentOrderID string) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	ListDeliveredWithoutDeliveredAt(ctx context.Context) ([]entities.Order, error)

	// Колонки с IfNull в патче пишутся через COALESCE, поэтому повтор безопасен
	UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error)

	SaveShipmentWebhookLog(ctx context.Context, log entities.ShipmentWebhookLog) error
	SavePaymentEvent(ctx context.Context, event entities.PaymentEvent) error
}

type StatusPublisher interface {
	PublishStatusChanged(ctx context.Context, change entities.StatusChange) error
}

type Tracker interface {
	TrackByAWB(ctx context.Context, awb string) (entities.Tracking, error)
}

type PaymentGateway interface {
	CreatePaymentOrder(ctx context.Context, req entities.PaymentOrderRequest) (entities.PaymentOrder, error)
	ParseWebhook(body []byte, signature string) (entities.PaymentWebhook, error)
	KeyID() string
}

type Deps struct {
	Repo      OrderRepo
	TxManager trm.Manager
	Publisher StatusPublisher
	Tracker   Tracker
	Gateway   PaymentGateway

	// Now defaults to time.Now.
	Now func() time.Time
}

type orderService struct {
	logger    *slog.Logger
	repo      OrderRepo
	txManager trm.Manager
	publisher StatusPublisher
	tracker   Tracker
	gateway   PaymentGateway
	now       func() time.Time
}

func NewOrderService(logger *slog.Logger, deps Deps) *orderService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		repo:      deps.Repo,
		txManager: deps.TxManager,
		publisher: deps.Publisher,
		tracker:   deps.Tracker,
		gateway:   deps.Gateway,
		now:       func() time.Time { return now().UTC() },
	}
}

// publishStatusChange is best effort, the order row is already committed.
func (s *orderService) publishStatusChange(ctx context.Context, before, after entities.Order, source string) {
	if s.publisher == nil || before.Status == after.Status {
		return
	}
	change := entities.StatusChange{
		OrderID:     after.ID,
		OrderNumber: after.OrderNumber,
		OldStatus:   before.Status,
		NewStatus:   after.Status,
		Source:      source,
		ChangedAt:   s.now(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, change); err != nil {
		s.logger.Warn("failed to publish status change",
			slog.String("order_id", after.ID),
			slog.String("status", string(after.Status)),
			slog.Any("error", err),
		)
	}
}
