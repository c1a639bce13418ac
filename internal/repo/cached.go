package repo

import (
	"context"

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
	UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error)
	SaveShipmentWebhookLog(ctx context.Context, log entities.ShipmentWebhookLog) error
	SavePaymentEvent(ctx context.Context, event entities.PaymentEvent) error
}

type Cache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
	Delete(key string)
}

// cachedRepo serves GetOrderByID from an in-process cache and refreshes the
// entry after every update that goes through it. Updates made inside a
// transaction evict the entry instead, so a rolled back row is never served.
type cachedRepo struct {
	OrderRepo
	cache Cache
}

func NewCachedRepo(repo OrderRepo, cache Cache) *cachedRepo {
	return &cachedRepo{OrderRepo: repo, cache: cache}
}

func (r *cachedRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	if trm.ExtractTx(ctx) != nil {
		return r.OrderRepo.GetOrderByID(ctx, id)
	}
	if order, ok := r.cache.Get(id); ok {
		return order, nil
	}

	order, err := r.OrderRepo.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	r.cache.Set(id, order)
	return order, nil
}

func (r *cachedRepo) UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	order, err := r.OrderRepo.UpdateOrder(ctx, id, patch)
	if err != nil || trm.ExtractTx(ctx) != nil {
		// внутри транзакции строка еще не закоммичена, кэшировать ее нельзя
		r.cache.Delete(id)
	} else {
		r.cache.Set(id, order)
	}
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// WarmUp loads the most recently created orders into the cache.
func (r *cachedRepo) WarmUp(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}
	orders, err := r.OrderRepo.ListOrders(ctx, entities.OrderFilter{Limit: uint64(count)})
	if err != nil {
		return err
	}
	for _, o := range orders {
		r.cache.Set(o.ID, o)
	}
	return nil
}
