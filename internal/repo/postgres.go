package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const defaultListLimit = 50

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return newRepo(db, sq.Dollar)
}

func newRepo(db *sqlx.DB, placeholder sq.PlaceholderFormat) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.getOrderBy(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return r.getOrderBy(ctx, sq.Eq{"order_number": orderNumber})
}

func (r *postgresRepo) GetOrderByAWB(ctx context.Context, awb string) (entities.Order, error) {
	return r.getOrderBy(ctx, sq.Eq{"awb_number": awb})
}

func (r *postgresRepo) GetOrderByPaymentOrderID(ctx context.Context, paymentOrderID string) (entities.Order, error) {
	return r.getOrderBy(ctx, sq.Eq{"payment_order_id": paymentOrderID})
}

func (r *postgresRepo) getOrderBy(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		MustSql()

	var order Order
	err := trm.Executor(ctx, r.db).GetContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC")

	if filter.Status != "" {
		q = q.Where(sq.Eq{"order_status": string(filter.Status)})
	}
	if filter.PaymentStatus != "" {
		q = q.Where(sq.Eq{"payment_status": string(filter.PaymentStatus)})
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	q = q.Limit(limit)
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	query, args := q.MustSql()

	var rows []Order
	if err := trm.Executor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return OrdersToEntities(rows), nil
}

// ListDeliveredWithoutDeliveredAt returns delivered orders that have no delivery timestamp.
func (r *postgresRepo) ListDeliveredWithoutDeliveredAt(ctx context.Context) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"order_status": string(entities.StatusDelivered), "delivered_at": nil}).
		OrderBy("created_at ASC").
		MustSql()

	var rows []Order
	if err := trm.Executor(ctx, r.db).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select delivered orders: %w", err)
	}
	return OrdersToEntities(rows), nil
}

// UpdateOrder applies the patch in one statement and returns the stored row.
// The *IfNull fields are written with COALESCE so an existing value is never replaced.
// Status and payment conditions are evaluated against the row being updated, not
// against an earlier read.
func (r *postgresRepo) UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	if patch.IsEmpty() {
		return r.GetOrderByID(ctx, id)
	}

	q := r.qb.Update("orders").Where(sq.Eq{"id": id})

	// stamps гейтятся только вместе со статусом
	var stampGuard sq.Eq
	if patch.Status != nil {
		allowed := sq.Eq{"order_status": statusStrings(entities.AllowedFrom(*patch.Status))}
		switch {
		case patch.RequireTransition:
			q = q.Where(allowed)
			q = q.Set("order_status", string(*patch.Status))
		case patch.GuardTransition:
			stampGuard = allowed
			q = q.Set("order_status", onlyIfAllowed("order_status", allowed, "?", string(*patch.Status)))
		default:
			q = q.Set("order_status", string(*patch.Status))
		}
	}
	if patch.KeepPaid {
		q = q.Where(sq.NotEq{"payment_status": string(entities.PaymentPaid)})
	}

	if patch.PaymentStatus != nil {
		q = q.Set("payment_status", string(*patch.PaymentStatus))
	}
	if patch.ShiprocketStatus != nil {
		q = q.Set("shiprocket_status", *patch.ShiprocketStatus)
	}
	if patch.ShiprocketShipmentID != nil {
		q = q.Set("shiprocket_shipment_id", nullString(*patch.ShiprocketShipmentID))
	}
	if patch.PaymentOrderID != nil {
		q = q.Set("payment_order_id", nullString(*patch.PaymentOrderID))
	}
	if patch.PaymentID != nil {
		q = q.Set("payment_id", nullString(*patch.PaymentID))
	}
	if patch.ExpectedDeliveryDate != nil {
		q = q.Set("expected_delivery_date", *patch.ExpectedDeliveryDate)
	}

	q = setOrCoalesce(q, "awb_number", patch.AWBNumber, patch.AWBNumberIfNull, nil)
	q = setOrCoalesce(q, "courier_name", patch.CourierName, patch.CourierNameIfNull, nil)
	q = setOrCoalesce(q, "shipped_at", patch.ShippedAt, patch.ShippedAtIfNull, stampGuard)
	q = setOrCoalesce(q, "delivered_at", patch.DeliveredAt, patch.DeliveredAtIfNull, stampGuard)

	if patch.UpdatedAt != nil {
		q = q.Set("updated_at", *patch.UpdatedAt)
	}

	query, args := q.MustSql()

	res, err := trm.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order: %w", err)
	}
	if affected == 0 {
		return entities.Order{}, r.rejectedUpdate(ctx, id, patch)
	}

	return r.GetOrderByID(ctx, id)
}

// rejectedUpdate explains why an UPDATE matched no row.
func (r *postgresRepo) rejectedUpdate(ctx context.Context, id string, patch entities.OrderPatch) error {
	order, err := r.GetOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if patch.KeepPaid && order.PaymentStatus == entities.PaymentPaid {
		return entities.ErrAlreadyPaid
	}
	if patch.RequireTransition && patch.Status != nil {
		return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, *patch.Status)
	}
	return entities.ErrOrderNotFound
}

func setOrCoalesce[T string | time.Time](q sq.UpdateBuilder, column string, value, ifNull *T, guard sq.Eq) sq.UpdateBuilder {
	switch {
	case value != nil:
		return q.Set(column, *value)
	case ifNull != nil && guard != nil:
		return q.Set(column, onlyIfAllowed(column, guard, fmt.Sprintf("COALESCE(%s, ?)", column), *ifNull))
	case ifNull != nil:
		return q.Set(column, sq.Expr(fmt.Sprintf("COALESCE(%s, ?)", column), *ifNull))
	}
	return q
}

// onlyIfAllowed writes value when the stored row matches cond and keeps the
// column as it is otherwise.
func onlyIfAllowed(column string, cond sq.Eq, value string, args ...any) sq.Sqlizer {
	condSQL, condArgs, _ := cond.ToSql()
	return sq.Expr(
		fmt.Sprintf("CASE WHEN %s THEN %s ELSE %s END", condSQL, value, column),
		append(condArgs, args...)...,
	)
}

func statusStrings(statuses []entities.OrderStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *postgresRepo) SaveShipmentWebhookLog(ctx context.Context, log entities.ShipmentWebhookLog) error {
	createdAt := log.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args := r.qb.Insert("shipment_webhook_logs").
		Columns("id", "order_id", "source", "payload", "outcome", "error", "created_at").
		Values(
			uuid.NewString(),
			nullString(log.OrderID),
			log.Source,
			string(log.Payload),
			log.Outcome,
			nullString(log.Error),
			createdAt,
		).
		MustSql()

	if _, err := trm.Executor(ctx, r.db).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save webhook log: %w", err)
	}
	return nil
}

// SavePaymentEvent records a processed gateway event. A repeated event id
// returns ErrDuplicateEvent.
func (r *postgresRepo) SavePaymentEvent(ctx context.Context, event entities.PaymentEvent) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query, args := r.qb.Insert("payment_events").
		Columns("event_id", "order_id", "event_type", "created_at").
		Values(event.EventID, event.OrderID, string(event.Type), createdAt).
		Suffix("ON CONFLICT (event_id) DO NOTHING").
		MustSql()

	res, err := trm.Executor(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save payment event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save payment event: %w", err)
	}
	if affected == 0 {
		return entities.ErrDuplicateEvent
	}
	return nil
}
