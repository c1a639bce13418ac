package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/shopspring/decimal"
)

var orderColumns = []string{
	"id", "order_number", "order_status", "payment_status", "shiprocket_status",
	"awb_number", "courier_name", "shiprocket_shipment_id",
	"payment_order_id", "payment_id", "total_amount", "currency",
	"line_items", "shipping_address",
	"created_at", "updated_at", "shipped_at", "delivered_at", "expected_delivery_date",
}

type Order struct {
	ID                   string              `db:"id"`
	OrderNumber          string              `db:"order_number"`
	OrderStatus          string              `db:"order_status"`
	PaymentStatus        sql.NullString      `db:"payment_status"`
	ShiprocketStatus     sql.NullString      `db:"shiprocket_status"`
	AWBNumber            sql.NullString      `db:"awb_number"`
	CourierName          sql.NullString      `db:"courier_name"`
	ShiprocketShipmentID sql.NullString      `db:"shiprocket_shipment_id"`
	PaymentOrderID       sql.NullString      `db:"payment_order_id"`
	PaymentID            sql.NullString      `db:"payment_id"`
	TotalAmount          decimal.NullDecimal `db:"total_amount"`
	Currency             sql.NullString      `db:"currency"`
	LineItems            []byte              `db:"line_items"`
	ShippingAddress      []byte              `db:"shipping_address"`
	CreatedAt            time.Time           `db:"created_at"`
	UpdatedAt            sql.NullTime        `db:"updated_at"`
	ShippedAt            sql.NullTime        `db:"shipped_at"`
	DeliveredAt          sql.NullTime        `db:"delivered_at"`
	ExpectedDeliveryDate sql.NullTime        `db:"expected_delivery_date"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		Status:               entities.OrderStatus(o.OrderStatus),
		PaymentStatus:        entities.PaymentStatus(nullStringToString(o.PaymentStatus)),
		ShiprocketStatus:     nullStringToString(o.ShiprocketStatus),
		AWBNumber:            nullStringToString(o.AWBNumber),
		CourierName:          nullStringToString(o.CourierName),
		ShiprocketShipmentID: nullStringToString(o.ShiprocketShipmentID),
		PaymentOrderID:       nullStringToString(o.PaymentOrderID),
		PaymentID:            nullStringToString(o.PaymentID),
		TotalAmount:          o.TotalAmount.Decimal,
		Currency:             nullStringToString(o.Currency),
		LineItems:            o.LineItems,
		ShippingAddress:      o.ShippingAddress,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            nullTimeToPtr(o.UpdatedAt),
		ShippedAt:            nullTimeToPtr(o.ShippedAt),
		DeliveredAt:          nullTimeToPtr(o.DeliveredAt),
		ExpectedDeliveryDate: nullTimeToPtr(o.ExpectedDeliveryDate),
	}
}

func OrdersToEntities(rows []Order) []entities.Order {
	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, OrderToEntity(row))
	}
	return orders
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullTimeToPtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time
		return &t
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
