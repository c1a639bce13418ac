package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/shopspring/decimal"
)

// Order представляет заказ в админке
type Order struct {
	ID                   string          `json:"id"`
	OrderNumber          string          `json:"order_number"`
	OrderStatus          string          `json:"order_status"`
	PaymentStatus        string          `json:"payment_status,omitempty"`
	ShiprocketStatus     string          `json:"shiprocket_status,omitempty"`
	AWBNumber            string          `json:"awb_number,omitempty"`
	CourierName          string          `json:"courier_name,omitempty"`
	ShiprocketShipmentID string          `json:"shiprocket_shipment_id,omitempty"`
	PaymentOrderID       string          `json:"payment_order_id,omitempty"`
	PaymentID            string          `json:"payment_id,omitempty"`
	TotalAmount          decimal.Decimal `json:"total_amount" swaggertype:"string"`
	Currency             string          `json:"currency,omitempty"`
	LineItems            json.RawMessage `json:"line_items,omitempty" swaggertype:"object"`
	ShippingAddress      json.RawMessage `json:"shipping_address,omitempty" swaggertype:"object"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            *time.Time      `json:"updated_at"`
	ShippedAt            *time.Time      `json:"shipped_at"`
	DeliveredAt          *time.Time      `json:"delivered_at"`
	ExpectedDeliveryDate *time.Time      `json:"expected_delivery_date"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		OrderStatus:          string(o.Status),
		PaymentStatus:        string(o.PaymentStatus),
		ShiprocketStatus:     o.ShiprocketStatus,
		AWBNumber:            o.AWBNumber,
		CourierName:          o.CourierName,
		ShiprocketShipmentID: o.ShiprocketShipmentID,
		PaymentOrderID:       o.PaymentOrderID,
		PaymentID:            o.PaymentID,
		TotalAmount:          o.TotalAmount,
		Currency:             o.Currency,
		LineItems:            o.LineItems,
		ShippingAddress:      o.ShippingAddress,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
		ShippedAt:            o.ShippedAt,
		DeliveredAt:          o.DeliveredAt,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderEntityToJSON(o))
	}
	return out
}

// flexString принимает и строку, и число: перевозчик шлет awb по-разному
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = flexString(num.String())
	return nil
}

// ShipmentWebhookRequest уведомление перевозчика. Лишние поля игнорируются.
type ShipmentWebhookRequest struct {
	OrderID        flexString      `json:"order_id" validate:"required_without=AWB" swaggertype:"string"`
	AWB            flexString      `json:"awb" validate:"required_without=OrderID" swaggertype:"string"`
	CourierName    string          `json:"courier_name"`
	CurrentStatus  string          `json:"current_status"`
	ShipmentStatus flexString      `json:"shipment_status" swaggertype:"string"`
	EDD            string          `json:"edd"`
	Scans          json.RawMessage `json:"scans,omitempty" swaggertype:"array,object"`
}

// Status prefers current_status and falls back to shipment_status.
func (r ShipmentWebhookRequest) Status() string {
	if r.CurrentStatus != "" {
		return r.CurrentStatus
	}
	return string(r.ShipmentStatus)
}

// ShipmentWebhookResponse echoes the carrier's correlation key: order_id is the
// order number, the internal id goes to internal_id.
type ShipmentWebhookResponse struct {
	Success    bool   `json:"success"`
	OrderID    string `json:"order_id"`
	NewStatus  string `json:"new_status"`
	InternalID string `json:"internal_id,omitempty"`
}

// UpdateOrderRequest ручное изменение заказа из админки
type UpdateOrderRequest struct {
	ID                   string  `json:"id" validate:"required"`
	OrderStatus          *string `json:"order_status,omitempty"`
	Force                bool    `json:"force,omitempty"`
	PaymentStatus        *string `json:"payment_status,omitempty"`
	AWBNumber            *string `json:"awb_number,omitempty"`
	CourierName          *string `json:"courier_name,omitempty"`
	ShiprocketShipmentID *string `json:"shiprocket_shipment_id,omitempty"`
	ExpectedDeliveryDate *string `json:"expected_delivery_date,omitempty"`
	ShippedAt            *string `json:"shipped_at,omitempty"`
	DeliveredAt          *string `json:"delivered_at,omitempty"`
}

func (r UpdateOrderRequest) ToServiceUpdate() (service.OrderUpdate, error) {
	upd := service.OrderUpdate{
		ID:                   r.ID,
		Force:                r.Force,
		AWBNumber:            r.AWBNumber,
		CourierName:          r.CourierName,
		ShiprocketShipmentID: r.ShiprocketShipmentID,
	}
	if r.OrderStatus != nil {
		upd.Status = entities.Ptr(entities.OrderStatus(*r.OrderStatus))
	}
	if r.PaymentStatus != nil {
		upd.PaymentStatus = entities.Ptr(entities.PaymentStatus(*r.PaymentStatus))
	}

	var err error
	if upd.ExpectedDeliveryDate, err = parseTimeField("expected_delivery_date", r.ExpectedDeliveryDate); err != nil {
		return service.OrderUpdate{}, err
	}
	if upd.ShippedAt, err = parseTimeField("shipped_at", r.ShippedAt); err != nil {
		return service.OrderUpdate{}, err
	}
	if upd.DeliveredAt, err = parseTimeField("delivered_at", r.DeliveredAt); err != nil {
		return service.OrderUpdate{}, err
	}
	return upd, nil
}

func parseTimeField(name string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := utils.ParseOptionalTime(*value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

type OrderResponse struct {
	Success bool  `json:"success"`
	Order   Order `json:"order"`
}

type OrdersResponse struct {
	Success bool    `json:"success"`
	Count   int     `json:"count"`
	Orders  []Order `json:"orders"`
}

const (
	ActionFixSingle = "fix_single"
	ActionFixAll    = "fix_all"
)

type DeliveryDateRepairRequest struct {
	Action       string `json:"action" validate:"required,oneof=fix_single fix_all"`
	OrderID      string `json:"orderId" validate:"required_if=Action fix_single"`
	DeliveryDate string `json:"deliveryDate,omitempty"`
}

type FixSingleResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

type FixAllResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Fixed   int    `json:"fixed"`
	Total   int    `json:"total"`
}

type PaymentIntentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

type PaymentIntentResponse struct {
	Success        bool   `json:"success"`
	OrderID        string `json:"order_id"`
	PaymentOrderID string `json:"payment_order_id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	KeyID          string `json:"key_id"`
}

type PaymentWebhookResponse struct {
	Success       bool   `json:"success"`
	Event         string `json:"event,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	Ignored       bool   `json:"ignored,omitempty"`
	Duplicate     bool   `json:"duplicate,omitempty"`
}

// ToServiceUpdate drops an unparsable edd instead of rejecting the whole update.
func (r ShipmentWebhookRequest) ToServiceUpdate(source string, payload []byte) service.ShipmentUpdate {
	edd, _ := utils.ParseOptionalTime(r.EDD)
	return service.ShipmentUpdate{
		OrderNumber:      string(r.OrderID),
		AWB:              string(r.AWB),
		CourierName:      r.CourierName,
		Status:           r.Status(),
		ExpectedDelivery: edd,
		Source:           source,
		Payload:          payload,
	}
}
