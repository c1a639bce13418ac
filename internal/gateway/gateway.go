package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/tracing"
	"github.com/shopspring/decimal"
)

// Client talks to a Razorpay compatible payment gateway.
type Client struct {
	baseURL       string
	keyID         string
	keySecret     string
	webhookSecret string
	http          *http.Client
}

func NewClient(cfg config.Payment) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
		http:          tracing.NewHTTPClient(cfg.Timeout),
	}
}

func (c *Client) KeyID() string {
	return c.keyID
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreatePaymentOrder registers a gateway order the storefront checkout pays against.
func (c *Client) CreatePaymentOrder(ctx context.Context, req entities.PaymentOrderRequest) (entities.PaymentOrder, error) {
	body, err := json.Marshal(createOrderRequest{
		Amount:   ToMinorUnits(req.Amount),
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return entities.PaymentOrder{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return entities.PaymentOrder{}, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.SetBasicAuth(c.keyID, c.keySecret)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return entities.PaymentOrder{}, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.PaymentOrder{}, fmt.Errorf("failed to read gateway response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var gwErr errorResponse
		if json.Unmarshal(data, &gwErr) == nil && gwErr.Error.Description != "" {
			return entities.PaymentOrder{}, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, gwErr.Error.Description)
		}
		return entities.PaymentOrder{}, fmt.Errorf("gateway returned %d", resp.StatusCode)
	}

	var order orderResponse
	if err := json.Unmarshal(data, &order); err != nil {
		return entities.PaymentOrder{}, fmt.Errorf("failed to decode gateway response: %w", err)
	}
	if order.ID == "" {
		return entities.PaymentOrder{}, fmt.Errorf("gateway response has no order id")
	}

	return entities.PaymentOrder{
		ID:          order.ID,
		AmountMinor: order.Amount,
		Currency:    order.Currency,
		Status:      order.Status,
	}, nil
}

// ToMinorUnits converts an amount to paise/cents, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// VerifySignature checks the hex encoded HMAC-SHA256 of the raw body.
func (c *Client) VerifySignature(body []byte, signature string) error {
	if signature == "" || c.webhookSecret == "" {
		return entities.ErrInvalidSignature
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return entities.ErrInvalidSignature
	}
	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return entities.ErrInvalidSignature
	}
	return nil
}

type webhookBody struct {
	ID      string `json:"id"`
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
		Order struct {
			Entity struct {
				ID string `json:"id"`
			} `json:"entity"`
		} `json:"order"`
	} `json:"payload"`
}

// ParseWebhook verifies the signature and extracts the fields the order
// service needs. Gateways that do not send an event id get one derived from
// the event name and the payment, which is stable across redeliveries.
func (c *Client) ParseWebhook(body []byte, signature string) (entities.PaymentWebhook, error) {
	if err := c.VerifySignature(body, signature); err != nil {
		return entities.PaymentWebhook{}, err
	}

	var hook webhookBody
	if err := json.Unmarshal(body, &hook); err != nil {
		return entities.PaymentWebhook{}, fmt.Errorf("%w: malformed webhook body", entities.ErrInvalidInput)
	}

	out := entities.PaymentWebhook{
		EventID:        hook.ID,
		Event:          hook.Event,
		PaymentID:      hook.Payload.Payment.Entity.ID,
		PaymentOrderID: hook.Payload.Payment.Entity.OrderID,
	}
	if out.PaymentOrderID == "" {
		out.PaymentOrderID = hook.Payload.Order.Entity.ID
	}
	if out.EventID == "" {
		ref := out.PaymentID
		if ref == "" {
			ref = out.PaymentOrderID
		}
		out.EventID = hook.Event + ":" + ref
	}
	return out, nil
}
