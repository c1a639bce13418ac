package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const signatureHeader = "X-Razorpay-Signature"

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, orderID string) (service.PaymentIntent, error)
	HandlePaymentWebhook(ctx context.Context, body []byte, signature string) (service.PaymentWebhookResult, error)
}

type PaymentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      PaymentService
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logger:   logger.With(slog.String("handler", "payment")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Post("/api/payments/intent", h.CreateIntent)
	r.Post("/api/payments/webhook", h.HandleWebhook)
}

// CreateIntent создает заказ в платежном шлюзе.
// @Summary      Create payment intent
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      PaymentIntentRequest  true  "Order"
// @Success      200   {object}  PaymentIntentResponse
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      404   {object}  utils.ErrorResponse
// @Failure      409   {object}  utils.ErrorResponse "Заказ уже оплачен"
// @Failure      500   {object}  utils.ErrorResponse
// @Router       /api/payments/intent [post]
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PaymentIntentRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	intent, err := h.svc.CreatePaymentIntent(ctx, req.OrderID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, PaymentIntentResponse{
		Success:        true,
		OrderID:        intent.OrderID,
		PaymentOrderID: intent.PaymentOrderID,
		Amount:         intent.AmountMinor,
		Currency:       intent.Currency,
		KeyID:          intent.KeyID,
	}, http.StatusOK)
}

// HandleWebhook принимает уведомления платежного шлюза.
// @Summary      Payment gateway webhook
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Razorpay-Signature  header    string  true  "hex HMAC-SHA256 of the body"
// @Success      200  {object}  PaymentWebhookResponse
// @Failure      400  {object}  utils.ErrorResponse "Неверная подпись"
// @Failure      404  {object}  utils.ErrorResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/payments/webhook [post]
func (h *PaymentHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// подпись считается по сырому телу, поэтому не декодируем до проверки
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.svc.HandlePaymentWebhook(ctx, body, r.Header.Get(signatureHeader))
	if err != nil {
		paymentEvents.WithLabelValues("unknown", "failed").Inc()
		writeServiceError(ctx, h.logger, w, err)
		return
	}

	result := "applied"
	switch {
	case res.Ignored:
		result = "ignored"
	case res.Duplicate:
		result = "duplicate"
	}
	event := string(res.Event)
	if event == "" {
		event = "other"
	}
	paymentEvents.WithLabelValues(event, result).Inc()

	utils.WriteJSON(w, PaymentWebhookResponse{
		Success:       true,
		Event:         string(res.Event),
		PaymentStatus: string(res.Order.PaymentStatus),
		Ignored:       res.Ignored,
		Duplicate:     res.Duplicate,
	}, http.StatusOK)
}
