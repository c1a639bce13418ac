package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxWebhookBody = 1 << 20

type ShipmentApplier interface {
	ApplyShipmentUpdate(ctx context.Context, upd service.ShipmentUpdate) (service.ShipmentResult, error)
}

type ShipmentHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ShipmentApplier
	auth     func(http.Handler) http.Handler
}

func NewShipmentHandler(logger *slog.Logger, svc ShipmentApplier, auth func(http.Handler) http.Handler) *ShipmentHandler {
	return &ShipmentHandler{
		logger:   logger.With(slog.String("handler", "shipment")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *ShipmentHandler) Init(r chi.Router) {
	r.With(h.auth).Post("/api/webhooks/shipment", h.HandleWebhook)
}

// HandleWebhook применяет уведомление перевозчика к заказу.
// @Summary      Carrier shipment webhook
// @Description  Resolves the order by order number, then by AWB, and reconciles its status
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        body  body      ShipmentWebhookRequest  true  "Carrier notification"
// @Success      200  {object}  ShipmentWebhookResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/webhooks/shipment [post]
func (h *ShipmentHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	var req ShipmentWebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if req.Status() == "" {
		utils.WriteError(w, "current_status or shipment_status is required", http.StatusBadRequest)
		return
	}

	upd := req.ToServiceUpdate(service.SourceWebhook, body)
	if req.EDD != "" && upd.ExpectedDelivery == nil {
		h.logger.WarnContext(ctx, "unparsable edd ignored", slog.String("edd", req.EDD))
	}

	res, err := h.svc.ApplyShipmentUpdate(ctx, upd)
	if err != nil {
		observeShipment(entities.WebhookOutcomeFailed, "")
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	observeShipment(entities.WebhookOutcomeSuccess, string(res.Order.Status))

	utils.WriteJSON(w, ShipmentWebhookResponse{
		Success:    true,
		OrderID:    res.Order.OrderNumber,
		NewStatus:  string(res.Order.Status),
		InternalID: res.Order.ID,
	}, http.StatusOK)
}
