package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/middleware"
	"github.com/SergeyBogomolovv/storefront-orders/internal/service"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type AdminService interface {
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	UpdateOrder(ctx context.Context, upd service.OrderUpdate) (entities.Order, error)
	MarkShipped(ctx context.Context, id string) (entities.Order, error)
	MarkDelivered(ctx context.Context, id string) (entities.Order, error)
	Cancel(ctx context.Context, id string) (entities.Order, error)
	SyncShipment(ctx context.Context, id string) (service.ShipmentResult, error)

	FindMissingDeliveryDates(ctx context.Context) ([]entities.Order, error)
	FixDeliveryDate(ctx context.Context, orderID string, deliveredAt *time.Time) (entities.Order, error)
	FixAllDeliveryDates(ctx context.Context) (service.BackfillReport, error)
}

type AdminHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      AdminService
	auth     func(http.Handler) http.Handler
}

func NewAdminHandler(logger *slog.Logger, svc AdminService, auth func(http.Handler) http.Handler) *AdminHandler {
	return &AdminHandler{
		logger:   logger.With(slog.String("handler", "admin")),
		validate: validator.New(),
		svc:      svc,
		auth:     auth,
	}
}

func (h *AdminHandler) Init(r chi.Router) {
	r.Route("/api/admin/orders", func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/", h.ListOrders)
		r.Put("/", h.UpdateOrder)
		r.Get("/delivery-dates", h.FindMissingDeliveryDates)
		r.Post("/delivery-dates", h.RepairDeliveryDates)

		r.Get("/{id}", h.GetOrder)
		r.Post("/{id}/ship", h.shortcut(h.svc.MarkShipped))
		r.Post("/{id}/deliver", h.shortcut(h.svc.MarkDelivered))
		r.Post("/{id}/cancel", h.shortcut(h.svc.Cancel))
		r.Post("/{id}/sync-shipment", h.SyncShipment)
	})
}

// ListOrders возвращает заказы с фильтрами.
// @Summary      List orders
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        status          query  string  false  "Order status"
// @Param        payment_status  query  string  false  "Payment status"
// @Param        limit           query  int     false  "Page size"
// @Param        offset          query  int     false  "Offset"
// @Success      200  {object}  OrdersResponse
// @Failure      400  {object}  utils.ErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	filter := entities.OrderFilter{
		Status:        entities.OrderStatus(q.Get("status")),
		PaymentStatus: entities.PaymentStatus(q.Get("payment_status")),
	}
	var err error
	if filter.Limit, err = parseUintParam(q.Get("limit")); err != nil {
		utils.WriteError(w, "invalid limit", http.StatusBadRequest)
		return
	}
	if filter.Offset, err = parseUintParam(q.Get("offset")); err != nil {
		utils.WriteError(w, "invalid offset", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.ListOrders(ctx, filter)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, OrdersResponse{Success: true, Count: len(orders), Orders: OrdersEntityToJSON(orders)}, http.StatusOK)
}

// GetOrder возвращает заказ по ID.
// @Summary      Get order
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  OrderResponse
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Router       /api/admin/orders/{id} [get]
func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")
	if err := h.validate.Var(id, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrder(ctx, id)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}

// UpdateOrder ручное изменение статуса и полей заказа.
// @Summary      Update order
// @Description  Applies a status change checked against the transition table (unless force) and field overrides
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      UpdateOrderRequest  true  "Update"
// @Success      200   {object}  OrderResponse
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      404   {object}  utils.ErrorResponse
// @Failure      409   {object}  utils.ErrorResponse "Недопустимый переход статуса"
// @Failure      500   {object}  utils.ErrorResponse
// @Router       /api/admin/orders [put]
func (h *AdminHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	upd, err := req.ToServiceUpdate()
	if err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if upd.Force {
		p, _ := middleware.PrincipalFromContext(ctx)
		h.logger.WarnContext(ctx, "forced status change",
			slog.String("order_id", upd.ID),
			slog.String("admin", p.Name),
		)
	}

	order, err := h.svc.UpdateOrder(ctx, upd)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
}

// @Summary      Mark order shipped / delivered / cancelled
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id      path      string  true  "Order id"
// @Param        action  path      string  true  "ship, deliver or cancel"
// @Success      200     {object}  OrderResponse
// @Failure      409     {object}  utils.ErrorResponse
// @Router       /api/admin/orders/{id}/{action} [post]
func (h *AdminHandler) shortcut(fn func(ctx context.Context, id string) (entities.Order, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		order, err := fn(ctx, chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(ctx, h.logger, w, err)
			return
		}
		utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(order)}, http.StatusOK)
	}
}

// SyncShipment подтягивает статус у перевозчика.
// @Summary      Sync shipment from carrier
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  OrderResponse
// @Failure      409  {object}  utils.ErrorResponse "У заказа нет AWB"
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/admin/orders/{id}/sync-shipment [post]
func (h *AdminHandler) SyncShipment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res, err := h.svc.SyncShipment(ctx, chi.URLParam(r, "id"))
	if err != nil {
		observeShipment(entities.WebhookOutcomeFailed, "")
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	observeShipment(entities.WebhookOutcomeSuccess, string(res.Order.Status))
	utils.WriteJSON(w, OrderResponse{Success: true, Order: OrderEntityToJSON(res.Order)}, http.StatusOK)
}

// FindMissingDeliveryDates диагностика: доставленные заказы без delivered_at.
// @Summary      Delivered orders missing delivered_at
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  OrdersResponse
// @Failure      500  {object}  utils.ErrorResponse
// @Router       /api/admin/orders/delivery-dates [get]
func (h *AdminHandler) FindMissingDeliveryDates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orders, err := h.svc.FindMissingDeliveryDates(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err)
		return
	}
	utils.WriteJSON(w, OrdersResponse{Success: true, Count: len(orders), Orders: OrdersEntityToJSON(orders)}, http.StatusOK)
}

// RepairDeliveryDates fix_single или fix_all.
// @Summary      Repair missing delivery dates
// @Tags         admin
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      DeliveryDateRepairRequest  true  "Repair"
// @Success      200   {object}  FixAllResponse
// @Failure      400   {object}  utils.ValidationErrorResponse
// @Failure      409   {object}  utils.ErrorResponse
// @Router       /api/admin/orders/delivery-dates [post]
func (h *AdminHandler) RepairDeliveryDates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeliveryDateRepairRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	switch req.Action {
	case ActionFixSingle:
		date, err := utils.ParseOptionalTime(req.DeliveryDate)
		if err != nil {
			utils.WriteValidationError(w, fmt.Errorf("deliveryDate: %w", err))
			return
		}
		order, err := h.svc.FixDeliveryDate(ctx, req.OrderID, date)
		if err != nil {
			backfillRepairs.WithLabelValues(ActionFixSingle, "failed").Inc()
			writeServiceError(ctx, h.logger, w, err)
			return
		}
		backfillRepairs.WithLabelValues(ActionFixSingle, "fixed").Inc()
		utils.WriteJSON(w, FixSingleResponse{
			Success: true,
			Message: "delivery date fixed",
			Order:   OrderEntityToJSON(order),
		}, http.StatusOK)

	case ActionFixAll:
		report, err := h.svc.FixAllDeliveryDates(ctx)
		if err != nil {
			writeServiceError(ctx, h.logger, w, err)
			return
		}
		backfillRepairs.WithLabelValues(ActionFixAll, "fixed").Add(float64(report.Fixed))
		backfillRepairs.WithLabelValues(ActionFixAll, "failed").Add(float64(report.Total - report.Fixed))
		utils.WriteJSON(w, FixAllResponse{
			Success: true,
			Message: fmt.Sprintf("fixed %d of %d orders", report.Fixed, report.Total),
			Fixed:   report.Fixed,
			Total:   report.Total,
		}, http.StatusOK)
	}
}

func parseUintParam(v string) (uint64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseUint(v, 10, 64)
}
