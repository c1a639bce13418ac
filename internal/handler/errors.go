package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
)

// writeServiceError maps domain errors to HTTP statuses. Anything unknown is
// an upstream failure and its message is passed through.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidSignature):
		utils.WriteError(w, "invalid signature", http.StatusBadRequest)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrAlreadyPaid),
		errors.Is(err, entities.ErrNoShipment),
		errors.Is(err, entities.ErrNotDelivered),
		errors.Is(err, entities.ErrDeliveryDateSet):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
