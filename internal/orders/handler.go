package orders

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/cart"
	"github.com/Guidoll2/fontaneriabarcelona/internal/httpx"
	"github.com/Guidoll2/fontaneriabarcelona/internal/metrics"
	"github.com/Guidoll2/fontaneriabarcelona/internal/middleware"
	"github.com/Guidoll2/fontaneriabarcelona/internal/transport"
	"github.com/Guidoll2/fontaneriabarcelona/internal/validation"
)

type Handler struct {
	service *Service
	carts   *cart.Store
	val     *validation.Validator
	log     *slog.Logger
}

// NewHandler wires the checkout endpoint. carts may be nil when the cart API
// is not mounted; a successful order then simply has no session to clear.
func NewHandler(service *Service, carts *cart.Store, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		carts:   carts,
		val:     val,
		log:     log,
	}
}

// Create serves POST /api/orders.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req Request
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("order create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("order create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	order, err := h.service.Submit(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoItems):
			transport.WriteError(w, http.StatusBadRequest, "No items in order", nil)
		case errors.Is(err, ErrInvalidItem):
			transport.WriteError(w, http.StatusBadRequest, "Invalid line item", nil)
		case errors.Is(err, ErrTotalMismatch):
			log.Warn("order create: total mismatch", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadRequest, "Order total does not match items", nil)
		case errors.Is(err, ErrDeliveryFailed):
			log.Error("order create: delivery failed", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusBadGateway, "Failed to process order", nil)
		default:
			log.Error("order create: internal error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "Failed to process order", nil)
		}
		return
	}

	// The session cart served its purpose once the order is in.
	if h.carts != nil {
		if token := r.Header.Get(cart.SessionHeader); token != "" {
			h.carts.Drop(token)
		}
	}

	metrics.OrdersReceived.Inc()
	log.Info("order create: ok",
		slog.String("order_number", order.Number),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.TotalPrice),
	)
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Order received successfully. Confirmation emails sent.",
		"orderNumber": order.Number,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
