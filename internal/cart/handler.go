package cart

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Guidoll2/fontaneriabarcelona/internal/httpx"
	"github.com/Guidoll2/fontaneriabarcelona/internal/middleware"
	"github.com/Guidoll2/fontaneriabarcelona/internal/transport"
	"github.com/go-chi/chi/v5"
)

// SessionHeader carries the cart session token. The handler mints a token on
// first contact and echoes it on every response.
const SessionHeader = "X-Cart-Session"

// ProductSource resolves product ids to cart lines so carts only ever hold
// catalog products at catalog prices.
type ProductSource interface {
	CartItem(id string) (Item, bool)
}

type Handler struct {
	store    *Store
	products ProductSource
	log      *slog.Logger
}

func NewHandler(store *Store, products ProductSource, log *slog.Logger) *Handler {
	return &Handler{
		store:    store,
		products: products,
		log:      log,
	}
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

// Get serves GET /api/cart.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	token, c := h.acquire(r)
	h.writeCart(w, token, c)
}

// AddItem serves POST /api/cart/items.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req addItemRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("cart add: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	item, ok := h.products.CartItem(strings.TrimSpace(req.ProductID))
	if !ok {
		log.Warn("cart add: unknown product", slog.String("product_id", req.ProductID))
		transport.WriteError(w, http.StatusNotFound, "product not found", nil)
		return
	}

	token, c := h.acquire(r)
	c.AddItem(item)

	log.Info("cart add: ok", slog.String("product_id", item.ID), slog.Int("total_items", c.TotalItems()))
	h.writeCart(w, token, c)
}

// UpdateQuantity serves PATCH /api/cart/items/{id}. A quantity of zero or
// less removes the line.
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing product id", nil)
		return
	}

	var req updateQuantityRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("cart update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	token, c := h.acquire(r)
	c.UpdateQuantity(id, req.Quantity)

	log.Info("cart update: ok", slog.String("product_id", id), slog.Int("quantity", req.Quantity))
	h.writeCart(w, token, c)
}

// RemoveItem serves DELETE /api/cart/items/{id}.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		transport.WriteError(w, http.StatusBadRequest, "missing product id", nil)
		return
	}

	token, c := h.acquire(r)
	c.RemoveItem(id)

	log.Info("cart remove: ok", slog.String("product_id", id))
	h.writeCart(w, token, c)
}

// Clear serves DELETE /api/cart.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	token, c := h.acquire(r)
	c.Clear()
	h.writeCart(w, token, c)
}

func (h *Handler) acquire(r *http.Request) (string, *Cart) {
	return h.store.Acquire(strings.TrimSpace(r.Header.Get(SessionHeader)))
}

func (h *Handler) writeCart(w http.ResponseWriter, token string, c *Cart) {
	w.Header().Set(SessionHeader, token)
	transport.WriteJSON(w, http.StatusOK, cartResponse{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
