package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/cache"
	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
	"github.com/Guidoll2/fontaneriabarcelona/internal/middleware"
	"github.com/Guidoll2/fontaneriabarcelona/internal/transport"
)

const listCacheKeyPrefix = "catalog:list:"

type Handler struct {
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewHandler(cacheStore cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		cache:    cacheStore,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// List serves GET /api/products?locale=. The payload is static per locale,
// so it is served from cache when one is configured.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	locale := i18n.Parse(r.URL.Query().Get("locale"))
	cacheKey := listCacheKeyPrefix + string(locale)

	if payload, ok, err := h.cache.Get(ctx, cacheKey); err == nil && ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
		return
	} else if err != nil {
		log.Warn("products list: cache read failed", slog.String("error", err.Error()))
	}

	response := map[string]interface{}{"products": List(locale)}
	transport.WriteJSON(w, http.StatusOK, response)

	if payload, err := json.Marshal(response); err == nil {
		if err := h.cache.Set(ctx, cacheKey, payload, h.cacheTTL); err != nil {
			log.Warn("products list: cache write failed", slog.String("error", err.Error()))
		}
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
