package leads

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/httpx"
	"github.com/Guidoll2/fontaneriabarcelona/internal/metrics"
	"github.com/Guidoll2/fontaneriabarcelona/internal/middleware"
	"github.com/Guidoll2/fontaneriabarcelona/internal/transport"
	"github.com/Guidoll2/fontaneriabarcelona/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

// CreateQuote serves POST /api/leads.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req QuoteRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("quote create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	req.Normalize()
	if err := h.val.Struct(req); err != nil {
		log.Warn("quote create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	lead, err := h.service.CreateQuote(ctx, req, h.meta(r))
	if err != nil {
		h.writeServiceError(w, log, "quote create", err)
		return
	}

	metrics.LeadsReceived.WithLabelValues("quote").Inc()
	log.Info("quote create: ok", slog.String("lead_id", lead.ID), slog.String("service", lead.Service))
	transport.WriteOK(w)
}

// CreateChlorinator serves POST /api/leads/chlorinator.
func (h *Handler) CreateChlorinator(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req ChlorinatorRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("chlorinator create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	req.Normalize()
	if err := h.val.Struct(req); err != nil {
		log.Warn("chlorinator create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	lead, err := h.service.CreateChlorinator(ctx, req, h.meta(r))
	if err != nil {
		h.writeServiceError(w, log, "chlorinator create", err)
		return
	}

	metrics.LeadsReceived.WithLabelValues("chlorinator").Inc()
	log.Info("chlorinator create: ok", slog.String("lead_id", lead.ID), slog.String("city", lead.City))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Lead registrado correctamente",
	})
}

func (h *Handler) writeServiceError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	if errors.Is(err, ErrSpamDetected) {
		// Answer like any other bad request; the decoy field stays unnamed.
		metrics.SpamRejected.Inc()
		log.Info(op + ": rejected submission")
		transport.WriteError(w, http.StatusBadRequest, "invalid submission", nil)
		return
	}
	log.Error(op+": internal error", slog.String("error", err.Error()))
	transport.WriteError(w, http.StatusInternalServerError, "internal error", nil)
}

func (h *Handler) meta(r *http.Request) Meta {
	return Meta{
		IP:        httpx.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
