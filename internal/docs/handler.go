// Package docs serves the downloadable pool valve guide, fetched from a
// configured external URL or a file shipped with the deployment.
package docs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/Guidoll2/fontaneriabarcelona/internal/cache"
	"github.com/Guidoll2/fontaneriabarcelona/internal/middleware"
	"github.com/Guidoll2/fontaneriabarcelona/internal/transport"
)

const (
	valveGuideCacheKey = "docs:valve-guide"
	defaultFilename    = "guia-valvulas-piscina.pdf"
	// Safety cap on the external document size.
	maxDocumentBytes = 20 << 20
)

var httpURLRegex = regexp.MustCompile(`(?i)^https?://`)

type Handler struct {
	externalURL string
	localPath   string
	cache       cache.Cache
	cacheTTL    time.Duration
	httpClient  *http.Client
	log         *slog.Logger
}

func NewHandler(externalURL, localPath string, cacheStore cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		externalURL: strings.TrimSpace(externalURL),
		localPath:   localPath,
		cache:       cacheStore,
		cacheTTL:    cacheTTL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		log:         log,
	}
}

// ValveGuide serves GET /api/valve-guide.
func (h *Handler) ValveGuide(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if h.externalURL != "" && httpURLRegex.MatchString(h.externalURL) {
		h.serveExternal(w, r, log)
		return
	}
	h.serveLocal(w, log)
}

func (h *Handler) serveExternal(w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filename := path.Base(h.externalURL)
	if filename == "" || filename == "." || filename == "/" {
		filename = defaultFilename
	}

	if data, ok, err := h.cache.Get(ctx, valveGuideCacheKey); err == nil && ok {
		writePDF(w, filename, data)
		return
	} else if err != nil {
		log.Warn("valve guide: cache read failed", slog.String("error", err.Error()))
	}

	data, err := h.fetchExternal(ctx)
	if err != nil {
		log.Error("valve guide: external fetch failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadGateway, "Failed to fetch document", nil)
		return
	}

	if err := h.cache.Set(ctx, valveGuideCacheKey, data, h.cacheTTL); err != nil {
		log.Warn("valve guide: cache write failed", slog.String("error", err.Error()))
	}

	writePDF(w, filename, data)
}

func (h *Handler) fetchExternal(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.externalURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
}

func (h *Handler) serveLocal(w http.ResponseWriter, log *slog.Logger) {
	data, err := os.ReadFile(h.localPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("valve guide: local file missing", slog.String("path", h.localPath))
			transport.WriteError(w, http.StatusNotFound, "Document not found", nil)
			return
		}
		log.Error("valve guide: local read failed", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to read document", nil)
		return
	}
	writePDF(w, path.Base(h.localPath), data)
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
