package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"

	"nba-shotviz-service/internal/app/shotcharts"
	"nba-shotviz-service/internal/providers"
)

// Handler wires HTTP routes to the shot-chart service.
type Handler struct {
	svc        *shotcharts.Service
	cache      providers.ShotChartCache
	adminToken string
	logger     *slog.Logger
}

// NewHandler constructs a Handler. The cache may be nil when no cache layer
// is configured; the invalidation route then reports it as unavailable.
func NewHandler(svc *shotcharts.Service, cache providers.ShotChartCache, adminToken string, logger *slog.Logger) *Handler {
	return &Handler{
		svc:        svc,
		cache:      cache,
		adminToken: adminToken,
		logger:     logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness to serve chart requests.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.svc == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "service not ready")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// ShotChart builds and returns the full chart payload for one player.
func (h *Handler) ShotChart(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}

	req, err := parseChartQuery(r, h.svc.DefaultOptions())
	if err != nil {
		h.writeError(w, nethttp.StatusBadRequest, err.Error())
		return
	}

	payload, err := h.svc.BuildChart(r.Context(), req)
	if err != nil {
		h.writeChartError(w, err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, payload)
}

// InvalidateCache clears cached shot charts. Requires the admin token.
func (h *Handler) InvalidateCache(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodDelete {
		h.writeError(w, nethttp.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if h.adminToken == "" || r.Header.Get("X-Admin-Token") != h.adminToken {
		h.writeError(w, nethttp.StatusUnauthorized, "invalid admin token")
		return
	}
	if h.cache == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "cache not configured")
		return
	}

	if key := r.URL.Query().Get("key"); key != "" {
		if err := h.cache.Invalidate(r.Context(), key); err != nil {
			h.writeError(w, nethttp.StatusInternalServerError, "cache invalidation failed")
			return
		}
	} else if err := h.cache.InvalidateAll(r.Context()); err != nil {
		h.writeError(w, nethttp.StatusInternalServerError, "cache invalidation failed")
		return
	}

	w.WriteHeader(nethttp.StatusNoContent)
}

func (h *Handler) writeChartError(w nethttp.ResponseWriter, err error) {
	var rle *providers.RateLimitError
	switch {
	case errors.Is(err, shotcharts.ErrLeagueUnavailable):
		h.writeError(w, nethttp.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &rle):
		if rle.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(rle.RetryAfter.Seconds())))
		}
		h.writeError(w, nethttp.StatusTooManyRequests, "upstream rate limited")
	case errors.Is(err, providers.ErrProviderUnavailable):
		h.writeError(w, nethttp.StatusBadGateway, "upstream unavailable")
	default:
		if h.logger != nil {
			h.logger.Error("chart build failed", "error", err)
		}
		h.writeError(w, nethttp.StatusInternalServerError, "chart build failed")
	}
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
