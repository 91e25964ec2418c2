package handlers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ozzus/tours-gateway/internal/api/http/middleware"
	"github.com/ozzus/tours-gateway/internal/domain/models"
	"go.uber.org/zap"
)

const defaultToursTimeout = 20 * time.Second

type tourService interface {
	ListTours(ctx context.Context, req models.SearchRequest) (models.ListResult, error)
	GetTour(ctx context.Context, id string) (models.TourDetail, error)
}

type ToursHandler struct {
	log     *zap.Logger
	service tourService
	timeout time.Duration
}

func NewToursHandler(log *zap.Logger, service tourService, timeout time.Duration) *ToursHandler {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultToursTimeout
	}

	return &ToursHandler{log: log, service: service, timeout: timeout}
}

// ListTours serves GET /api/tours.
func (h *ToursHandler) ListTours(w http.ResponseWriter, r *http.Request) {
	req := parseSearchRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.service.ListTours(ctx, req)
	if h.clientGone(r) {
		return
	}
	if err != nil {
		writeErrorFrom(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetTour serves GET /api/tours/{id}.
func (h *ToursHandler) GetTour(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	detail, err := h.service.GetTour(ctx, id)
	if h.clientGone(r) {
		return
	}
	if err != nil {
		writeErrorFrom(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

// clientGone reports whether the caller disconnected; the response is then
// abandoned instead of written.
func (h *ToursHandler) clientGone(r *http.Request) bool {
	if r.Context().Err() == nil {
		return false
	}

	h.log.Debug("client disconnected before response",
		zap.String("request_id", middleware.RequestIDFromContext(r.Context())),
		zap.String("path", r.URL.Path),
	)
	return true
}
