package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/ozzus/tours-gateway/internal/api/http/handlers"
	"github.com/ozzus/tours-gateway/internal/api/http/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Log            *zap.Logger
	Tours          *handlers.ToursHandler
	Health         http.HandlerFunc
	AllowedOrigins []string
}

// NewRouter wires the public API behind CORS, request ids, access logging and
// panic recovery.
func NewRouter(deps RouterDeps) http.Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logging(log),
		middleware.Recover(log),
	)
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/api/health", deps.Health)
	r.Get("/api/tours", deps.Tours.ListTours)
	r.Get("/api/tours/{id}", deps.Tours.GetTour)

	opts := cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}
	// rs/cors treats an empty list as "allow all"; an empty allow-list here means none.
	if len(deps.AllowedOrigins) == 0 {
		opts.AllowOriginFunc = func(string) bool { return false }
	}

	return cors.New(opts).Handler(r)
}
