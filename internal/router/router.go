package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"transcripter-backend/internal/handlers"
	"transcripter-backend/internal/middleware"
)

func New(
	transcriptHandler *handlers.TranscriptHandler,
	diagnosticsHandler *handlers.DiagnosticsHandler,
	frontendURL string,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.CORS(frontendURL))

	r.Route("/api", func(r chi.Router) {
		r.Post("/transcript", transcriptHandler.Get)
		r.Get("/health", diagnosticsHandler.Health)

		// Debugging aids
		r.Get("/test/{video_id}", diagnosticsHandler.Languages)
		r.Get("/test-connectivity", diagnosticsHandler.Connectivity)
	})

	return r
}
