package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"transcripter-backend/internal/logging"
	"transcripter-backend/internal/models"
	"transcripter-backend/internal/services"
)

type connectivityChecker interface {
	Check(ctx context.Context) (int, error)
}

// DiagnosticsHandler serves the health and debugging endpoints. None of them
// report failure through the status code.
type DiagnosticsHandler struct {
	transcripts  transcriptService
	connectivity connectivityChecker
	logger       *slog.Logger
}

func NewDiagnosticsHandler(transcripts transcriptService, connectivity connectivityChecker, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		transcripts:  transcripts,
		connectivity: connectivity,
		logger:       logging.WithComponent(logger, "diagnostics"),
	}
}

func (h *DiagnosticsHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "healthy"})
}

// Languages handles GET /api/test/{video_id}.
func (h *DiagnosticsHandler) Languages(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "video_id")

	langs, err := h.transcripts.ListLanguages(r.Context(), videoID)
	if err != nil {
		requestLogger(h.logger, r).Warn("caption listing failed", "video_id", videoID, "error", err)
		writeJSON(w, http.StatusOK, models.LanguagesResponse{
			Available: false,
			Error:     services.Cause(err),
			VideoID:   videoID,
		})
		return
	}

	writeJSON(w, http.StatusOK, models.LanguagesResponse{
		Available:   true,
		Transcripts: langs,
		VideoID:     videoID,
	})
}

// Connectivity handles GET /api/test-connectivity.
func (h *DiagnosticsHandler) Connectivity(w http.ResponseWriter, r *http.Request) {
	status, err := h.connectivity.Check(r.Context())
	if err != nil {
		requestLogger(h.logger, r).Warn("connectivity check failed", "error", err)
		writeJSON(w, http.StatusOK, models.ConnectivityResponse{YouTubeAccessible: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, models.ConnectivityResponse{
		YouTubeAccessible: status == http.StatusOK,
		StatusCode:        status,
	})
}
