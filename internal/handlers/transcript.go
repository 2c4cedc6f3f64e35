package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"transcripter-backend/internal/logging"
	"transcripter-backend/internal/models"
	"transcripter-backend/internal/services"
)

type transcriptService interface {
	GetTranscript(ctx context.Context, videoID string) (*models.TranscriptResult, error)
	ListLanguages(ctx context.Context, videoID string) ([]string, error)
}

type TranscriptHandler struct {
	transcripts transcriptService
	logger      *slog.Logger
}

func NewTranscriptHandler(transcripts transcriptService, logger *slog.Logger) *TranscriptHandler {
	return &TranscriptHandler{
		transcripts: transcripts,
		logger:      logging.WithComponent(logger, "transcript_handler"),
	}
}

var errInvalidBody = errors.New("Invalid request body")

// Get handles POST /api/transcript.
func (h *TranscriptHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(h.logger, r)

	var req models.VideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid request body", "error", err)
		h.writeError(w, log, &services.TranscriptError{Kind: services.KindInvalidInput, Err: errInvalidBody})
		return
	}
	log.Info("received transcript request", "url", req.URL)

	videoID, err := services.ExtractVideoID(req.URL)
	if err != nil {
		h.writeError(w, log, err)
		return
	}
	log.Info("extracted video id", "video_id", videoID)

	result, err := h.transcripts.GetTranscript(r.Context(), videoID)
	if err != nil {
		h.writeError(w, log, err)
		return
	}
	if result == nil {
		h.writeError(w, log, errors.New("transcript service returned no result"))
		return
	}

	writeJSON(w, http.StatusOK, models.TranscriptResponse{Success: true, Data: result})
}

func (h *TranscriptHandler) writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status, detail := services.StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error("unexpected error", "error", err)
	} else {
		log.Warn("request failed", "kind", services.KindOf(err).String(), "error", err)
	}
	writeDetail(w, status, detail)
}
