package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"transcripter-backend/internal/logging"
	"transcripter-backend/internal/middleware"
	"transcripter-backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, models.ErrorResponse{Detail: detail})
}

func requestLogger(logger *slog.Logger, r *http.Request) *slog.Logger {
	return logging.WithRequestID(logger, middleware.GetRequestID(r.Context()))
}
