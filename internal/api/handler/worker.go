package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/avelar/pixelmint/internal/api/response"
	"github.com/avelar/pixelmint/internal/service"
	"github.com/avelar/pixelmint/internal/worker"
)

// WorkerHandler receives completion callbacks from the generation backend.
type WorkerHandler struct {
	generations *service.GenerationService
	logger      *slog.Logger
}

// NewWorkerHandler creates a new WorkerHandler.
func NewWorkerHandler(generations *service.GenerationService, logger *slog.Logger) *WorkerHandler {
	return &WorkerHandler{generations: generations, logger: logger}
}

// Callback handles POST /api/worker/callback.
func (h *WorkerHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var payload worker.CallbackPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payload.ID == "" {
		response.Error(w, http.StatusBadRequest, "missing job id")
		return
	}

	if err := h.generations.HandleWorkerCallback(r.Context(), payload); err != nil {
		h.logger.Error("worker callback", "job_id", payload.ID, "error", err)
		response.Error(w, http.StatusInternalServerError, "callback processing failed")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
