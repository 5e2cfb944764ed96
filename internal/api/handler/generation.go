package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avelar/pixelmint/internal/api/middleware"
	"github.com/avelar/pixelmint/internal/api/response"
	"github.com/avelar/pixelmint/internal/service"
	"github.com/avelar/pixelmint/internal/worker"
)

// GenerationHandler handles image generation endpoints.
type GenerationHandler struct {
	generations *service.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generations *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generations: generations}
}

type submitGenerationRequest struct {
	Prompt    string `json:"prompt"`
	Model     string `json:"model"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Seed      int64  `json:"seed"`
	BatchSize int    `json:"batchSize"`
	BatchID   string `json:"batchId"`
}

// Submit handles POST /api/generations.
func (h *GenerationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "no identity")
		return
	}

	var req submitGenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Prompt == "" {
		response.Error(w, http.StatusBadRequest, "prompt is required")
		return
	}

	settings := worker.ModelSettings{
		Model:     req.Model,
		Width:     req.Width,
		Height:    req.Height,
		Seed:      req.Seed,
		BatchSize: req.BatchSize,
	}

	result, err := h.generations.Submit(r.Context(), id, req.Prompt, settings, req.BatchID)
	if err != nil {
		var insufficient *service.InsufficientPointsError
		switch {
		case errors.Is(err, service.ErrMustReauthenticate):
			response.JSON(w, http.StatusGone, map[string]string{"error": "login required"})
		case errors.As(err, &insufficient):
			response.JSON(w, http.StatusForbidden, map[string]any{
				"error":         "insufficient points",
				"pointsBalance": insufficient.Balance,
				"required":      insufficient.Required,
			})
		case errors.Is(err, worker.ErrDispatchFailed):
			response.Error(w, http.StatusBadGateway, "generation backend unavailable")
		default:
			response.Error(w, http.StatusInternalServerError, "failed to submit generation")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// List handles GET /api/generations.
func (h *GenerationHandler) List(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "no identity")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	gens, err := h.generations.List(r.Context(), id, limit)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list generations")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{"generations": gens})
}

// Status handles GET /api/generations/{id}/status.
func (h *GenerationHandler) Status(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "no identity")
		return
	}
	genID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid generation id")
		return
	}

	gen, err := h.generations.Get(r.Context(), id, genID)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	out := map[string]any{
		"generationId": gen.ID,
		"status":       gen.Status,
	}
	if gen.ImageURL != nil {
		out["imageUrl"] = *gen.ImageURL
	}
	if gen.ErrorMessage != nil {
		out["error"] = *gen.ErrorMessage
	}
	response.JSON(w, http.StatusOK, out)
}

// Update handles PATCH /api/generations/{id}.
func (h *GenerationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "no identity")
		return
	}
	genID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "invalid generation id")
		return
	}

	var update service.MetaUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	gen, err := h.generations.UpdateMeta(r.Context(), id, genID, update)
	if err != nil {
		writeLookupError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, gen)
}

// Ownership failures read as not-found so generation ids are not probeable.
func writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		response.Error(w, http.StatusNotFound, "generation not found")
	case errors.Is(err, service.ErrForbidden):
		response.Error(w, http.StatusNotFound, "generation not found")
	default:
		response.Error(w, http.StatusInternalServerError, "failed to load generation")
	}
}
