package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/Evasive-6/TriviaSwift/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for question management.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "question_http").Logger(),
	}
}

// List handles GET /api/questions
func (h *HTTPHandlers) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list questions")
		httperrors.RespondInternalError(w, "failed to list questions")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(questions),
		"data":    questions,
	})
}

// Get handles GET /api/questions/{id}
func (h *HTTPHandlers) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    q,
	})
}

// ByCategory handles GET /api/questions/category/{category}
func (h *HTTPHandlers) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	questions, err := h.service.Find(r.Context(), Filter{Category: category})
	if err != nil {
		h.logger.Error().Err(err).Str("category", category).Msg("failed to fetch questions by category")
		httperrors.RespondInternalError(w, "failed to fetch questions")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"count":    len(questions),
		"category": category,
		"data":     questions,
	})
}

// Random handles GET /api/questions/random/{count}
func (h *HTTPHandlers) Random(w http.ResponseWriter, r *http.Request) {
	count, _ := strconv.Atoi(r.PathValue("count"))
	filter := Filter{
		Category:   r.URL.Query().Get("category"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}

	questions, err := h.service.Random(r.Context(), count, filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch random questions")
		httperrors.RespondInternalError(w, "failed to fetch questions")
		return
	}
	if len(questions) == 0 {
		httperrors.RespondNotFound(w, httperrors.ErrCodeNoMatchingQuestions, "no questions available matching your criteria")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(questions),
		"data":    questions,
	})
}

// Create handles POST /api/questions
func (h *HTTPHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var q Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	created, err := h.service.Create(r.Context(), q)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    created,
	})
}

// Update handles PUT /api/questions/{id}
func (h *HTTPHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var q Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	updated, err := h.service.Update(r.Context(), r.PathValue("id"), q)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    updated,
	})
}

// Delete handles DELETE /api/questions/{id}
func (h *HTTPHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "question deleted successfully",
	})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeQuestionNotFound, "question not found")
	case errors.As(err, &verr):
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, verr.Message, verr.Field)
	default:
		h.logger.Error().Err(err).Msg("question operation failed")
		httperrors.RespondInternalError(w, "internal error")
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
