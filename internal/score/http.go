package score

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/Evasive-6/TriviaSwift/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for score submission and leaderboards.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "score_http").Logger(),
	}
}

// List handles GET /api/scores
func (h *HTTPHandlers) List(w http.ResponseWriter, r *http.Request) {
	scores, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list scores")
		httperrors.RespondInternalError(w, "failed to list scores")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(scores),
		"data":    scores,
	})
}

// Top handles GET /api/scores/top/{limit}
func (h *HTTPHandlers) Top(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.PathValue("limit"))
	if limit <= 0 {
		limit = defaultTopLimit
	}

	scores, err := h.service.Top(r.Context(), limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch top scores")
		httperrors.RespondInternalError(w, "failed to fetch top scores")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"limit":   limit,
		"data":    scores,
	})
}

// ByPlayer handles GET /api/scores/player/{playerName}
func (h *HTTPHandlers) ByPlayer(w http.ResponseWriter, r *http.Request) {
	playerName := r.PathValue("playerName")
	scores, err := h.service.ByPlayer(r.Context(), playerName)
	if err != nil {
		h.logger.Error().Err(err).Str("player", playerName).Msg("failed to fetch player scores")
		httperrors.RespondInternalError(w, "failed to fetch player scores")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"player":  playerName,
		"count":   len(scores),
		"data":    scores,
	})
}

// Submit handles POST /api/scores
func (h *HTTPHandlers) Submit(w http.ResponseWriter, r *http.Request) {
	var sub Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	saved, rank, err := h.service.Submit(r.Context(), sub)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, verr.Message, verr.Field)
			return
		}
		h.logger.Error().Err(err).Msg("failed to submit score")
		httperrors.RespondInternalError(w, "failed to submit score")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    saved,
		"rank":    rank,
	})
}

// StatsSummary handles GET /api/scores/stats/summary
func (h *HTTPHandlers) StatsSummary(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to compute stats")
		httperrors.RespondInternalError(w, "failed to compute stats")
		return
	}

	payload := map[string]interface{}{
		"success": true,
		"data":    stats,
	}
	if stats.TotalGames == 0 {
		payload["message"] = "no scores recorded yet"
	}
	respondJSON(w, http.StatusOK, payload)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
