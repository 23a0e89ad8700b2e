package game

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "github.com/Evasive-6/TriviaSwift/pkg/http/errors"
)

// HTTPHandlers provides the REST surface for game sessions.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "game_http").Logger(),
	}
}

// Start handles POST /api/game/start
func (h *HTTPHandlers) Start(w http.ResponseWriter, r *http.Request) {
	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	resp, err := h.service.StartSession(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"gameId":          resp.GameID,
		"totalQuestions":  resp.TotalQuestions,
		"currentQuestion": resp.CurrentQuestionIndex,
		"question":        resp.Question,
	})
}

type answerRequest struct {
	GameID string  `json:"gameId"`
	Answer *string `json:"answer"`
}

// Answer handles POST /api/game/answer
func (h *HTTPHandlers) Answer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if req.GameID == "" || req.Answer == nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeMissingField, "gameId and answer are required")
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), req.GameID, *req.Answer)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	if result.GameComplete {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":        true,
			"gameComplete":   true,
			"finalScore":     result.FinalScore,
			"correctAnswers": result.CorrectAnswers,
			"totalQuestions": result.TotalQuestions,
			"accuracy":       result.Accuracy,
			"totalTime":      result.TotalTime,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"gameComplete":    false,
		"currentQuestion": result.CurrentQuestionIndex,
		"totalQuestions":  result.TotalQuestions,
		"score":           result.Score,
		"correctAnswers":  result.CorrectAnswers,
		"wasCorrect":      result.WasCorrect,
		"correctAnswer":   result.CorrectAnswer,
		"question":        result.NextQuestion,
	})
}

// Get handles GET /api/game/{gameId}
func (h *HTTPHandlers) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetSession(r.PathValue("gameId"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    session,
	})
}

// End handles DELETE /api/game/{gameId}
func (h *HTTPHandlers) End(w http.ResponseWriter, r *http.Request) {
	if err := h.service.EndSession(r.PathValue("gameId")); err != nil {
		h.respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "game session ended",
	})
}

func (h *HTTPHandlers) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrPlayerNameRequired):
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, err.Error(), "playerName")
	case errors.Is(err, ErrSessionNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeGameNotFound, "game session not found")
	case errors.Is(err, ErrSessionNotActive):
		httperrors.RespondBadRequest(w, httperrors.ErrCodeGameNotActive, "game session is not active")
	case errors.Is(err, ErrNoQuestionsAvailable):
		httperrors.RespondNotFound(w, httperrors.ErrCodeNoQuestionsAvailable, "no questions available to start game")
	case errors.Is(err, ErrNoMatchingQuestions):
		httperrors.RespondNotFound(w, httperrors.ErrCodeNoMatchingQuestions, "no questions match the requested filters")
	default:
		h.logger.Error().Err(err).Msg("game operation failed")
		httperrors.RespondInternalError(w, "internal error")
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
