package game

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Evasive-6/TriviaSwift/internal/metrics"
	"github.com/Evasive-6/TriviaSwift/internal/question"
)

// QuestionSource supplies the corpus the selector draws from. An empty
// filter returns every question.
type QuestionSource interface {
	Find(ctx context.Context, filter question.Filter) ([]question.Question, error)
}

// Result is the durable record of a finished session, handed to the score
// recorder at completion.
type Result struct {
	PlayerName     string
	Score          int
	TotalQuestions int
	CorrectAnswers int
	Accuracy       int
	TimeTaken      int
	Difficulty     string
	Category       string
}

// ScoreRecorder persists finished-game results.
type ScoreRecorder interface {
	RecordResult(ctx context.Context, result Result) error
}

// ServiceOptions configures gameplay defaults.
type ServiceOptions struct {
	DefaultQuestionCount int
}

// Service owns the game session lifecycle: it creates sessions, serves
// questions one at a time, scores answers and retires sessions on
// completion. The mutex serializes the read-modify-write of answer
// submission so concurrent submits on one session cannot lose updates.
type Service struct {
	mu sync.Mutex

	store        *Store
	questions    QuestionSource
	scores       ScoreRecorder
	metrics      *metrics.Metrics
	logger       zerolog.Logger
	defaultCount int
}

// NewService builds the game service. scores may be nil when no score
// persistence is wired; metrics may be nil in tests.
func NewService(store *Store, questions QuestionSource, scores ScoreRecorder, m *metrics.Metrics, opts ServiceOptions, logger zerolog.Logger) *Service {
	count := opts.DefaultQuestionCount
	if count <= 0 {
		count = 10
	}
	return &Service{
		store:        store,
		questions:    questions,
		scores:       scores,
		metrics:      m,
		logger:       logger.With().Str("component", "game").Logger(),
		defaultCount: count,
	}
}

// StartRequest carries the parameters of a new game session.
type StartRequest struct {
	PlayerName    string `json:"playerName"`
	QuestionCount int    `json:"questionCount"`
	Difficulty    string `json:"difficulty"`
	Category      string `json:"category"`
}

// StartResponse is the payload returned on session creation.
type StartResponse struct {
	GameID               string         `json:"gameId"`
	TotalQuestions       int            `json:"totalQuestions"`
	CurrentQuestionIndex int            `json:"currentQuestionIndex"`
	Question             PublicQuestion `json:"question"`
}

// AnswerResult reports the effect of one submitted answer. When
// GameComplete is true only the completion fields are meaningful.
type AnswerResult struct {
	GameComplete bool

	WasCorrect           bool
	CorrectAnswer        string
	Score                int
	CorrectAnswers       int
	CurrentQuestionIndex int
	TotalQuestions       int
	NextQuestion         *PublicQuestion

	FinalScore int
	Accuracy   int
	TotalTime  int
}

// StartSession creates a new active session and returns its first question.
func (s *Service) StartSession(ctx context.Context, req StartRequest) (*StartResponse, error) {
	playerName := strings.TrimSpace(req.PlayerName)
	if playerName == "" {
		return nil, ErrPlayerNameRequired
	}

	count := req.QuestionCount
	if count <= 0 {
		count = s.defaultCount
	}

	available, err := s.questions.Find(ctx, question.Filter{})
	if err != nil {
		return nil, fmt.Errorf("fetch question corpus: %w", err)
	}

	selected, err := SelectQuestions(available, count, req.Difficulty, req.Category)
	if err != nil {
		return nil, err
	}

	session := Session{
		ID:         uuid.NewString(),
		PlayerName: playerName,
		Questions:  selected,
		Status:     StatusActive,
		StartTime:  time.Now().UTC(),
		Difficulty: orMixed(req.Difficulty),
		Category:   orMixed(req.Category),
	}

	if err := s.store.Create(session); err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}

	if s.metrics != nil {
		s.metrics.GamesStarted.Inc()
	}
	s.logger.Info().
		Str("game_id", session.ID).
		Str("player", playerName).
		Int("questions", len(selected)).
		Str("difficulty", session.Difficulty).
		Str("category", session.Category).
		Msg("game session started")

	return &StartResponse{
		GameID:               session.ID,
		TotalQuestions:       len(selected),
		CurrentQuestionIndex: 0,
		Question:             publicQuestion(selected[0]),
	}, nil
}

// SubmitAnswer scores one answer against the current question and advances
// the session, completing it when the last question has been answered.
// Answers are compared with exact string equality; that comparison is the
// single authoritative rule.
func (s *Service) SubmitAnswer(ctx context.Context, gameID, answer string) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(gameID)
	if err != nil {
		return nil, err
	}
	if session.Status != StatusActive {
		return nil, ErrSessionNotActive
	}

	current := session.Questions[session.CurrentQuestionIndex]
	correct := answer == current.CorrectAnswer
	if correct {
		session.Score += pointsPerCorrect
		session.CorrectAnswers++
	}
	session.CurrentQuestionIndex++

	s.metrics.RecordAnswer(correct)

	// Completion must be checked before reading the next question: there is
	// no question at index len(questions).
	if session.CurrentQuestionIndex >= len(session.Questions) {
		return s.completeSession(ctx, session, correct, current.CorrectAnswer)
	}

	if err := s.store.Update(session.ID, session); err != nil {
		return nil, err
	}

	next := publicQuestion(session.Questions[session.CurrentQuestionIndex])
	return &AnswerResult{
		WasCorrect:           correct,
		CorrectAnswer:        current.CorrectAnswer,
		Score:                session.Score,
		CorrectAnswers:       session.CorrectAnswers,
		CurrentQuestionIndex: session.CurrentQuestionIndex,
		TotalQuestions:       len(session.Questions),
		NextQuestion:         &next,
	}, nil
}

func (s *Service) completeSession(ctx context.Context, session Session, wasCorrect bool, correctAnswer string) (*AnswerResult, error) {
	session.Status = StatusCompleted
	session.EndTime = time.Now().UTC()
	session.TotalTime = int(math.Round(session.EndTime.Sub(session.StartTime).Seconds()))

	if err := s.store.Update(session.ID, session); err != nil {
		return nil, err
	}

	accuracy := Accuracy(session.CorrectAnswers, len(session.Questions))

	if s.metrics != nil {
		s.metrics.GamesCompleted.Inc()
	}
	s.logger.Info().
		Str("game_id", session.ID).
		Str("player", session.PlayerName).
		Int("score", session.Score).
		Int("accuracy", accuracy).
		Int("total_time", session.TotalTime).
		Msg("game session completed")

	if s.scores != nil {
		result := Result{
			PlayerName:     session.PlayerName,
			Score:          session.Score,
			TotalQuestions: len(session.Questions),
			CorrectAnswers: session.CorrectAnswers,
			Accuracy:       accuracy,
			TimeTaken:      session.TotalTime,
			Difficulty:     session.Difficulty,
			Category:       session.Category,
		}
		if err := s.scores.RecordResult(ctx, result); err != nil {
			return nil, fmt.Errorf("record final score: %w", err)
		}
	}

	return &AnswerResult{
		GameComplete:         true,
		WasCorrect:           wasCorrect,
		CorrectAnswer:        correctAnswer,
		CurrentQuestionIndex: session.CurrentQuestionIndex,
		TotalQuestions:       len(session.Questions),
		CorrectAnswers:       session.CorrectAnswers,
		FinalScore:           session.Score,
		Accuracy:             accuracy,
		TotalTime:            session.TotalTime,
	}, nil
}

// GetSession returns the full session state.
func (s *Service) GetSession(gameID string) (Session, error) {
	return s.store.Get(gameID)
}

// EndSession deletes a session regardless of status.
func (s *Service) EndSession(gameID string) error {
	if err := s.store.Delete(gameID); err != nil {
		return err
	}
	s.logger.Info().Str("game_id", gameID).Msg("game session ended")
	return nil
}

func orMixed(value string) string {
	if strings.TrimSpace(value) == "" {
		return question.DifficultyMixed
	}
	return value
}
