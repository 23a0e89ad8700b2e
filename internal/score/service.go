package score

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Evasive-6/TriviaSwift/internal/game"
)

// Repository is the persistence contract for scores, implemented by the
// Postgres repository and the JSON file store.
type Repository interface {
	Save(ctx context.Context, s Score) (Score, error)
	List(ctx context.Context) ([]Score, error)
	Top(ctx context.Context, limit int) ([]Score, error)
	ByPlayer(ctx context.Context, playerName string) ([]Score, error)
	CountGreaterThan(ctx context.Context, points int) (int, error)
	Stats(ctx context.Context) (Stats, error)
}

const defaultTopLimit = 10

// Service validates and persists game results and answers leaderboard
// queries.
type Service struct {
	repo   Repository
	logger zerolog.Logger
}

func NewService(repo Repository, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With().Str("component", "score").Logger(),
	}
}

// Submit validates a submission, persists it and returns the stored record
// with its 1-based rank. Rank counts strictly greater stored scores, so the
// record's own score (and any ties) never push it down; counting before or
// after the insert yields the same rank.
func (s *Service) Submit(ctx context.Context, sub Submission) (Score, int, error) {
	playerName := strings.TrimSpace(sub.PlayerName)
	if playerName == "" {
		return Score{}, 0, &ValidationError{Field: "playerName", Message: "playerName is required"}
	}
	if sub.Score == nil || sub.TotalQuestions == nil || sub.CorrectAnswers == nil {
		return Score{}, 0, &ValidationError{Field: "score", Message: "missing required fields: playerName, score, totalQuestions, correctAnswers"}
	}
	if *sub.CorrectAnswers > *sub.TotalQuestions {
		return Score{}, 0, &ValidationError{Field: "correctAnswers", Message: "correctAnswers cannot be greater than totalQuestions"}
	}

	points := max(0, *sub.Score)
	total := max(1, *sub.TotalQuestions)
	correct := min(max(0, *sub.CorrectAnswers), total)

	difficulty := sub.Difficulty
	if difficulty == "" {
		difficulty = "medium"
	}
	categories := sub.Categories
	if categories == nil {
		categories = []string{}
	}

	record := Score{
		PlayerName:     playerName,
		Score:          points,
		TotalQuestions: total,
		CorrectAnswers: correct,
		Accuracy:       game.Accuracy(correct, total),
		TimeTaken:      max(0, sub.TimeTaken),
		Difficulty:     difficulty,
		Categories:     categories,
	}

	saved, err := s.repo.Save(ctx, record)
	if err != nil {
		return Score{}, 0, fmt.Errorf("save score: %w", err)
	}

	greater, err := s.repo.CountGreaterThan(ctx, saved.Score)
	if err != nil {
		return Score{}, 0, fmt.Errorf("compute rank: %w", err)
	}

	s.logger.Info().
		Str("player", saved.PlayerName).
		Int("score", saved.Score).
		Int("rank", greater+1).
		Msg("score recorded")

	return saved, greater + 1, nil
}

// RecordResult persists a finished game session's result. It satisfies
// game.ScoreRecorder.
func (s *Service) RecordResult(ctx context.Context, result game.Result) error {
	record := Score{
		PlayerName:     result.PlayerName,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		Accuracy:       result.Accuracy,
		TimeTaken:      result.TimeTaken,
		Difficulty:     result.Difficulty,
		Categories:     []string{result.Category},
	}
	if _, err := s.repo.Save(ctx, record); err != nil {
		return fmt.Errorf("record game result: %w", err)
	}
	return nil
}

// List returns every score, highest first.
func (s *Service) List(ctx context.Context) ([]Score, error) {
	return s.repo.List(ctx)
}

// Top returns the highest limit scores.
func (s *Service) Top(ctx context.Context, limit int) ([]Score, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.repo.Top(ctx, limit)
}

// ByPlayer returns a player's scores, most recent first.
func (s *Service) ByPlayer(ctx context.Context, playerName string) ([]Score, error) {
	return s.repo.ByPlayer(ctx, playerName)
}

// Stats returns the aggregate summary over all scores.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx)
}
