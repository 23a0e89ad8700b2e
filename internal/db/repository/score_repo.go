package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Evasive-6/TriviaSwift/internal/score"
)

// ScoreRepository persists game results in Postgres.
type ScoreRepository struct {
	pool *pgxpool.Pool
}

var _ score.Repository = (*ScoreRepository)(nil)

func NewScoreRepository(pool *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{pool: pool}
}

const scoreColumns = `score_id, player_name, score, total_questions, correct_answers, accuracy, time_taken, difficulty, categories, created_at`

func (r *ScoreRepository) Save(ctx context.Context, s score.Score) (score.Score, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO scores (player_name, score, total_questions, correct_answers, accuracy, time_taken, difficulty, categories)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+scoreColumns,
		s.PlayerName, s.Score, s.TotalQuestions, s.CorrectAnswers, s.Accuracy, s.TimeTaken, s.Difficulty, s.Categories)
	saved, err := scanScore(row)
	if err != nil {
		return score.Score{}, fmt.Errorf("insert score: %w", err)
	}
	return saved, nil
}

func (r *ScoreRepository) List(ctx context.Context) ([]score.Score, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scoreColumns+` FROM scores ORDER BY score DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list scores: %w", err)
	}
	defer rows.Close()
	return scanScores(rows)
}

func (r *ScoreRepository) Top(ctx context.Context, limit int) ([]score.Score, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scoreColumns+` FROM scores ORDER BY score DESC, time_taken ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top scores: %w", err)
	}
	defer rows.Close()
	return scanScores(rows)
}

func (r *ScoreRepository) ByPlayer(ctx context.Context, playerName string) ([]score.Score, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scoreColumns+` FROM scores WHERE player_name ILIKE '%' || $1 || '%' ORDER BY created_at DESC`,
		playerName)
	if err != nil {
		return nil, fmt.Errorf("player scores: %w", err)
	}
	defer rows.Close()
	return scanScores(rows)
}

func (r *ScoreRepository) CountGreaterThan(ctx context.Context, points int) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM scores WHERE score > $1`, points).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count scores: %w", err)
	}
	return count, nil
}

func (r *ScoreRepository) Stats(ctx context.Context) (score.Stats, error) {
	var stats score.Stats
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(DISTINCT player_name),
		        COALESCE(ROUND(AVG(score)), 0),
		        COALESCE(MAX(score), 0)
		 FROM scores`).
		Scan(&stats.TotalGames, &stats.TotalPlayers, &stats.AverageScore, &stats.HighestScore)
	if err != nil {
		return score.Stats{}, fmt.Errorf("score stats: %w", err)
	}
	return stats, nil
}

func scanScore(row pgx.Row) (score.Score, error) {
	var s score.Score
	err := row.Scan(&s.ID, &s.PlayerName, &s.Score, &s.TotalQuestions, &s.CorrectAnswers, &s.Accuracy, &s.TimeTaken, &s.Difficulty, &s.Categories, &s.CreatedAt)
	return s, err
}

func scanScores(rows pgx.Rows) ([]score.Score, error) {
	var scores []score.Score
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
