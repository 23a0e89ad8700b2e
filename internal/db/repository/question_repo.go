package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Evasive-6/TriviaSwift/internal/question"
)

// QuestionRepository persists questions in Postgres.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

var _ question.Store = (*QuestionRepository)(nil)

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = `question_id, question, options, correct_answer, category, difficulty, explanation, created_at, updated_at`

func (r *QuestionRepository) List(ctx context.Context) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+` FROM questions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *QuestionRepository) Get(ctx context.Context, id string) (question.Question, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+questionColumns+` FROM questions WHERE question_id = $1`, id)
	q, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return question.Question{}, question.ErrNotFound
		}
		return question.Question{}, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

func (r *QuestionRepository) Find(ctx context.Context, filter question.Filter) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE ($1 = '' OR category = $1)
		   AND ($2 = '' OR difficulty = $2)
		 ORDER BY created_at DESC`,
		normalizedCategory(filter), normalizedDifficulty(filter))
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *QuestionRepository) Random(ctx context.Context, count int, filter question.Filter) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE ($1 = '' OR category = $1)
		   AND ($2 = '' OR difficulty = $2)
		 ORDER BY random() LIMIT $3`,
		normalizedCategory(filter), normalizedDifficulty(filter), count)
	if err != nil {
		return nil, fmt.Errorf("random questions: %w", err)
	}
	defer rows.Close()
	return scanQuestions(rows)
}

func (r *QuestionRepository) Create(ctx context.Context, q question.Question) (question.Question, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO questions (question, options, correct_answer, category, difficulty, explanation)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+questionColumns,
		q.Text, q.Options, q.CorrectAnswer, q.Category, q.Difficulty, q.Explanation)
	created, err := scanQuestion(row)
	if err != nil {
		return question.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return created, nil
}

func (r *QuestionRepository) Update(ctx context.Context, id string, q question.Question) (question.Question, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE questions
		 SET question = $2, options = $3, correct_answer = $4, category = $5, difficulty = $6, explanation = $7, updated_at = now()
		 WHERE question_id = $1
		 RETURNING `+questionColumns,
		id, q.Text, q.Options, q.CorrectAnswer, q.Category, q.Difficulty, q.Explanation)
	updated, err := scanQuestion(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return question.Question{}, question.ErrNotFound
		}
		return question.Question{}, fmt.Errorf("update question: %w", err)
	}
	return updated, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE question_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return question.ErrNotFound
	}
	return nil
}

func scanQuestion(row pgx.Row) (question.Question, error) {
	var q question.Question
	err := row.Scan(&q.ID, &q.Text, &q.Options, &q.CorrectAnswer, &q.Category, &q.Difficulty, &q.Explanation, &q.CreatedAt, &q.UpdatedAt)
	return q, err
}

func scanQuestions(rows pgx.Rows) ([]question.Question, error) {
	var questions []question.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// normalizedCategory maps a "mixed" or empty category filter to no
// constraint; categories are otherwise matched exactly.
func normalizedCategory(f question.Filter) string {
	if f.Category == "" || strings.EqualFold(f.Category, "mixed") {
		return ""
	}
	return f.Category
}

func normalizedDifficulty(f question.Filter) string {
	d := strings.ToLower(f.Difficulty)
	if d == "" || d == question.DifficultyMixed {
		return ""
	}
	return d
}
