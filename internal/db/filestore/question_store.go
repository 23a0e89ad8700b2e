// Package filestore persists questions and scores as JSON documents on
// disk. It backs the "file" storage driver and needs no external services;
// both stores satisfy the same contracts as the Postgres repositories.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Evasive-6/TriviaSwift/internal/question"
)

// QuestionStore keeps the question corpus in questions.json under the data
// directory. The corpus is loaded once and rewritten atomically on every
// mutation.
type QuestionStore struct {
	mu        sync.RWMutex
	path      string
	questions []question.Question
}

var _ question.Store = (*QuestionStore)(nil)

// NewQuestionStore loads the corpus from dataDir/questions.json. A missing
// file is treated as an empty corpus.
func NewQuestionStore(dataDir string) (*QuestionStore, error) {
	s := &QuestionStore{path: filepath.Join(dataDir, "questions.json")}
	if err := loadJSON(s.path, &s.questions); err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return s, nil
}

func (s *QuestionStore) List(ctx context.Context) ([]question.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyQuestions(s.questions), nil
}

func (s *QuestionStore) Get(ctx context.Context, id string) (question.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return question.Question{}, question.ErrNotFound
}

func (s *QuestionStore) Find(ctx context.Context, filter question.Filter) ([]question.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []question.Question
	for _, q := range s.questions {
		if q.Matches(filter) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (s *QuestionStore) Random(ctx context.Context, count int, filter question.Filter) ([]question.Question, error) {
	matched, err := s.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})
	if count < len(matched) {
		matched = matched[:count]
	}
	return matched, nil
}

func (s *QuestionStore) Create(ctx context.Context, q question.Question) (question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.CreatedAt = now
	q.UpdatedAt = now
	updated := append(copyQuestions(s.questions), q)

	if err := writeJSON(s.path, updated); err != nil {
		return question.Question{}, fmt.Errorf("persist questions: %w", err)
	}
	s.questions = updated
	return q, nil
}

func (s *QuestionStore) Update(ctx context.Context, id string, q question.Question) (question.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := copyQuestions(s.questions)
	for i, existing := range updated {
		if existing.ID != id {
			continue
		}
		q.ID = id
		q.CreatedAt = existing.CreatedAt
		q.UpdatedAt = time.Now().UTC()
		updated[i] = q
		if err := writeJSON(s.path, updated); err != nil {
			return question.Question{}, fmt.Errorf("persist questions: %w", err)
		}
		s.questions = updated
		return q, nil
	}
	return question.Question{}, question.ErrNotFound
}

func (s *QuestionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.questions {
		if existing.ID != id {
			continue
		}
		updated := append(copyQuestions(s.questions[:i]), s.questions[i+1:]...)
		if err := writeJSON(s.path, updated); err != nil {
			return fmt.Errorf("persist questions: %w", err)
		}
		s.questions = updated
		return nil
	}
	return question.ErrNotFound
}

func copyQuestions(questions []question.Question) []question.Question {
	copied := make([]question.Question, len(questions))
	copy(copied, questions)
	return copied
}

func loadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, target)
}

// writeJSON replaces the file atomically so a crash mid-write never leaves
// a truncated document behind.
func writeJSON(path string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
