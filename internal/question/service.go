package question

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Store is the persistence contract for questions, implemented by the
// Postgres repository and the JSON file store.
type Store interface {
	List(ctx context.Context) ([]Question, error)
	Get(ctx context.Context, id string) (Question, error)
	Find(ctx context.Context, filter Filter) ([]Question, error)
	Random(ctx context.Context, count int, filter Filter) ([]Question, error)
	Create(ctx context.Context, q Question) (Question, error)
	Update(ctx context.Context, id string, q Question) (Question, error)
	Delete(ctx context.Context, id string) error
}

// CorpusCache caches filtered corpus lookups (implemented by the Redis cache).
type CorpusCache interface {
	Get(ctx context.Context, filter Filter) ([]Question, bool, error)
	Set(ctx context.Context, filter Filter, questions []Question) error
	Invalidate(ctx context.Context) error
}

// Service exposes question CRUD and corpus lookups with an optional
// cache-aside layer in front of the store.
type Service struct {
	store  Store
	cache  CorpusCache
	logger zerolog.Logger
}

// NewService builds a question service. cache may be nil.
func NewService(store Store, cache CorpusCache, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "question").Logger(),
	}
}

// List returns the full corpus.
func (s *Service) List(ctx context.Context) ([]Question, error) {
	return s.store.List(ctx)
}

// Get returns one question by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (Question, error) {
	return s.store.Get(ctx, id)
}

// Find returns questions matching the filter, consulting the cache first.
func (s *Service) Find(ctx context.Context, filter Filter) ([]Question, error) {
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, filter); err == nil && ok {
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("question cache read failed")
		}
	}

	questions, err := s.store.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, filter, questions); err != nil {
			s.logger.Warn().Err(err).Msg("question cache write failed")
		}
	}
	return questions, nil
}

// Random returns up to count random questions matching the filter.
func (s *Service) Random(ctx context.Context, count int, filter Filter) ([]Question, error) {
	if count <= 0 {
		count = 10
	}
	return s.store.Random(ctx, count, filter)
}

// Create validates and stores a new question.
func (s *Service) Create(ctx context.Context, q Question) (Question, error) {
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	created, err := s.store.Create(ctx, q)
	if err != nil {
		return Question{}, fmt.Errorf("create question: %w", err)
	}
	s.invalidate(ctx)
	s.logger.Info().Str("question_id", created.ID).Str("category", created.Category).Msg("question created")
	return created, nil
}

// Update validates and replaces an existing question.
func (s *Service) Update(ctx context.Context, id string, q Question) (Question, error) {
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	updated, err := s.store.Update(ctx, id, q)
	if err != nil {
		return Question{}, err
	}
	s.invalidate(ctx)
	return updated, nil
}

// Delete removes a question by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("question cache invalidation failed")
	}
}
