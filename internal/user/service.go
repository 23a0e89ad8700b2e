package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Evasive-6/TriviaSwift/internal/user/jwt"
)

// Repository is the persistence contract for user accounts.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, u User) (User, error)
}

// Service handles registration, login and profile management.
type Service struct {
	repo     Repository
	tokenMgr *jwt.Manager
	logger   zerolog.Logger
}

// ServiceOptions configures the user service.
type ServiceOptions struct {
	TokenConfig jwt.TokenConfig
}

func NewService(repo Repository, opts ServiceOptions, logger zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		tokenMgr: jwt.NewManager(opts.TokenConfig),
		logger:   logger.With().Str("component", "user").Logger(),
	}
}

// TokenManager exposes the token manager for the auth middleware.
func (s *Service) TokenManager() *jwt.Manager {
	return s.tokenMgr
}

// Register creates a new account and returns its profile with a bearer token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (PublicProfile, string, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := validateUsername(username); err != nil {
		return PublicProfile{}, "", err
	}
	if err := validateEmail(email); err != nil {
		return PublicProfile{}, "", err
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooShort) {
			return PublicProfile{}, "", &ValidationError{Field: "password", Message: err.Error()}
		}
		return PublicProfile{}, "", fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return PublicProfile{}, "", err
	}

	token, err := s.tokenMgr.Generate(created.ID, created.Username)
	if err != nil {
		return PublicProfile{}, "", fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Str("username", username).Msg("user registered")
	return created.PublicProfile(), token, nil
}

// Login authenticates a user with email/password.
func (s *Service) Login(ctx context.Context, req LoginRequest) (PublicProfile, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	found, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return PublicProfile{}, "", ErrInvalidCredentials
		}
		return PublicProfile{}, "", fmt.Errorf("lookup user: %w", err)
	}

	if err := VerifyPassword(found.PasswordHash, req.Password); err != nil {
		return PublicProfile{}, "", ErrInvalidCredentials
	}

	token, err := s.tokenMgr.Generate(found.ID, found.Username)
	if err != nil {
		return PublicProfile{}, "", fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info().Str("user_id", found.ID).Msg("user logged in")
	return found.PublicProfile(), token, nil
}

// Profile returns a user's public profile by id.
func (s *Service) Profile(ctx context.Context, userID string) (PublicProfile, error) {
	found, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return PublicProfile{}, err
	}
	return found.PublicProfile(), nil
}

// UpdateProfile applies non-empty changes to a user's profile.
func (s *Service) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (PublicProfile, error) {
	found, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return PublicProfile{}, err
	}

	if update.Username != "" {
		username := strings.ToLower(strings.TrimSpace(update.Username))
		if err := validateUsername(username); err != nil {
			return PublicProfile{}, err
		}
		found.Username = username
	}
	if update.Email != "" {
		email := strings.ToLower(strings.TrimSpace(update.Email))
		if err := validateEmail(email); err != nil {
			return PublicProfile{}, err
		}
		found.Email = email
	}

	updated, err := s.repo.Update(ctx, found)
	if err != nil {
		return PublicProfile{}, err
	}
	return updated.PublicProfile(), nil
}
