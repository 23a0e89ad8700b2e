package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evasive-6/TriviaSwift/internal/user/jwt"
)

type memoryUserRepo struct {
	users map[string]User
	next  int
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]User{}}
}

func (r *memoryUserRepo) Create(ctx context.Context, u User) (User, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return User{}, ErrEmailTaken
		}
		if existing.Username == u.Username {
			return User{}, ErrUsernameTaken
		}
	}
	r.next++
	u.ID = fmt.Sprintf("u%d", r.next)
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	r.users[u.ID] = u
	return u, nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) Update(ctx context.Context, u User) (User, error) {
	if _, ok := r.users[u.ID]; !ok {
		return User{}, ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	r.users[u.ID] = u
	return u, nil
}

func newUserService(repo Repository) *Service {
	return NewService(repo, ServiceOptions{
		TokenConfig: jwt.TokenConfig{Secret: []byte("test-secret")},
	}, zerolog.Nop())
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	profile, token, err := svc.Register(ctx, RegisterRequest{
		Username: "Alice_01",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice_01", profile.Username)
	assert.Equal(t, "alice@example.com", profile.Email)
	require.NotEmpty(t, token)

	claims, err := svc.TokenManager().Validate(token)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, claims.UserID)
	assert.Equal(t, "alice_01", claims.Username)

	loggedIn, _, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, profile.ID, loggedIn.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(newMemoryUserRepo())
	ctx := context.Background()

	var verr *ValidationError

	_, _, err := svc.Register(ctx, RegisterRequest{Username: "ab", Email: "a@b.com", Password: "secret123"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)

	_, _, err = svc.Register(ctx, RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret123"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)

	_, _, err = svc.Register(ctx, RegisterRequest{Username: "alice", Email: "a@b.com", Password: "short"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(newMemoryUserRepo())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterRequest{Username: "bob", Email: "a@b.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newUserService(newMemoryUserRepo())
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, LoginRequest{Email: "a@b.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newUserService(newMemoryUserRepo())

	_, _, err := svc.Login(context.Background(), LoginRequest{Email: "nobody@b.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials, "unknown email must look like bad credentials")
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := newUserService(newMemoryUserRepo())
	ctx := context.Background()

	profile, _, err := svc.Register(ctx, RegisterRequest{Username: "alice", Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, profile.ID, ProfileUpdate{Username: "alice_new"})
	require.NoError(t, err)
	assert.Equal(t, "alice_new", updated.Username)
	assert.Equal(t, "a@b.com", updated.Email, "email left untouched")
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	require.NoError(t, VerifyPassword(hash, "secret123"))
	assert.Error(t, VerifyPassword(hash, "other"))

	_, err = HashPassword("tiny")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}
