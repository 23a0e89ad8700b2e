package user

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// User is a registered account. PasswordHash never leaves the package.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicProfile is the externally visible view of a user.
type PublicProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate carries profile changes; empty fields are left untouched.
type ProfileUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ValidationError reports a rejected user field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return &ValidationError{Field: "username", Message: "username must be 3-30 characters of letters, numbers, and underscores"}
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Message: "please enter a valid email"}
	}
	return nil
}
