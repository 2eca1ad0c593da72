package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lifeboard/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential verification.
type AuthService struct {
	users repository.Users
}

func NewAuthService(users repository.Users) *AuthService {
	return &AuthService{users: users}
}

// Register hashes the password and creates a new user. The plaintext is
// never stored.
func (s *AuthService) Register(ctx context.Context, username, password string) (int, error) {
	if strings.TrimSpace(username) == "" {
		return 0, fmt.Errorf("%w: username is required", ErrValidation)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return 0, err
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrDuplicateUsername
	}

	id, err := s.users.Create(ctx, username, hash)
	if err != nil {
		// A concurrent register can still hit the UNIQUE constraint.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, ErrDuplicateUsername
		}
		return 0, err
	}
	return id, nil
}

// Verify checks credentials by exact username match. Absent user and hash
// mismatch are indistinguishable to the caller.
func (s *AuthService) Verify(ctx context.Context, username, password string) (int, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if u == nil {
		return 0, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return 0, ErrInvalidCredentials
	}
	return u.ID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: password is required", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return errors.New("password mismatch")
	}
	return nil
}
