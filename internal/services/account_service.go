package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/demoblaze/storefront-e2e/internal/models"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for unknown or logged-out auth tokens
var ErrInvalidToken = errors.New("invalid auth token")

// UserRepository defines the interface for account persistence
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AccountService handles sign up, log in and token lookups
type AccountService interface {
	Signup(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Authenticate(token string) (string, error)
	Logout(token string)
}

// AccountServiceImpl implements AccountService. Sessions live in memory
// only; restarting the replica logs everyone out.
type AccountServiceImpl struct {
	users    UserRepository
	mu       sync.RWMutex
	sessions map[string]string
}

// NewAccountService creates a new account service
func NewAccountService(users UserRepository) *AccountServiceImpl {
	return &AccountServiceImpl{
		users:    users,
		sessions: make(map[string]string),
	}
}

// Signup registers a new account
func (s *AccountServiceImpl) Signup(ctx context.Context, username, password string) error {
	user, err := models.NewUser(username, password)
	if err != nil {
		return err
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrUserExists) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login verifies credentials and returns a fresh auth token
func (s *AccountServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := user.CheckPassword(password); err != nil {
		return "", err
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = user.Username
	s.mu.Unlock()

	return token, nil
}

// Authenticate resolves a token to its username
func (s *AccountServiceImpl) Authenticate(token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	username, ok := s.sessions[token]
	if !ok {
		return "", ErrInvalidToken
	}
	return username, nil
}

// Logout forgets a token
func (s *AccountServiceImpl) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
