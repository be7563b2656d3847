package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Password holds the value exactly as the
// browser submitted it (demoblaze sends it base64-encoded).
type User struct {
	ID        string
	Username  string
	Password  string
	CreatedAt time.Time
}

// Domain errors
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrWrongPassword = errors.New("wrong password")
)

// NewUser creates a new user with validation
func NewUser(username, password string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}

	return &User{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now(),
	}, nil
}

// CheckPassword returns ErrWrongPassword unless password matches
func (u *User) CheckPassword(password string) error {
	if u.Password != password {
		return ErrWrongPassword
	}
	return nil
}
