package models

import "errors"

// Lookup errors returned by every repository implementation
var (
	ErrUserNotFound     = errors.New("user does not exist")
	ErrUserExists       = errors.New("user already exists")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartItemExists   = errors.New("cart item already exists")
	ErrOrderNotFound    = errors.New("order not found")
)
