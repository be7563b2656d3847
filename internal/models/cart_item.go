package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CartItem is one row of a cart. Cookie identifies the cart owner: the
// guest cookie for anonymous visitors, the username once logged in.
type CartItem struct {
	ID        string
	Cookie    string
	ProductID int
	CreatedAt time.Time
}

// Domain errors
var (
	ErrInvalidCartItemID = errors.New("cart item id must be a UUID")
	ErrEmptyCartOwner    = errors.New("cart owner cookie cannot be empty")
	ErrInvalidProductID  = errors.New("product id must be positive")
)

// NewCartItem creates a cart row. The browser generates the row id; an empty
// id gets a fresh UUID.
func NewCartItem(id, cookie string, productID int) (*CartItem, error) {
	if id == "" {
		id = uuid.New().String()
	} else if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidCartItemID
	}
	if cookie == "" {
		return nil, ErrEmptyCartOwner
	}
	if productID <= 0 {
		return nil, ErrInvalidProductID
	}

	return &CartItem{
		ID:        id,
		Cookie:    cookie,
		ProductID: productID,
		CreatedAt: time.Now(),
	}, nil
}
