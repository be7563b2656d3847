package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderForm is what the "Place order" modal submits
type OrderForm struct {
	Name    string
	Country string
	City    string
	Card    string
	Month   string
	Year    string
}

// Order is a completed purchase of a cart's contents
type Order struct {
	ID        string
	Reference string
	Cookie    string
	Form      OrderForm
	Amount    int64
	CreatedAt time.Time
}

// Domain errors
var (
	ErrInvalidAmount     = errors.New("order amount cannot be negative")
	ErrMissingNameOrCard = errors.New("please fill out name and credit card")
)

// NewOrder creates a placed order with validation
func NewOrder(cookie string, form OrderForm, amount int64) (*Order, error) {
	if err := validateOrderInput(form, amount); err != nil {
		return nil, err
	}
	if cookie == "" {
		return nil, ErrEmptyCartOwner
	}

	id := uuid.New().String()
	return &Order{
		ID:        id,
		Reference: strings.ToUpper(id[:8]),
		Cookie:    cookie,
		Form:      form,
		Amount:    amount,
		CreatedAt: time.Now(),
	}, nil
}

// validateOrderInput validates order creation parameters
func validateOrderInput(form OrderForm, amount int64) error {
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Card) == "" {
		return ErrMissingNameOrCard
	}
	if amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// GetFormattedAmount returns the amount as the confirmation dialog shows it
func (o *Order) GetFormattedAmount() string {
	return fmt.Sprintf("%d USD", o.Amount)
}

// MaskedCard returns the card number with all but the last four digits hidden
func (o *Order) MaskedCard() string {
	card := strings.ReplaceAll(o.Form.Card, " ", "")
	if len(card) <= 4 {
		return card
	}
	return strings.Repeat("*", len(card)-4) + card[len(card)-4:]
}
