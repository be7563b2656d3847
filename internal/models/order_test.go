package models

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewOrder(t *testing.T) {
	validForm := OrderForm{Name: "Jane", Country: "NL", City: "Amsterdam", Card: "4111 1111 1111 1111", Month: "03", Year: "2030"}

	tests := []struct {
		name    string
		cookie  string
		form    OrderForm
		amount  int64
		wantErr error
	}{
		{
			name:   "valid order",
			cookie: "jane",
			form:   validForm,
			amount: 360,
		},
		{
			name:   "empty cart is still a valid order",
			cookie: "jane",
			form:   validForm,
			amount: 0,
		},
		{
			name:    "negative amount",
			cookie:  "jane",
			form:    validForm,
			amount:  -1,
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "missing name",
			cookie:  "jane",
			form:    OrderForm{Card: "4111"},
			amount:  360,
			wantErr: ErrMissingNameOrCard,
		},
		{
			name:    "missing card",
			cookie:  "jane",
			form:    OrderForm{Name: "Jane", Card: "   "},
			amount:  360,
			wantErr: ErrMissingNameOrCard,
		},
		{
			name:    "missing owner",
			form:    validForm,
			amount:  360,
			wantErr: ErrEmptyCartOwner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, err := NewOrder(tt.cookie, tt.form, tt.amount)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("NewOrder() error = %v, wantErr %v", err, tt.wantErr)
				}
				if order != nil {
					t.Error("Expected order to be nil when error occurs")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewOrder() unexpected error = %v", err)
			}
			if _, err := uuid.Parse(order.ID); err != nil {
				t.Errorf("Order ID should be a UUID, got %q", order.ID)
			}
			if len(order.Reference) != 8 {
				t.Errorf("Expected 8 character reference, got %q", order.Reference)
			}
			if order.Amount != tt.amount {
				t.Errorf("Expected amount %d, got %d", tt.amount, order.Amount)
			}
			if order.CreatedAt.IsZero() {
				t.Error("CreatedAt should be set")
			}
		})
	}
}

func TestOrder_GetFormattedAmount(t *testing.T) {
	order := &Order{Amount: 1100}
	if got := order.GetFormattedAmount(); got != "1100 USD" {
		t.Errorf("GetFormattedAmount() = %q, want %q", got, "1100 USD")
	}
}

func TestOrder_MaskedCard(t *testing.T) {
	tests := []struct {
		card string
		want string
	}{
		{card: "4111 1111 1111 1234", want: "************1234"},
		{card: "1234", want: "1234"},
		{card: "", want: ""},
	}

	for _, tt := range tests {
		order := &Order{Form: OrderForm{Card: tt.card}}
		if got := order.MaskedCard(); got != tt.want {
			t.Errorf("MaskedCard(%q) = %q, want %q", tt.card, got, tt.want)
		}
	}
}
