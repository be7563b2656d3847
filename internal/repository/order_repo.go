package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/demoblaze/storefront-e2e/internal/models"
)

// OrderRepository handles database operations for orders
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// CreateOrder creates a new order in the database
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (id, reference, cookie, name, country, city, card, month, year, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		order.ID,
		order.Reference,
		order.Cookie,
		order.Form.Name,
		order.Form.Country,
		order.Form.City,
		order.Form.Card,
		order.Form.Month,
		order.Form.Year,
		order.Amount,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// GetOrderByReference retrieves an order by its reference
func (r *OrderRepository) GetOrderByReference(ctx context.Context, reference string) (*models.Order, error) {
	query := `
		SELECT id, reference, cookie, name, country, city, card, month, year, amount, created_at
		FROM orders
		WHERE reference = $1
	`

	order := &models.Order{}
	err := r.db.QueryRowContext(ctx, query, reference).Scan(
		&order.ID,
		&order.Reference,
		&order.Cookie,
		&order.Form.Name,
		&order.Form.Country,
		&order.Form.City,
		&order.Form.Card,
		&order.Form.Month,
		&order.Form.Year,
		&order.Amount,
		&order.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}
