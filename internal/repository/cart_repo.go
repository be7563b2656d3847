package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/demoblaze/storefront-e2e/internal/models"
)

// CartRepository handles database operations for cart rows
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{
		db: db,
	}
}

// AddItem inserts a cart row
func (r *CartRepository) AddItem(ctx context.Context, item *models.CartItem) error {
	query := `
		INSERT INTO cart_items (id, cookie, product_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, item.ID, item.Cookie, item.ProductID, item.CreatedAt)
	if isUniqueViolation(err) {
		return models.ErrCartItemExists
	}
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

// ListItems returns the rows of one cart, oldest first
func (r *CartRepository) ListItems(ctx context.Context, cookie string) ([]*models.CartItem, error) {
	query := `
		SELECT id, cookie, product_id, created_at
		FROM cart_items
		WHERE cookie = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, cookie)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	var items []*models.CartItem
	for rows.Next() {
		item := &models.CartItem{}
		if err := rows.Scan(&item.ID, &item.Cookie, &item.ProductID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}

	return items, nil
}

// DeleteItem removes one row by id
func (r *CartRepository) DeleteItem(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrCartItemNotFound
	}

	return nil
}

// DeleteCart removes every row owned by cookie
func (r *CartRepository) DeleteCart(ctx context.Context, cookie string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cookie = $1`, cookie); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
