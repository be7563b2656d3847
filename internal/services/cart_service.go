package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/demoblaze/storefront-e2e/internal/models"
)

// CartRepository defines the interface for cart persistence
type CartRepository interface {
	AddItem(ctx context.Context, item *models.CartItem) error
	ListItems(ctx context.Context, cookie string) ([]*models.CartItem, error)
	DeleteItem(ctx context.Context, id string) error
	DeleteCart(ctx context.Context, cookie string) error
}

// CartLine is a cart row joined with its catalog product
type CartLine struct {
	Item    *models.CartItem
	Product models.Product
}

// CartService handles cart business logic
type CartService interface {
	Add(ctx context.Context, id, cookie string, productID int) (*models.CartItem, error)
	View(ctx context.Context, cookie string) ([]CartLine, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context, cookie string) error
	Total(ctx context.Context, cookie string) (int64, error)
}

// CartServiceImpl implements CartService
type CartServiceImpl struct {
	carts   CartRepository
	catalog *Catalog
}

// NewCartService creates a new cart service
func NewCartService(carts CartRepository, catalog *Catalog) *CartServiceImpl {
	return &CartServiceImpl{
		carts:   carts,
		catalog: catalog,
	}
}

// Add puts one unit of a catalog product into the cart
func (s *CartServiceImpl) Add(ctx context.Context, id, cookie string, productID int) (*models.CartItem, error) {
	if _, err := s.catalog.Get(productID); err != nil {
		return nil, fmt.Errorf("%w: %d", err, productID)
	}

	item, err := models.NewCartItem(id, cookie, productID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.AddItem(ctx, item); err != nil {
		if errors.Is(err, models.ErrCartItemExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add to cart: %w", err)
	}

	return item, nil
}

// View returns the cart rows with their products, oldest first
func (s *CartServiceImpl) View(ctx context.Context, cookie string) ([]CartLine, error) {
	items, err := s.carts.ListItems(ctx, cookie)
	if err != nil {
		return nil, fmt.Errorf("failed to view cart: %w", err)
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.catalog.Get(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("cart item %s: %w: %d", item.ID, err, item.ProductID)
		}
		lines = append(lines, CartLine{Item: item, Product: product})
	}

	return lines, nil
}

// Delete removes one row
func (s *CartServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.carts.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, models.ErrCartItemNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	return nil
}

// Clear empties a cart
func (s *CartServiceImpl) Clear(ctx context.Context, cookie string) error {
	if err := s.carts.DeleteCart(ctx, cookie); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Total sums the product prices in a cart
func (s *CartServiceImpl) Total(ctx context.Context, cookie string) (int64, error) {
	lines, err := s.View(ctx, cookie)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, line := range lines {
		total += line.Product.Price
	}
	return total, nil
}
