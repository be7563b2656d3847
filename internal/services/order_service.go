package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/demoblaze/storefront-e2e/internal/models"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByReference(ctx context.Context, reference string) (*models.Order, error)
}

// OrderService handles order business logic
type OrderService interface {
	PlaceOrder(ctx context.Context, cookie string, form models.OrderForm) (*models.Order, error)
	GetOrderByReference(ctx context.Context, reference string) (*models.Order, error)
}

// OrderServiceImpl implements OrderService
type OrderServiceImpl struct {
	orderRepo OrderRepository
	carts     CartService
}

// NewOrderService creates a new order service
func NewOrderService(orderRepo OrderRepository, carts CartService) *OrderServiceImpl {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
		carts:     carts,
	}
}

// PlaceOrder records a purchase of everything in the cart and empties it
func (s *OrderServiceImpl) PlaceOrder(ctx context.Context, cookie string, form models.OrderForm) (*models.Order, error) {
	total, err := s.carts.Total(ctx, cookie)
	if err != nil {
		return nil, err
	}

	order, err := models.NewOrder(cookie, form, total)
	if err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.carts.Clear(ctx, cookie); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByReference retrieves an order by its reference
func (s *OrderServiceImpl) GetOrderByReference(ctx context.Context, reference string) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, models.ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}
