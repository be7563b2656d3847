package repository

import (
	"context"
	"sync"

	"github.com/demoblaze/storefront-e2e/internal/models"
)

// MemoryStore keeps users, cart rows and orders in process memory. It
// satisfies the same contracts as the Postgres repositories and is the
// default backend of the storefront replica.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[string]*models.User
	items  []*models.CartItem
	orders map[string]*models.Order
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[string]*models.User),
		orders: make(map[string]*models.Order),
	}
}

// CreateUser stores a new user; usernames are unique
func (s *MemoryStore) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Username]; ok {
		return models.ErrUserExists
	}
	u := *user
	s.users[user.Username] = &u
	return nil
}

// GetUserByUsername retrieves a user by username
func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

// AddItem appends a row to its owner's cart
func (s *MemoryStore) AddItem(_ context.Context, item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return models.ErrCartItemExists
		}
	}
	i := *item
	s.items = append(s.items, &i)
	return nil
}

// ListItems returns the rows of one cart in insertion order
func (s *MemoryStore) ListItems(_ context.Context, cookie string) ([]*models.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []*models.CartItem
	for _, item := range s.items {
		if item.Cookie == cookie {
			i := *item
			items = append(items, &i)
		}
	}
	return items, nil
}

// DeleteItem removes a single row by id
func (s *MemoryStore) DeleteItem(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return models.ErrCartItemNotFound
}

// DeleteCart removes every row owned by cookie
func (s *MemoryStore) DeleteCart(_ context.Context, cookie string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.Cookie != cookie {
			kept = append(kept, item)
		}
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return nil
}

// CreateOrder stores a placed order
func (s *MemoryStore) CreateOrder(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := *order
	s.orders[order.Reference] = &o
	return nil
}

// GetOrderByReference retrieves an order by its reference
func (s *MemoryStore) GetOrderByReference(_ context.Context, reference string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[reference]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	copied := *o
	return &copied, nil
}
