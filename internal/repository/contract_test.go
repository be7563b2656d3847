package repository

import (
	"context"
	"testing"
	"time"

	"github.com/demoblaze/storefront-e2e/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

type cartStore interface {
	AddItem(ctx context.Context, item *models.CartItem) error
	ListItems(ctx context.Context, cookie string) ([]*models.CartItem, error)
	DeleteItem(ctx context.Context, id string) error
	DeleteCart(ctx context.Context, cookie string) error
}

type orderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	GetOrderByReference(ctx context.Context, reference string) (*models.Order, error)
}

// testUserContract checks behaviour every user store must share
func testUserContract(t *testing.T, store userStore) {
	ctx := context.Background()

	user, err := models.NewUser("testuser", "cGFzc3dvcmQxMjM=")
	require.NoError(t, err)
	require.NoError(t, store.CreateUser(ctx, user))

	dup, err := models.NewUser("testuser", "b3RoZXI=")
	require.NoError(t, err)
	assert.ErrorIs(t, store.CreateUser(ctx, dup), models.ErrUserExists)

	got, err := store.GetUserByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "cGFzc3dvcmQxMjM=", got.Password)

	_, err = store.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

// testCartContract checks behaviour every cart store must share
func testCartContract(t *testing.T, store cartStore) {
	ctx := context.Background()
	base := time.Now().Add(-time.Minute).Truncate(time.Millisecond)

	var ids []string
	for i, productID := range []int{1, 5, 9} {
		item, err := models.NewCartItem("", "guest-a", productID)
		require.NoError(t, err)
		item.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, store.AddItem(ctx, item))
		ids = append(ids, item.ID)
	}
	other, err := models.NewCartItem("", "guest-b", 2)
	require.NoError(t, err)
	require.NoError(t, store.AddItem(ctx, other))

	assert.ErrorIs(t, store.AddItem(ctx, &models.CartItem{ID: ids[0], Cookie: "guest-a", ProductID: 1, CreatedAt: base}),
		models.ErrCartItemExists)

	items, err := store.ListItems(ctx, "guest-a")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, ids[i], item.ID, "rows keep insertion order")
	}

	require.NoError(t, store.DeleteItem(ctx, ids[0]))
	assert.ErrorIs(t, store.DeleteItem(ctx, ids[0]), models.ErrCartItemNotFound)
	assert.ErrorIs(t, store.DeleteItem(ctx, uuid.New().String()), models.ErrCartItemNotFound)

	items, err = store.ListItems(ctx, "guest-a")
	require.NoError(t, err)
	assert.Len(t, items, 2)

	require.NoError(t, store.DeleteCart(ctx, "guest-a"))
	items, err = store.ListItems(ctx, "guest-a")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = store.ListItems(ctx, "guest-b")
	require.NoError(t, err)
	assert.Len(t, items, 1, "other carts are untouched")
}

// testOrderContract checks behaviour every order store must share
func testOrderContract(t *testing.T, store orderStore) {
	ctx := context.Background()

	order, err := models.NewOrder("guest-a", models.OrderForm{
		Name: "Jane", Country: "NL", City: "Utrecht", Card: "4111111111111111", Month: "03", Year: "2030",
	}, 1150)
	require.NoError(t, err)
	require.NoError(t, store.CreateOrder(ctx, order))

	got, err := store.GetOrderByReference(ctx, order.Reference)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.Form, got.Form)
	assert.Equal(t, int64(1150), got.Amount)

	_, err = store.GetOrderByReference(ctx, "MISSING")
	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}
