//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/demoblaze/storefront-e2e/internal/repository/testutil"
)

func TestUserRepository_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	testUserContract(t, NewUserRepository(testDB.DB))
}

func TestCartRepository_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	testCartContract(t, NewCartRepository(testDB.DB))
}

func TestOrderRepository_Integration(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)
	testOrderContract(t, NewOrderRepository(testDB.DB))
}
