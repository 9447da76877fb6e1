package service_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onlinemarket/shop/internal/models"
	"github.com/onlinemarket/shop/internal/repo"
	"github.com/onlinemarket/shop/internal/service"
)

// newTestDB opens an in-memory store with a single connection so
// concurrent callers serialize at the database, the way row locking
// serializes them in postgres.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&models.Product{}, &models.CartItem{}, &models.Order{}))
	return gdb
}

type testEnv struct {
	DB       *gorm.DB
	Cart     *service.CartService
	Checkout *service.CheckoutService
	Orders   *service.OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := newTestDB(t)
	gormRepo := repo.NewGormRepo(gdb)
	catalog := repo.NewCatalogRepo(gdb, nil)

	return &testEnv{
		DB:       gdb,
		Cart:     &service.CartService{Repo: gormRepo, Catalog: catalog},
		Checkout: &service.CheckoutService{Repo: gormRepo},
		Orders:   &service.OrderService{Repo: gormRepo},
	}
}

func (env *testEnv) createProduct(t *testing.T, quantity uint) models.Product {
	t.Helper()

	p := models.Product{Type: "monitor", Brand: "acme", Name: "uw-34", Quantity: quantity}
	require.NoError(t, env.DB.Create(&p).Error)
	return p
}

func (env *testEnv) cartItems(t *testing.T, userID uint) []models.CartItem {
	t.Helper()

	var items []models.CartItem
	require.NoError(t, env.DB.Where("user_id = ?", userID).Find(&items).Error)
	return items
}
