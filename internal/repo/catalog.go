package repo

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/onlinemarket/shop/internal/models"
)

const (
	stockKeyPrefix = "stock:"
	stockCacheTTL  = 30 * time.Second
)

// CatalogRepo is the store behind the Catalog boundary the cart engine
// consumes. Cache is an optional read-through cache for available
// quantity; a nil client goes straight to the database.
type CatalogRepo struct {
	DB    *gorm.DB
	Cache *redis.Client
}

func NewCatalogRepo(db *gorm.DB, cache *redis.Client) *CatalogRepo {
	return &CatalogRepo{DB: db, Cache: cache}
}

func (r *CatalogRepo) Exists(ctx context.Context, productID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogRepo) AvailableQuantity(ctx context.Context, productID uint) (uint, error) {
	key := stockKeyPrefix + strconv.FormatUint(uint64(productID), 10)

	if r.Cache != nil {
		if v, err := r.Cache.Get(ctx, key).Uint64(); err == nil {
			return uint(v), nil
		}
	}

	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, productID).Error; err != nil {
		return 0, err
	}

	if r.Cache != nil {
		r.Cache.Set(ctx, key, uint64(product.Quantity), stockCacheTTL)
	}
	return product.Quantity, nil
}

func (r *CatalogRepo) GetProduct(ctx context.Context, productID uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, productID).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
