package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/onlinemarket/shop/internal/models"
)

// CreateOrderFromCart converts the user's cart into a registered order
// inside a single transaction: order creation and cart clearing are
// observable only together. An empty cart creates nothing and returns a
// nil order.
func (r *GormRepo) CreateOrderFromCart(ctx context.Context, userID uint, trackID int64) (*models.Order, error) {
	var order *models.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}

		o := models.Order{
			UserID:  userID,
			TrackID: trackID,
			Status:  models.OrderStatusRegistered,
		}
		if err := tx.Create(&o).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *GormRepo) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
