package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/onlinemarket/shop/internal/models"
)

type AddOutcome int

const (
	AddCreated AddOutcome = iota
	AddMerged
	AddInsufficientStock
)

func (r *GormRepo) GetCart(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddCartItem merges quantity into an existing (user, product) line or
// creates the line, keeping the resulting quantity within available.
// The merge is a single guarded UPDATE so concurrent adds serialize on
// the row instead of losing an update; a create that races another
// create hits the (user_id, product_id) unique index and is retried as
// a merge.
func (r *GormRepo) AddCartItem(ctx context.Context, userID, productID, quantity, available uint) (AddOutcome, error) {
	outcome := AddInsufficientStock

	for attempt := 0; attempt < 2; attempt++ {
		err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.CartItem{}).
				Where("user_id = ? AND product_id = ?", userID, productID).
				Where("quantity + ? <= ?", quantity, available).
				Update("quantity", gorm.Expr("quantity + ?", quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected > 0 {
				outcome = AddMerged
				return nil
			}

			var existing models.CartItem
			err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&existing).Error
			if err == nil {
				// line exists, the guard rejected the merge
				outcome = AddInsufficientStock
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if quantity > available {
				outcome = AddInsufficientStock
				return nil
			}

			item := models.CartItem{
				UserID:    userID,
				ProductID: productID,
				Quantity:  quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			outcome = AddCreated
			return nil
		})
		if err == nil {
			return outcome, nil
		}
		if isUniqueViolation(err) {
			continue
		}
		return outcome, err
	}
	return outcome, nil
}

func (r *GormRepo) GetCartItem(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormRepo) FindCartItemIDs(ctx context.Context, userID uint, ids []uint) ([]uint, error) {
	var found []uint
	err := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Where("user_id = ? AND id IN ?", userID, ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	return found, nil
}

// DeleteCartItems removes the given lines for userID. The whole delete
// rolls back unless every id resolved to a line owned by the user, so a
// stale id never causes a partial deletion.
func (r *GormRepo) DeleteCartItems(ctx context.Context, userID uint, ids []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND id IN ?", userID, ids).Delete(&models.CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(ids)) {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) DeleteAllCartItems(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

func (r *GormRepo) SetCartItemQuantity(ctx context.Context, id, quantity uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&item, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
