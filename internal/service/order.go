package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/onlinemarket/shop/internal/models"
	"github.com/onlinemarket/shop/internal/repo"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// ListOrders returns the user's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, userID)
}

// GetOrder resolves an order only when it belongs to userID; a missing
// or foreign order is reported as not found either way.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.Repo.GetOrder(ctx, userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("there is no order with the entered id: %w", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}
