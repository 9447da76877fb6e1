package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/onlinemarket/shop/internal/models"
	"github.com/onlinemarket/shop/internal/repo"
	"github.com/onlinemarket/shop/internal/transport"
)

// Catalog is the boundary the cart engine consumes for product
// existence and stock checks. Available quantity is validated against
// but never decremented here; two users can reserve the same stock.
type Catalog interface {
	Exists(ctx context.Context, productID uint) (bool, error)
	AvailableQuantity(ctx context.Context, productID uint) (uint, error)
}

type CartService struct {
	Repo    *repo.GormRepo
	Catalog Catalog
}

// AddItems is a best-effort batch: each requested item gets its own
// outcome in request order, and one rejected item never fails the rest.
func (s *CartService) AddItems(ctx context.Context, userID uint, items []transport.CartItemRequest) ([]transport.AddItemResult, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("items_list must not be empty: %w", ErrValidation)
	}
	for _, it := range items {
		if it.ProductID == 0 || it.Quantity == 0 {
			return nil, fmt.Errorf("product_id and quantity must be greater than zero: %w", ErrValidation)
		}
	}

	results := make([]transport.AddItemResult, 0, len(items))
	for _, it := range items {
		result, err := s.addItem(ctx, userID, it)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *CartService) addItem(ctx context.Context, userID uint, it transport.CartItemRequest) (transport.AddItemResult, error) {
	exists, err := s.Catalog.Exists(ctx, it.ProductID)
	if err != nil {
		return transport.AddItemResult{}, err
	}
	if !exists {
		return transport.AddItemResult{
			ProductID: it.ProductID,
			Success:   false,
			Message:   "There is no product with the entered id!",
		}, nil
	}

	available, err := s.Catalog.AvailableQuantity(ctx, it.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// product vanished between the existence check and here
			return transport.AddItemResult{
				ProductID: it.ProductID,
				Success:   false,
				Message:   "There is no product with the entered id!",
			}, nil
		}
		return transport.AddItemResult{}, err
	}

	outcome, err := s.Repo.AddCartItem(ctx, userID, it.ProductID, it.Quantity, available)
	if err != nil {
		return transport.AddItemResult{}, err
	}

	switch outcome {
	case repo.AddCreated:
		return transport.AddItemResult{
			ProductID: it.ProductID,
			Success:   true,
			Message:   "The product was added to your cart",
		}, nil
	case repo.AddMerged:
		return transport.AddItemResult{
			ProductID: it.ProductID,
			Success:   true,
			Message:   "The product quantity was merged into your cart",
		}, nil
	default:
		return transport.AddItemResult{
			ProductID: it.ProductID,
			Success:   false,
			Message:   "There is not enough number of this product in the store!",
		}, nil
	}
}

// RemoveItems accepts exactly one selector: a non-empty items_list or
// delete_all. Targeted ids are validated against ownership before any
// deletion happens.
func (s *CartService) RemoveItems(ctx context.Context, userID uint, itemIDs []uint, deleteAll bool) error {
	if deleteAll && len(itemIDs) > 0 {
		return fmt.Errorf("don't use 'items_list' and 'delete_all' options together: %w", ErrConflictingParameters)
	}
	if !deleteAll && len(itemIDs) == 0 {
		return fmt.Errorf("one of the 'items_list' or 'delete_all' fields must be set: %w", ErrMissingSelector)
	}

	if deleteAll {
		return s.Repo.DeleteAllCartItems(ctx, userID)
	}

	found, err := s.Repo.FindCartItemIDs(ctx, userID, itemIDs)
	if err != nil {
		return err
	}
	owned := make(map[uint]struct{}, len(found))
	for _, id := range found {
		owned[id] = struct{}{}
	}
	for _, id := range itemIDs {
		if _, ok := owned[id]; !ok {
			return fmt.Errorf("there is no cart item with id=%d: %w", id, ErrNotFound)
		}
	}

	if err := s.Repo.DeleteCartItems(ctx, userID, itemIDs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// a line vanished between validation and delete
			return fmt.Errorf("cart item no longer exists: %w", ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *CartService) ListItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx, userID)
}

// UpdateItem replaces the quantity of a line the caller owns, keeping
// it within the product's available quantity.
func (s *CartService) UpdateItem(ctx context.Context, userID, lineID, quantity uint) (*models.CartItem, error) {
	if quantity == 0 {
		return nil, fmt.Errorf("quantity must be greater than zero: %w", ErrValidation)
	}

	item, err := s.Repo.GetCartItem(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("there is no cart item with id=%d: %w", lineID, ErrNotFound)
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, fmt.Errorf("cart item id=%d belongs to another user: %w", lineID, ErrPermissionDenied)
	}

	available, err := s.Catalog.AvailableQuantity(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if quantity > available {
		return nil, fmt.Errorf("there is not enough number of this product in the store: %w", ErrInsufficientStock)
	}

	return s.Repo.SetCartItemQuantity(ctx, lineID, quantity)
}
