package service

import (
	"context"
	"math/rand/v2"

	"github.com/onlinemarket/shop/internal/models"
	"github.com/onlinemarket/shop/internal/repo"
)

const (
	trackIDMin = int64(10_000_000_000)  // 10^10
	trackIDMax = int64(100_000_000_000) // 10^11, exclusive
)

type CheckoutService struct {
	Repo *repo.GormRepo
}

// Checkout converts the user's cart into a registered order. Order
// creation and cart clearing happen in one transaction; an empty cart
// returns a nil order and creates nothing.
func (s *CheckoutService) Checkout(ctx context.Context, userID uint) (*models.Order, error) {
	return s.Repo.CreateOrderFromCart(ctx, userID, NewTrackID())
}

// NewTrackID returns a random decimal tracking number in
// [10^10, 10^11). It is shown to the end user and is not a primary
// key; collisions are possible but astronomically unlikely.
func NewTrackID() int64 {
	return trackIDMin + rand.Int64N(trackIDMax-trackIDMin)
}
