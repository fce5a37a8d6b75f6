package checkout

import (
	"context"

	domcart "example.com/carrito-backend/internal/domain/cart"
	domcheckout "example.com/carrito-backend/internal/domain/checkout"
)

type CheckoutRepository interface {
	domcheckout.Repository
}

type Service struct {
	repo CheckoutRepository
}

func NewService(repo CheckoutRepository) *Service {
	return &Service{repo: repo}
}

// Checkout forwards the cart to the stored procedure and relays its
// outcome. A handled rejection (ok:false) becomes a RejectedError so the
// boundary can distinguish it from a failed call.
func (s *Service) Checkout(ctx context.Context, cartID int64) (*domcheckout.Result, error) {
	if cartID <= 0 {
		return nil, domcart.ErrInvalidCartID
	}

	res, err := s.repo.Checkout(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, &domcheckout.RejectedError{Message: res.Message}
	}
	return res, nil
}
