package checkout

import "context"

// Repository invokes the external checkout procedure for a cart. The
// procedure owns stock decrement and cart-row survival; this side only
// relays its reported outcome.
type Repository interface {
	Checkout(ctx context.Context, cartID int64) (*Result, error)
}
