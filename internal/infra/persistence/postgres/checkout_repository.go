package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	domcheckout "example.com/carrito-backend/internal/domain/checkout"
)

// CheckoutRepository calls the checkout stored procedure. The procedure
// name is validated as a bare identifier at startup before it reaches
// this query string.
type CheckoutRepository struct {
	pool *pgxpool.Pool
	proc string
}

func NewCheckoutRepository(pool *pgxpool.Pool, proc string) *CheckoutRepository {
	return &CheckoutRepository{pool: pool, proc: proc}
}

func (r *CheckoutRepository) Checkout(ctx context.Context, cartID int64) (*domcheckout.Result, error) {
	var payload []byte
	if err := r.pool.QueryRow(ctx, `SELECT `+r.proc+`($1)`, cartID).Scan(&payload); err != nil {
		return nil, err
	}

	res, err := domcheckout.ParseResult(payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s result: %w", r.proc, err)
	}
	return res, nil
}
