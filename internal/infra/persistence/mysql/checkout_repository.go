package mysql

import (
	"context"
	"database/sql"
	"fmt"

	domcheckout "example.com/carrito-backend/internal/domain/checkout"
)

// CheckoutRepository calls the checkout stored procedure. The procedure
// is expected to select a single JSON column describing the outcome, the
// same contract as the Postgres function.
type CheckoutRepository struct {
	db   *sql.DB
	proc string
}

func NewCheckoutRepository(db *sql.DB, proc string) *CheckoutRepository {
	return &CheckoutRepository{db: db, proc: proc}
}

func (r *CheckoutRepository) Checkout(ctx context.Context, cartID int64) (*domcheckout.Result, error) {
	var payload []byte
	if err := r.db.QueryRowContext(ctx, `CALL `+r.proc+`(?)`, cartID).Scan(&payload); err != nil {
		return nil, err
	}

	res, err := domcheckout.ParseResult(payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s result: %w", r.proc, err)
	}
	return res, nil
}
