package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/carrito-backend/internal/domain/cart"
	domcheckout "example.com/carrito-backend/internal/domain/checkout"
)

type mockCheckoutRepository struct {
	result     *domcheckout.Result
	err        error
	lastCartID int64
	calls      int
}

func (m *mockCheckoutRepository) Checkout(ctx context.Context, cartID int64) (*domcheckout.Result, error) {
	m.calls++
	m.lastCartID = cartID
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func TestCheckout_Success(t *testing.T) {
	total := 99.5
	repo := &mockCheckoutRepository{
		result: &domcheckout.Result{OK: true, Message: "Compra realizada", Total: &total},
	}
	svc := NewService(repo)

	res, err := svc.Checkout(context.Background(), 3)

	require.NoError(t, err)
	require.True(t, res.OK)
	require.Equal(t, "Compra realizada", res.Message)
	require.Equal(t, &total, res.Total)
	require.Equal(t, int64(3), repo.lastCartID)
}

func TestCheckout_RejectedByProcedure(t *testing.T) {
	repo := &mockCheckoutRepository{
		result: &domcheckout.Result{OK: false, Message: "Stock insuficiente"},
	}
	svc := NewService(repo)

	res, err := svc.Checkout(context.Background(), 1)

	require.Nil(t, res)
	var rejected *domcheckout.RejectedError
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, "Stock insuficiente", rejected.Message)
}

func TestCheckout_CallErrorPropagates(t *testing.T) {
	repo := &mockCheckoutRepository{err: errors.New("procedure does not exist")}
	svc := NewService(repo)

	res, err := svc.Checkout(context.Background(), 1)

	require.Nil(t, res)
	require.EqualError(t, err, "procedure does not exist")
}

func TestCheckout_InvalidCartID(t *testing.T) {
	repo := &mockCheckoutRepository{}
	svc := NewService(repo)

	_, err := svc.Checkout(context.Background(), 0)

	require.ErrorIs(t, err, domcart.ErrInvalidCartID)
	require.Zero(t, repo.calls)
}
