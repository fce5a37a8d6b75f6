package cart

import "errors"

var (
	ErrInvalidProductID = errors.New("invalid product id")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrInvalidCartID    = errors.New("invalid cart id")
)
