package cart

import "context"

type Repository interface {
	// ListItems returns the cart content with quantities summed across any
	// duplicate rows for the same product.
	ListItems(ctx context.Context, cartID int64) ([]Item, error)
	// AddItem inserts the product with quantity 1 or increments the existing
	// quantity by 1, consolidating duplicate rows in the same transaction.
	AddItem(ctx context.Context, cartID, productID int64) error
	// SetItemQuantity overwrites the quantity (absolute set, qty > 0),
	// inserting the row if absent and consolidating duplicates.
	SetItemQuantity(ctx context.Context, cartID, productID, qty int64) error
	// RemoveItem deletes every row for the product. Absence is not an error.
	RemoveItem(ctx context.Context, cartID, productID int64) error
	Clear(ctx context.Context, cartID int64) error
}
