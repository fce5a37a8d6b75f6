package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domcart "example.com/carrito-backend/internal/domain/cart"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) ListItems(ctx context.Context, cartID int64) ([]domcart.Item, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id_objeto, SUM(cantidad)::bigint
        FROM carrito_items
        WHERE id_car = $1
        GROUP BY id_objeto
    `, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domcart.Item
	for rows.Next() {
		var item domcart.Item
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *CartRepository) AddItem(ctx context.Context, cartID, productID int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		locked, err := lockItemRows(ctx, tx, cartID, productID)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			_, err := tx.Exec(ctx, `
                INSERT INTO carrito_items (id_car, id_objeto, cantidad)
                VALUES ($1, $2, 1)
            `, cartID, productID)
			return err
		}
		keep, drop := domcart.Consolidate(locked)
		return applyConsolidated(ctx, tx, keep.ItemID, keep.Quantity+1, drop)
	})
}

func (r *CartRepository) SetItemQuantity(ctx context.Context, cartID, productID, qty int64) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		locked, err := lockItemRows(ctx, tx, cartID, productID)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			_, err := tx.Exec(ctx, `
                INSERT INTO carrito_items (id_car, id_objeto, cantidad)
                VALUES ($1, $2, $3)
            `, cartID, productID, qty)
			return err
		}
		keep, drop := domcart.Consolidate(locked)
		return applyConsolidated(ctx, tx, keep.ItemID, qty, drop)
	})
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, productID int64) error {
	_, err := r.pool.Exec(ctx, `
        DELETE FROM carrito_items
        WHERE id_car = $1 AND id_objeto = $2
    `, cartID, productID)
	return err
}

func (r *CartRepository) Clear(ctx context.Context, cartID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM carrito_items WHERE id_car = $1`, cartID)
	return err
}

// lockItemRows reads every row for the (cart, product) pair under FOR
// UPDATE so concurrent mutations serialize on the same rows. Rows come
// back ordered by id_item; Consolidate keeps the oldest one.
func lockItemRows(ctx context.Context, tx pgx.Tx, cartID, productID int64) ([]domcart.Row, error) {
	rows, err := tx.Query(ctx, `
        SELECT id_item, cantidad
        FROM carrito_items
        WHERE id_car = $1 AND id_objeto = $2
        ORDER BY id_item
        FOR UPDATE
    `, cartID, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locked []domcart.Row
	for rows.Next() {
		var row domcart.Row
		if err := rows.Scan(&row.ItemID, &row.Quantity); err != nil {
			return nil, err
		}
		locked = append(locked, row)
	}
	return locked, rows.Err()
}

func applyConsolidated(ctx context.Context, tx pgx.Tx, itemID, qty int64, drop []int64) error {
	if _, err := tx.Exec(ctx, `
        UPDATE carrito_items SET cantidad = $1 WHERE id_item = $2
    `, qty, itemID); err != nil {
		return err
	}
	if len(drop) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `DELETE FROM carrito_items WHERE id_item = ANY($1)`, drop)
	return err
}
