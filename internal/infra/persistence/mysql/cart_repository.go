package mysql

import (
	"context"
	"database/sql"
	"strings"

	domcart "example.com/carrito-backend/internal/domain/cart"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) ListItems(ctx context.Context, cartID int64) ([]domcart.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id_objeto, SUM(cantidad)
        FROM carrito_items
        WHERE id_car = ?
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
	return r.withTx(ctx, func(tx *sql.Tx) error {
		locked, err := lockItemRows(ctx, tx, cartID, productID)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			_, err := tx.ExecContext(ctx, `
                INSERT INTO carrito_items (id_car, id_objeto, cantidad)
                VALUES (?, ?, 1)
            `, cartID, productID)
			return err
		}
		keep, drop := domcart.Consolidate(locked)
		return applyConsolidated(ctx, tx, keep.ItemID, keep.Quantity+1, drop)
	})
}

func (r *CartRepository) SetItemQuantity(ctx context.Context, cartID, productID, qty int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		locked, err := lockItemRows(ctx, tx, cartID, productID)
		if err != nil {
			return err
		}
		if len(locked) == 0 {
			_, err := tx.ExecContext(ctx, `
                INSERT INTO carrito_items (id_car, id_objeto, cantidad)
                VALUES (?, ?, ?)
            `, cartID, productID, qty)
			return err
		}
		keep, drop := domcart.Consolidate(locked)
		return applyConsolidated(ctx, tx, keep.ItemID, qty, drop)
	})
}

func (r *CartRepository) RemoveItem(ctx context.Context, cartID, productID int64) error {
	_, err := r.db.ExecContext(ctx, `
        DELETE FROM carrito_items
        WHERE id_car = ? AND id_objeto = ?
    `, cartID, productID)
	return err
}

func (r *CartRepository) Clear(ctx context.Context, cartID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carrito_items WHERE id_car = ?`, cartID)
	return err
}

func (r *CartRepository) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func lockItemRows(ctx context.Context, tx *sql.Tx, cartID, productID int64) ([]domcart.Row, error) {
	rows, err := tx.QueryContext(ctx, `
        SELECT id_item, cantidad
        FROM carrito_items
        WHERE id_car = ? AND id_objeto = ?
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

func applyConsolidated(ctx context.Context, tx *sql.Tx, itemID, qty int64, drop []int64) error {
	if _, err := tx.ExecContext(ctx, `
        UPDATE carrito_items SET cantidad = ? WHERE id_item = ?
    `, qty, itemID); err != nil {
		return err
	}
	if len(drop) == 0 {
		return nil
	}

	query := `DELETE FROM carrito_items WHERE id_item IN (?` + strings.Repeat(",?", len(drop)-1) + `)`
	args := make([]any, len(drop))
	for i, id := range drop {
		args[i] = id
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}
