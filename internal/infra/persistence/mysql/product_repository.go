package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	domproduct "example.com/carrito-backend/internal/domain/product"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id_objeto, titulo, COALESCE(descripcion, ''), precio, stock, imagen, estado
        FROM objetos WHERE id_objeto = ?
    `, id)

	var p domproduct.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Image, &p.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, status string) ([]*domproduct.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id_objeto, titulo, COALESCE(descripcion, ''), precio, stock, imagen, estado
        FROM objetos
        WHERE estado = ?
        ORDER BY id_objeto
    `, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domproduct.Product, error) {
	if len(ids) == 0 {
		return []*domproduct.Product{}, nil
	}

	query := `
        SELECT id_objeto, titulo, COALESCE(descripcion, ''), precio, stock, imagen, estado
        FROM objetos
        WHERE id_objeto IN (?` + strings.Repeat(",?", len(ids)-1) + `)
    `

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows *sql.Rows) ([]*domproduct.Product, error) {
	var products []*domproduct.Product
	for rows.Next() {
		var p domproduct.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Image, &p.Status); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
