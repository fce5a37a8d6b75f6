package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domproduct "example.com/carrito-backend/internal/domain/product"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id_objeto, titulo, COALESCE(descripcion, ''), precio, stock, imagen, estado
        FROM objetos WHERE id_objeto = $1
    `, id)

	var p domproduct.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Image, &p.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, status string) ([]*domproduct.Product, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id_objeto, titulo, COALESCE(descripcion, ''), precio, stock, imagen, estado
        FROM objetos
        WHERE estado = $1
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

	rows, err := r.pool.Query(ctx, `
        SELECT id_objeto, titulo, COALESCE(descripcion, ''), precio, stock, imagen, estado
        FROM objetos
        WHERE id_objeto = ANY($1)
    `, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*domproduct.Product, error) {
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
