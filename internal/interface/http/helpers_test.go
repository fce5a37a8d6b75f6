package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"

	domcart "example.com/carrito-backend/internal/domain/cart"
	domproduct "example.com/carrito-backend/internal/domain/product"
	cartuc "example.com/carrito-backend/internal/usecase/cart"
	productuc "example.com/carrito-backend/internal/usecase/product"
)

// fakeCartRepository keeps real rows with item ids so tests can seed the
// duplicate-row anomaly and observe consolidation.
type cartRow struct {
	itemID    int64
	productID int64
	qty       int64
}

type fakeCartRepository struct {
	nextID int64
	rows   map[int64][]cartRow
	err    error
}

func newFakeCartRepository() *fakeCartRepository {
	return &fakeCartRepository{nextID: 1, rows: make(map[int64][]cartRow)}
}

func (f *fakeCartRepository) seed(cartID, productID, qty int64) {
	f.rows[cartID] = append(f.rows[cartID], cartRow{itemID: f.nextID, productID: productID, qty: qty})
	f.nextID++
}

func (f *fakeCartRepository) rowsFor(cartID, productID int64) []cartRow {
	var out []cartRow
	for _, row := range f.rows[cartID] {
		if row.productID == productID {
			out = append(out, row)
		}
	}
	return out
}

func (f *fakeCartRepository) ListItems(ctx context.Context, cartID int64) ([]domcart.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	totals := make(map[int64]int64)
	var order []int64
	for _, row := range f.rows[cartID] {
		if _, ok := totals[row.productID]; !ok {
			order = append(order, row.productID)
		}
		totals[row.productID] += row.qty
	}
	items := make([]domcart.Item, 0, len(order))
	for _, id := range order {
		items = append(items, domcart.Item{ProductID: id, Quantity: totals[id]})
	}
	return items, nil
}

func (f *fakeCartRepository) AddItem(ctx context.Context, cartID, productID int64) error {
	if f.err != nil {
		return f.err
	}
	matching := f.rowsFor(cartID, productID)
	if len(matching) == 0 {
		f.seed(cartID, productID, 1)
		return nil
	}
	var total int64
	for _, row := range matching {
		total += row.qty
	}
	f.keepOne(cartID, productID, matching[0].itemID, total+1)
	return nil
}

func (f *fakeCartRepository) SetItemQuantity(ctx context.Context, cartID, productID, qty int64) error {
	if f.err != nil {
		return f.err
	}
	matching := f.rowsFor(cartID, productID)
	if len(matching) == 0 {
		f.seed(cartID, productID, qty)
		return nil
	}
	f.keepOne(cartID, productID, matching[0].itemID, qty)
	return nil
}

func (f *fakeCartRepository) RemoveItem(ctx context.Context, cartID, productID int64) error {
	if f.err != nil {
		return f.err
	}
	var kept []cartRow
	for _, row := range f.rows[cartID] {
		if row.productID != productID {
			kept = append(kept, row)
		}
	}
	f.rows[cartID] = kept
	return nil
}

func (f *fakeCartRepository) Clear(ctx context.Context, cartID int64) error {
	if f.err != nil {
		return f.err
	}
	delete(f.rows, cartID)
	return nil
}

// keepOne drops every row for the product except keepID, which gets qty.
func (f *fakeCartRepository) keepOne(cartID, productID, keepID, qty int64) {
	var kept []cartRow
	for _, row := range f.rows[cartID] {
		if row.productID != productID {
			kept = append(kept, row)
			continue
		}
		if row.itemID == keepID {
			row.qty = qty
			kept = append(kept, row)
		}
	}
	f.rows[cartID] = kept
}

type fakeProductRepository struct {
	products map[int64]*domproduct.Product
	err      error
}

func newFakeProductRepository() *fakeProductRepository {
	img := "abrigo.png"
	return &fakeProductRepository{
		products: map[int64]*domproduct.Product{
			1: {ID: 1, Name: "Abrigo", Description: "Abrigo de lana", Price: 50, Stock: 10, Image: &img, Status: "disponible"},
			2: {ID: 2, Name: "Zapato", Price: 30, Stock: 4, Status: "disponible"},
			7: {ID: 7, Name: "Camisa", Price: 15, Stock: 20, Status: "disponible"},
			9: {ID: 9, Name: "Gorra", Price: 8, Stock: 0, Status: "agotado"},
		},
	}
}

func (f *fakeProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.products[id]; ok {
		cloned := *p
		return &cloned, nil
	}
	return nil, domproduct.ErrProductNotFound
}

func (f *fakeProductRepository) List(ctx context.Context, status string) ([]*domproduct.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domproduct.Product
	for _, p := range f.products {
		if p.Status == status {
			cloned := *p
			result = append(result, &cloned)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeProductRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domproduct.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domproduct.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			cloned := *p
			result = append(result, &cloned)
		}
	}
	return result, nil
}

func setupCartAPI() (*API, *fakeCartRepository, *fakeProductRepository) {
	cartRepo := newFakeCartRepository()
	productRepo := newFakeProductRepository()

	api := NewAPI(Dependencies{
		CartService:    cartuc.NewService(cartRepo, productRepo),
		ProductService: productuc.NewService(productRepo),
	})
	return api, cartRepo, productRepo
}

func newJSONRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}
