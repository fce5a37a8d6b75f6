package cart

import (
	"context"
	"sort"

	domcart "example.com/carrito-backend/internal/domain/cart"
	domproduct "example.com/carrito-backend/internal/domain/product"
)

type CartRepository interface {
	domcart.Repository
}

type ProductRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domproduct.Product, error)
}

type Service struct {
	cartRepo    CartRepository
	productRepo ProductRepository
}

func NewService(cartRepo CartRepository, productRepo ProductRepository) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// List joins the cart rows against product data and returns the items
// ordered by product name. Products that no longer exist in the catalog
// are skipped, matching the join semantics of the storage layer.
func (s *Service) List(ctx context.Context, cartID int64) ([]domcart.DetailedItem, error) {
	if cartID <= 0 {
		return nil, domcart.ErrInvalidCartID
	}

	items, err := s.cartRepo.ListItems(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []domcart.DetailedItem{}, nil
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	productMap := make(map[int64]*domproduct.Product)
	for _, p := range products {
		productMap[p.ID] = p
	}

	detailed := make([]domcart.DetailedItem, 0, len(items))
	for _, item := range items {
		p, ok := productMap[item.ProductID]
		if !ok {
			continue
		}
		detailed = append(detailed, domcart.DetailedItem{
			Item: domcart.Item{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			},
			ProductName:  p.Name,
			ProductPrice: p.Price,
			ProductImage: p.Image,
		})
	}

	sort.Slice(detailed, func(i, j int) bool {
		return detailed[i].ProductName < detailed[j].ProductName
	})

	return detailed, nil
}

func (s *Service) Add(ctx context.Context, cartID, productID int64) error {
	if cartID <= 0 {
		return domcart.ErrInvalidCartID
	}
	if productID <= 0 {
		return domcart.ErrInvalidProductID
	}
	return s.cartRepo.AddItem(ctx, cartID, productID)
}

// SetQuantity is an absolute set: it overwrites the stored quantity rather
// than adding to it. Quantity zero removes the item.
func (s *Service) SetQuantity(ctx context.Context, cartID, productID, qty int64) error {
	if cartID <= 0 {
		return domcart.ErrInvalidCartID
	}
	if productID <= 0 {
		return domcart.ErrInvalidProductID
	}
	if qty < 0 {
		return domcart.ErrInvalidQuantity
	}
	if qty == 0 {
		return s.cartRepo.RemoveItem(ctx, cartID, productID)
	}
	return s.cartRepo.SetItemQuantity(ctx, cartID, productID, qty)
}

func (s *Service) Remove(ctx context.Context, cartID, productID int64) error {
	if cartID <= 0 {
		return domcart.ErrInvalidCartID
	}
	if productID <= 0 {
		return domcart.ErrInvalidProductID
	}
	return s.cartRepo.RemoveItem(ctx, cartID, productID)
}

func (s *Service) Clear(ctx context.Context, cartID int64) error {
	if cartID <= 0 {
		return domcart.ErrInvalidCartID
	}
	return s.cartRepo.Clear(ctx, cartID)
}
