package product

import (
	"context"

	dom "example.com/carrito-backend/internal/domain/product"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status string) ([]*dom.Product, error) {
	if status == "" {
		status = dom.StatusAvailable
	}
	return s.repo.List(ctx, status)
}
