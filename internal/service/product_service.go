package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"stockplan/internal/dto"
	"stockplan/internal/model"
	"stockplan/internal/repository"
)

// ProductService defines the business logic contract for products.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, rdb: rdb}
}

// mapProduct converts a model to a DTO response.
func mapProduct(p model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       p.ID.String(),
		Code:     p.Code,
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
	}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	// Uniqueness is a policy decision, not a storage exception: reject up
	// front instead of surfacing the constraint violation from Postgres.
	existing, err := s.repo.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCode
	}

	p := &model.Product{
		Code:     req.Code,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	invalidateSuggestionCache(ctx, s.rdb)

	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, mapProduct(p))
	}
	return result, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Code != p.Code {
		existing, err := s.repo.FindByCode(ctx, req.Code)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateCode
		}
	}

	p.Code = req.Code
	p.Name = req.Name
	p.Price = req.Price
	p.Quantity = req.Quantity

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	invalidateSuggestionCache(ctx, s.rdb)

	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	invalidateSuggestionCache(ctx, s.rdb)
	return nil
}
