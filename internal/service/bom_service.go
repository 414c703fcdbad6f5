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

// BOMService manages product ↔ raw-material associations and enforces the
// stock validation rule at association time: a line may not request more
// units than the material currently has persisted. The check runs before any
// write, so a rejected association leaves the store untouched. It is not a
// reservation — two concurrent creations can both pass against the same
// stock figure (documented limitation).
type BOMService interface {
	Create(ctx context.Context, req dto.CreateBOMLineRequest) (*dto.BOMLineResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BOMLineResponse, error)
	List(ctx context.Context) ([]dto.BOMLineResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bomService struct {
	repo      repository.BOMRepository
	products  repository.ProductRepository
	materials repository.RawMaterialRepository
	rdb       *redis.Client
}

func NewBOMService(
	repo repository.BOMRepository,
	products repository.ProductRepository,
	materials repository.RawMaterialRepository,
	rdb *redis.Client,
) BOMService {
	return &bomService{repo: repo, products: products, materials: materials, rdb: rdb}
}

// mapBOMLine converts a model to a DTO response. The preloaded parents may
// be nil on bare reads; the response then carries null for that side.
func mapBOMLine(ln model.BOMLine) dto.BOMLineResponse {
	resp := dto.BOMLineResponse{
		ID:               ln.ID.String(),
		RequiredQuantity: ln.RequiredQuantity,
	}
	if ln.Product != nil {
		p := mapProduct(*ln.Product)
		resp.Product = &p
	}
	if ln.RawMaterial != nil {
		m := mapRawMaterial(*ln.RawMaterial)
		resp.RawMaterial = &m
	}
	return resp
}

func (s *bomService) Create(ctx context.Context, req dto.CreateBOMLineRequest) (*dto.BOMLineResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	materialID, err := uuid.Parse(req.RawMaterialID)
	if err != nil {
		return nil, ErrMaterialNotFound
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	material, err := s.materials.FindByID(ctx, materialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}

	if req.RequiredQuantity > material.StockQuantity {
		return nil, &InsufficientStockError{Required: req.RequiredQuantity, Available: material.StockQuantity}
	}

	ln := &model.BOMLine{
		ProductID:        productID,
		RawMaterialID:    materialID,
		RequiredQuantity: req.RequiredQuantity,
	}
	if err := s.repo.Create(ctx, ln); err != nil {
		return nil, err
	}
	invalidateSuggestionCache(ctx, s.rdb)

	// Attach the already-fetched parents for the response only; they are
	// deliberately not set before Create so GORM writes just the link row.
	ln.Product = product
	ln.RawMaterial = material

	resp := mapBOMLine(*ln)
	return &resp, nil
}

func (s *bomService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BOMLineResponse, error) {
	ln, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := mapBOMLine(*ln)
	return &resp, nil
}

func (s *bomService) List(ctx context.Context) ([]dto.BOMLineResponse, error) {
	lines, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.BOMLineResponse, 0, len(lines))
	for _, ln := range lines {
		result = append(result, mapBOMLine(ln))
	}
	return result, nil
}

func (s *bomService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	invalidateSuggestionCache(ctx, s.rdb)
	return nil
}
