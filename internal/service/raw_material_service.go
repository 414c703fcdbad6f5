package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"stockplan/internal/dto"
	"stockplan/internal/model"
	"stockplan/internal/repository"
	"stockplan/internal/worker"
)

// RawMaterialService defines the business logic contract for raw materials.
type RawMaterialService interface {
	Create(ctx context.Context, req dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RawMaterialResponse, error)
	List(ctx context.Context) ([]dto.RawMaterialResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRawMaterialRequest) (*dto.RawMaterialResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type rawMaterialService struct {
	repo       repository.RawMaterialRepository
	rdb        *redis.Client
	dispatcher *worker.Dispatcher

	lowStockThreshold int
	alertEmail        string
}

func NewRawMaterialService(
	repo repository.RawMaterialRepository,
	rdb *redis.Client,
	dispatcher *worker.Dispatcher,
	lowStockThreshold int,
	alertEmail string,
) RawMaterialService {
	return &rawMaterialService{
		repo:              repo,
		rdb:               rdb,
		dispatcher:        dispatcher,
		lowStockThreshold: lowStockThreshold,
		alertEmail:        alertEmail,
	}
}

// mapRawMaterial converts a model to a DTO response.
func mapRawMaterial(m model.RawMaterial) dto.RawMaterialResponse {
	return dto.RawMaterialResponse{
		ID:            m.ID.String(),
		Code:          m.Code,
		Name:          m.Name,
		StockQuantity: m.StockQuantity,
	}
}

func (s *rawMaterialService) Create(ctx context.Context, req dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	existing, err := s.repo.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateCode
	}

	m := &model.RawMaterial{
		Code:          req.Code,
		Name:          req.Name,
		StockQuantity: req.StockQuantity,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	invalidateSuggestionCache(ctx, s.rdb)
	s.maybeAlertLowStock(ctx, m)

	resp := mapRawMaterial(*m)
	return &resp, nil
}

func (s *rawMaterialService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RawMaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	resp := mapRawMaterial(*m)
	return &resp, nil
}

func (s *rawMaterialService) List(ctx context.Context) ([]dto.RawMaterialResponse, error) {
	materials, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.RawMaterialResponse, 0, len(materials))
	for _, m := range materials {
		result = append(result, mapRawMaterial(m))
	}
	return result, nil
}

func (s *rawMaterialService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Code != m.Code {
		existing, err := s.repo.FindByCode(ctx, req.Code)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, ErrDuplicateCode
		}
	}

	m.Code = req.Code
	m.Name = req.Name
	m.StockQuantity = req.StockQuantity

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	invalidateSuggestionCache(ctx, s.rdb)
	s.maybeAlertLowStock(ctx, m)

	resp := mapRawMaterial(*m)
	return &resp, nil
}

func (s *rawMaterialService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	invalidateSuggestionCache(ctx, s.rdb)
	return nil
}

// maybeAlertLowStock enqueues an email alert when a mutation leaves stock
// below the configured threshold. Best effort: a queue failure never fails
// the mutation that triggered it.
func (s *rawMaterialService) maybeAlertLowStock(ctx context.Context, m *model.RawMaterial) {
	if s.dispatcher == nil || s.alertEmail == "" || m.StockQuantity >= s.lowStockThreshold {
		return
	}
	payload := worker.LowStockAlertPayload{
		ToEmail:       s.alertEmail,
		MaterialCode:  m.Code,
		MaterialName:  m.Name,
		StockQuantity: m.StockQuantity,
		Threshold:     s.lowStockThreshold,
	}
	if err := s.dispatcher.EnqueueLowStockAlert(ctx, payload); err != nil {
		log.Warn().Err(err).Str("material", m.Code).Msg("failed to enqueue low-stock alert")
	}
}
