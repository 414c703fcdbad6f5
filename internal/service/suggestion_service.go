package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"stockplan/internal/dto"
	"stockplan/internal/model"
	"stockplan/internal/planner"
	"stockplan/internal/repository"
)

const suggestionCacheKey = "cache:production-suggestion"

// invalidateSuggestionCache drops the cached suggestion after any mutation
// to products, raw materials, or BOM lines. Best effort — the cache is an
// optimization, never a correctness dependency.
func invalidateSuggestionCache(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	_ = rdb.Del(ctx, suggestionCacheKey).Err()
}

// SuggestionService runs the production planner against a fresh snapshot of
// persisted state. Each invocation builds its own private ledger, so
// concurrent calls never interfere and nothing is ever written back.
type SuggestionService interface {
	Suggest(ctx context.Context) (*dto.SuggestionResponse, error)
}

type suggestionService struct {
	products  repository.ProductRepository
	materials repository.RawMaterialRepository
	bom       repository.BOMRepository
	rdb       *redis.Client
	cacheTTL  time.Duration
}

func NewSuggestionService(
	products repository.ProductRepository,
	materials repository.RawMaterialRepository,
	bom repository.BOMRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) SuggestionService {
	return &suggestionService{
		products:  products,
		materials: materials,
		bom:       bom,
		rdb:       rdb,
		cacheTTL:  cacheTTL,
	}
}

func (s *suggestionService) Suggest(ctx context.Context) (*dto.SuggestionResponse, error) {
	// 1. Try the cache — a miss or a broken redis both fall through to compute.
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, suggestionCacheKey).Bytes(); err == nil {
			var resp dto.SuggestionResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	// 2. Fresh snapshot of persisted state.
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := s.bom.ListBare(ctx)
	if err != nil {
		return nil, err
	}

	linesByProduct := make(map[uuid.UUID][]model.BOMLine, len(products))
	for _, ln := range lines {
		linesByProduct[ln.ProductID] = append(linesByProduct[ln.ProductID], ln)
	}

	// 3. One greedy pass over a private ledger.
	allocations, total := planner.Suggest(products, linesByProduct, planner.NewLedger(materials))

	resp := &dto.SuggestionResponse{
		Products:   make([]dto.SuggestionEntry, 0, len(allocations)),
		TotalValue: total,
	}
	for _, a := range allocations {
		resp.Products = append(resp.Products, dto.SuggestionEntry{
			Product:  mapProduct(a.Product),
			Quantity: a.Quantity,
		})
	}

	// 4. Populate cache — best effort, ignore errors.
	if s.rdb != nil && s.cacheTTL > 0 {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, suggestionCacheKey, b, s.cacheTTL).Err()
		}
	}

	return resp, nil
}
