package service

import (
	"context"

	"github.com/google/uuid"

	"stockplan/internal/model"
	"stockplan/internal/repository"
)

// ── In-memory repository stubs ───────────────────────────────────────────────
// Slice-backed so List order is deterministic (insertion order), which the
// suggestion tests rely on for price-tie behavior.

type stubProductRepo struct {
	products []*model.Product
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products = append(r.products, p)
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubProductRepo) FindByCode(_ context.Context, code string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	return result, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	for i, existing := range r.products {
		if existing.ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubMaterialRepo struct {
	materials []*model.RawMaterial
}

func (r *stubMaterialRepo) Create(_ context.Context, m *model.RawMaterial) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.materials = append(r.materials, m)
	return nil
}

func (r *stubMaterialRepo) FindByID(_ context.Context, id uuid.UUID) (*model.RawMaterial, error) {
	for _, m := range r.materials {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubMaterialRepo) FindByCode(_ context.Context, code string) (*model.RawMaterial, error) {
	for _, m := range r.materials {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubMaterialRepo) List(_ context.Context) ([]model.RawMaterial, error) {
	result := make([]model.RawMaterial, 0, len(r.materials))
	for _, m := range r.materials {
		result = append(result, *m)
	}
	return result, nil
}

func (r *stubMaterialRepo) Update(_ context.Context, m *model.RawMaterial) error {
	for i, existing := range r.materials {
		if existing.ID == m.ID {
			r.materials[i] = m
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *stubMaterialRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, m := range r.materials {
		if m.ID == id {
			r.materials = append(r.materials[:i], r.materials[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.RawMaterialRepository = (*stubMaterialRepo)(nil)

type stubBOMRepo struct {
	lines []*model.BOMLine
}

func (r *stubBOMRepo) Create(_ context.Context, ln *model.BOMLine) error {
	if ln.ID == uuid.Nil {
		ln.ID = uuid.New()
	}
	r.lines = append(r.lines, ln)
	return nil
}

func (r *stubBOMRepo) FindByID(_ context.Context, id uuid.UUID) (*model.BOMLine, error) {
	for _, ln := range r.lines {
		if ln.ID == id {
			return ln, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubBOMRepo) List(_ context.Context) ([]model.BOMLine, error) {
	return r.ListBare(context.Background())
}

func (r *stubBOMRepo) ListBare(_ context.Context) ([]model.BOMLine, error) {
	result := make([]model.BOMLine, 0, len(r.lines))
	for _, ln := range r.lines {
		result = append(result, *ln)
	}
	return result, nil
}

func (r *stubBOMRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, ln := range r.lines {
		if ln.ID == id {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var _ repository.BOMRepository = (*stubBOMRepo)(nil)
