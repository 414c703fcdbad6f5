package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockplan/internal/model"
)

// BOMRepository defines the data access contract for bill-of-materials lines.
type BOMRepository interface {
	Create(ctx context.Context, ln *model.BOMLine) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.BOMLine, error)
	// List returns every line with both ends preloaded.
	List(ctx context.Context) ([]model.BOMLine, error)
	// ListBare returns every line without preloads — the planner only needs
	// the foreign keys and the required quantity.
	ListBare(ctx context.Context) ([]model.BOMLine, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bomRepo struct{ db *gorm.DB }

func NewBOMRepository(db *gorm.DB) BOMRepository { return &bomRepo{db: db} }

func (r *bomRepo) Create(ctx context.Context, ln *model.BOMLine) error {
	return r.db.WithContext(ctx).Create(ln).Error
}

func (r *bomRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.BOMLine, error) {
	var ln model.BOMLine
	err := r.db.WithContext(ctx).Preload("Product").Preload("RawMaterial").First(&ln, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ln, nil
}

func (r *bomRepo) List(ctx context.Context) ([]model.BOMLine, error) {
	var lines []model.BOMLine
	err := r.db.WithContext(ctx).Preload("Product").Preload("RawMaterial").Find(&lines).Error
	return lines, err
}

func (r *bomRepo) ListBare(ctx context.Context) ([]model.BOMLine, error) {
	var lines []model.BOMLine
	err := r.db.WithContext(ctx).Find(&lines).Error
	return lines, err
}

func (r *bomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BOMLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
