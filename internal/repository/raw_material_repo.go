package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stockplan/internal/model"
)

// RawMaterialRepository defines the data access contract for raw materials.
type RawMaterialRepository interface {
	Create(ctx context.Context, m *model.RawMaterial) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.RawMaterial, error)
	FindByCode(ctx context.Context, code string) (*model.RawMaterial, error)
	List(ctx context.Context) ([]model.RawMaterial, error)
	Update(ctx context.Context, m *model.RawMaterial) error
	// Delete removes the material and, atomically within the same
	// transaction, every BOM line referencing it.
	Delete(ctx context.Context, id uuid.UUID) error
}

type rawMaterialRepo struct{ db *gorm.DB }

func NewRawMaterialRepository(db *gorm.DB) RawMaterialRepository { return &rawMaterialRepo{db: db} }

func (r *rawMaterialRepo) Create(ctx context.Context, m *model.RawMaterial) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *rawMaterialRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.RawMaterial, error) {
	var m model.RawMaterial
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *rawMaterialRepo) FindByCode(ctx context.Context, code string) (*model.RawMaterial, error) {
	var m model.RawMaterial
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *rawMaterialRepo) List(ctx context.Context) ([]model.RawMaterial, error) {
	var materials []model.RawMaterial
	err := r.db.WithContext(ctx).Order("code asc").Find(&materials).Error
	return materials, err
}

func (r *rawMaterialRepo) Update(ctx context.Context, m *model.RawMaterial) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *rawMaterialRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("raw_material_id = ?", id).Delete(&model.BOMLine{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&model.RawMaterial{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
