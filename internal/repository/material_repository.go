package repository

import (
	"context"

	"github.com/lshigami/Studynest/internal/model"
	"gorm.io/gorm"
)

type MaterialRepository interface {
	Create(ctx context.Context, material *model.Material) error
	FindByID(ctx context.Context, id uint) (*model.Material, error)
	FindAll(ctx context.Context, directionID *uint) ([]model.Material, error)
	Update(ctx context.Context, material *model.Material) error
	UpdateStatus(ctx context.Context, id uint, status string) error
	// ClaimPending moves a pending material to processing. It reports false
	// when the material was not pending.
	ClaimPending(ctx context.Context, id uint) (bool, error)
	// Delete removes the material together with its questions.
	Delete(ctx context.Context, id uint) error
}

type materialRepository struct {
	db *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) FindByID(ctx context.Context, id uint) (*model.Material, error) {
	var material model.Material
	if err := r.db.WithContext(ctx).Preload("Direction").First(&material, id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) FindAll(ctx context.Context, directionID *uint) ([]model.Material, error) {
	var materials []model.Material
	query := r.db.WithContext(ctx)
	if directionID != nil {
		query = query.Where("direction_id = ?", *directionID)
	}
	err := query.Order("created_at DESC").Find(&materials).Error
	return materials, err
}

func (r *materialRepository) Update(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Omit("Direction", "Questions").Save(material).Error
}

func (r *materialRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&model.Material{}).Where("id = ?", id).Update("status", status).Error
}

func (r *materialRepository) ClaimPending(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Model(&model.Material{}).
		Where("id = ? AND status = ?", id, model.MaterialPending).
		Update("status", model.MaterialProcessing)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *materialRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Material{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("material_id = ?", id).Delete(&model.Question{}).Error
	})
}
