package repository

import (
	"context"

	"github.com/lshigami/Studynest/internal/model"
	"gorm.io/gorm"
)

type MistakeFilter struct {
	DirectionID *uint
	Mastered    *bool
}

type MistakeRepository interface {
	FindAll(ctx context.Context, filter MistakeFilter) ([]model.Mistake, error)
	FindByID(ctx context.Context, id uint) (*model.Mistake, error)
	Update(ctx context.Context, mistake *model.Mistake) error
	Delete(ctx context.Context, id uint) error
}

type mistakeRepository struct {
	db *gorm.DB
}

func NewMistakeRepository(db *gorm.DB) MistakeRepository {
	return &mistakeRepository{db: db}
}

func (r *mistakeRepository) FindAll(ctx context.Context, filter MistakeFilter) ([]model.Mistake, error) {
	var mistakes []model.Mistake
	query := r.db.WithContext(ctx).Model(&model.Mistake{}).Preload("Question")
	if filter.DirectionID != nil {
		query = query.
			Joins("JOIN questions ON questions.id = mistakes.question_id").
			Joins("JOIN materials ON materials.id = questions.material_id").
			Where("materials.direction_id = ?", *filter.DirectionID)
	}
	if filter.Mastered != nil {
		query = query.Where("mistakes.mastered = ?", *filter.Mastered)
	}
	err := query.Order("mistakes.created_at DESC").Find(&mistakes).Error
	return mistakes, err
}

func (r *mistakeRepository) FindByID(ctx context.Context, id uint) (*model.Mistake, error) {
	var mistake model.Mistake
	if err := r.db.WithContext(ctx).Preload("Question").First(&mistake, id).Error; err != nil {
		return nil, err
	}
	return &mistake, nil
}

func (r *mistakeRepository) Update(ctx context.Context, mistake *model.Mistake) error {
	return r.db.WithContext(ctx).Model(mistake).
		Select("review_count", "mastered").
		Updates(map[string]interface{}{
			"review_count": mistake.ReviewCount,
			"mastered":     mistake.Mastered,
		}).Error
}

func (r *mistakeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Mistake{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
