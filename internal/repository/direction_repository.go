package repository

import (
	"context"

	"github.com/lshigami/Studynest/internal/model"
	"gorm.io/gorm"
)

type DirectionRepository interface {
	Create(ctx context.Context, direction *model.Direction) error
	FindByID(ctx context.Context, id uint) (*model.Direction, error)
	FindByName(ctx context.Context, name string) (*model.Direction, error)
	FindAll(ctx context.Context) ([]model.Direction, error)
	Delete(ctx context.Context, id uint) error
}

type directionRepository struct {
	db *gorm.DB
}

func NewDirectionRepository(db *gorm.DB) DirectionRepository {
	return &directionRepository{db: db}
}

func (r *directionRepository) Create(ctx context.Context, direction *model.Direction) error {
	return r.db.WithContext(ctx).Create(direction).Error
}

func (r *directionRepository) FindByID(ctx context.Context, id uint) (*model.Direction, error) {
	var direction model.Direction
	if err := r.db.WithContext(ctx).First(&direction, id).Error; err != nil {
		return nil, err
	}
	return &direction, nil
}

func (r *directionRepository) FindByName(ctx context.Context, name string) (*model.Direction, error) {
	var direction model.Direction
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&direction).Error; err != nil {
		return nil, err
	}
	return &direction, nil
}

func (r *directionRepository) FindAll(ctx context.Context) ([]model.Direction, error) {
	var directions []model.Direction
	err := r.db.WithContext(ctx).Order("id ASC").Find(&directions).Error
	return directions, err
}

func (r *directionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Direction{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
