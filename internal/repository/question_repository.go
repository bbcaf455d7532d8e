package repository

import (
	"context"

	"github.com/lshigami/Studynest/database"
	"github.com/lshigami/Studynest/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows question listings; zero values mean no filter.
type QuestionFilter struct {
	MaterialID  *uint
	DirectionID *uint
	Type        string
}

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	CreateBatch(ctx context.Context, questions []model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	FindByIDs(ctx context.Context, ids []uint) (map[uint]model.Question, error)
	Find(ctx context.Context, filter QuestionFilter) ([]model.Question, error)
	// RandomByDirection draws up to limit questions from the direction's
	// materials in random order.
	RandomByDirection(ctx context.Context, directionID uint, limit int) ([]model.Question, error)
	Update(ctx context.Context, question *model.Question) error
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Omit("Material").Create(question).Error
}

func (r *questionRepository) CreateBatch(ctx context.Context, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Material").Create(&questions).Error
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]model.Question, error) {
	out := make(map[uint]model.Question, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var questions []model.Question
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	for _, q := range questions {
		out[q.ID] = q
	}
	return out, nil
}

func (r *questionRepository) Find(ctx context.Context, filter QuestionFilter) ([]model.Question, error) {
	var questions []model.Question
	query := r.db.WithContext(ctx).Model(&model.Question{})
	if filter.MaterialID != nil {
		query = query.Where("questions.material_id = ?", *filter.MaterialID)
	}
	if filter.DirectionID != nil {
		query = query.Joins("JOIN materials ON materials.id = questions.material_id AND materials.deleted_at IS NULL").
			Where("materials.direction_id = ?", *filter.DirectionID)
	}
	if filter.Type != "" {
		query = query.Where("questions.type = ?", filter.Type)
	}
	err := query.Order("questions.created_at DESC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) RandomByDirection(ctx context.Context, directionID uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.WithContext(ctx).
		Joins("JOIN materials ON materials.id = questions.material_id AND materials.deleted_at IS NULL").
		Where("materials.direction_id = ?", directionID).
		Order(database.RandomOrder(r.db)).
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Omit("Material").Save(question).Error
}

func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
