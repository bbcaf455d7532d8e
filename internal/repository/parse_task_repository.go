package repository

import (
	"context"

	"github.com/lshigami/Studynest/internal/model"
	"gorm.io/gorm"
)

type ParseTaskRepository interface {
	Create(ctx context.Context, task *model.ParseTask) error
	FindByID(ctx context.Context, id uint) (*model.ParseTask, error)
	FindAll(ctx context.Context, skip, limit int, directionID *uint) ([]model.ParseTask, error)
	Update(ctx context.Context, task *model.ParseTask) error
	// SaveAnalysis stores the summary and extracted items and marks the task
	// completed, all in one transaction.
	SaveAnalysis(ctx context.Context, task *model.ParseTask, points []model.KnowledgePoint, practices []model.BestPractice) error
	Delete(ctx context.Context, id uint) error
}

type parseTaskRepository struct {
	db *gorm.DB
}

func NewParseTaskRepository(db *gorm.DB) ParseTaskRepository {
	return &parseTaskRepository{db: db}
}

func (r *parseTaskRepository) Create(ctx context.Context, task *model.ParseTask) error {
	return r.db.WithContext(ctx).Omit("KnowledgePoints", "BestPractices").Create(task).Error
}

func (r *parseTaskRepository) FindByID(ctx context.Context, id uint) (*model.ParseTask, error) {
	var task model.ParseTask
	err := r.db.WithContext(ctx).
		Preload("KnowledgePoints", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("BestPractices", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *parseTaskRepository) FindAll(ctx context.Context, skip, limit int, directionID *uint) ([]model.ParseTask, error) {
	var tasks []model.ParseTask
	query := r.db.WithContext(ctx)
	if directionID != nil {
		query = query.Where("direction_id = ?", *directionID)
	}
	err := query.Order("created_at DESC").Offset(skip).Limit(limit).Find(&tasks).Error
	return tasks, err
}

func (r *parseTaskRepository) Update(ctx context.Context, task *model.ParseTask) error {
	return r.db.WithContext(ctx).Omit("KnowledgePoints", "BestPractices").Save(task).Error
}

func (r *parseTaskRepository) SaveAnalysis(ctx context.Context, task *model.ParseTask, points []model.KnowledgePoint, practices []model.BestPractice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range points {
			points[i].TaskID = task.ID
		}
		for i := range practices {
			practices[i].TaskID = task.ID
		}
		if len(points) > 0 {
			if err := tx.Create(&points).Error; err != nil {
				return err
			}
		}
		if len(practices) > 0 {
			if err := tx.Create(&practices).Error; err != nil {
				return err
			}
		}
		task.Status = model.TaskCompleted
		if err := tx.Omit("KnowledgePoints", "BestPractices").Save(task).Error; err != nil {
			return err
		}
		task.KnowledgePoints = points
		task.BestPractices = practices
		return nil
	})
}

func (r *parseTaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.KnowledgePoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.BestPractice{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.ParseTask{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
