package repository

import (
	"context"
	"time"

	"github.com/lshigami/Studynest/internal/model"
	"gorm.io/gorm"
)

// ExamFilter narrows exam listings; zero values mean no filter.
type ExamFilter struct {
	DirectionID *uint
	Status      string
}

type ExamRepository interface {
	// Create stores the exam and the ordered list of questions drawn for it.
	Create(ctx context.Context, exam *model.Exam, questionIDs []uint) error
	FindByID(ctx context.Context, id uint) (*model.Exam, error)
	FindAll(ctx context.Context, filter ExamFilter) ([]model.Exam, error)
	FindQuestions(ctx context.Context, examID uint) ([]model.Question, error)
	// Complete moves an in-progress exam to completed and stores its graded
	// answers, plus a Mistake for every incorrect one, in one transaction.
	// It reports false and writes nothing when the exam was no longer in
	// progress.
	Complete(ctx context.Context, id uint, answers []model.Answer, score float64, grade *string, completedAt time.Time) (bool, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, exam *model.Exam, questionIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions", "Answers").Create(exam).Error; err != nil {
			return err
		}
		if len(questionIDs) == 0 {
			return nil
		}
		links := make([]model.ExamQuestion, len(questionIDs))
		for i, qid := range questionIDs {
			links[i] = model.ExamQuestion{ExamID: exam.ID, QuestionID: qid, Position: i + 1}
		}
		return tx.Omit("Question").Create(&links).Error
	})
}

func (r *examRepository) FindByID(ctx context.Context, id uint) (*model.Exam, error) {
	var exam model.Exam
	if err := r.db.WithContext(ctx).First(&exam, id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindAll(ctx context.Context, filter ExamFilter) ([]model.Exam, error) {
	var exams []model.Exam
	query := r.db.WithContext(ctx)
	if filter.DirectionID != nil {
		query = query.Where("direction_id = ?", *filter.DirectionID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	err := query.Order("created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) FindQuestions(ctx context.Context, examID uint) ([]model.Question, error) {
	var links []model.ExamQuestion
	err := r.db.WithContext(ctx).
		Preload("Question").
		Where("exam_id = ?", examID).
		Order("position ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	questions := make([]model.Question, 0, len(links))
	for _, l := range links {
		if l.Question.ID == 0 { // deleted since the exam was drawn
			continue
		}
		questions = append(questions, l.Question)
	}
	return questions, nil
}

func (r *examRepository) Complete(ctx context.Context, id uint, answers []model.Answer, score float64, grade *string, completedAt time.Time) (bool, error) {
	completed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Exam{}).
			Where("id = ? AND status = ?", id, model.ExamInProgress).
			Updates(map[string]interface{}{
				"status":       model.ExamCompleted,
				"score":        score,
				"grade":        grade,
				"completed_at": completedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return nil
		}
		for i := range answers {
			answers[i].ExamID = id
			if err := storeAnswer(tx, &answers[i]); err != nil {
				return err
			}
		}
		completed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}
