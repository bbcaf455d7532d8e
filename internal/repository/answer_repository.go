package repository

import (
	"context"

	"github.com/lshigami/Studynest/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByExamID(ctx context.Context, examID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// storeAnswer writes a graded answer and, when it is incorrect, the Mistake
// pointing at it. Answers are only written as part of completing an exam.
func storeAnswer(tx *gorm.DB, answer *model.Answer) error {
	if err := tx.Omit("Question").Create(answer).Error; err != nil {
		return err
	}
	if answer.IsCorrect {
		return nil
	}
	return tx.Omit("Question").Create(&model.Mistake{QuestionID: answer.QuestionID, AnswerID: answer.ID}).Error
}

func (r *answerRepository) FindByExamID(ctx context.Context, examID uint) ([]model.Answer, error) {
	var answers []model.Answer
	err := r.db.WithContext(ctx).Where("exam_id = ?", examID).Order("id ASC").Find(&answers).Error
	return answers, err
}
