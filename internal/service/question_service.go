package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/lshigami/Studynest/internal/repository"
	"gorm.io/gorm"
)

type QuestionService interface {
	ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error)
	// UpdateQuestion edits a question. Answers already graded against it
	// keep their scores.
	UpdateQuestion(ctx context.Context, id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponse, error)
	RateQuestion(ctx context.Context, id uint, rating string) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, id uint) error
}

type questionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{questionRepo: questionRepo}
}

func (s *questionService) ListQuestions(ctx context.Context, filter repository.QuestionFilter) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	return toQuestionResponses(questions), nil
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toQuestionResponse(q)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponse, error) {
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Content != nil {
		q.Content = *req.Content
	}
	if req.Options != nil {
		q.Options = *req.Options
	}
	if req.Answer != nil {
		q.Answer = *req.Answer
	}
	if req.Explanation != nil {
		q.Explanation = *req.Explanation
	}
	if req.Difficulty != nil {
		q.Difficulty = *req.Difficulty
	}
	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("error updating question %d: %w", id, err)
	}
	resp := toQuestionResponse(q)
	return &resp, nil
}

func (s *questionService) RateQuestion(ctx context.Context, id uint, rating string) (*dto.QuestionResponse, error) {
	if rating != model.RatingGood && rating != model.RatingBad {
		return nil, fmt.Errorf("%w: rating must be good or bad", ErrInvalidRequest)
	}
	q, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	q.Rating = &rating
	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("error rating question %d: %w", id, err)
	}
	resp := toQuestionResponse(q)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return fmt.Errorf("error deleting question %d: %w", id, err)
	}
	return nil
}

func (s *questionService) find(ctx context.Context, id uint) (*model.Question, error) {
	q, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error loading question %d: %w", id, err)
	}
	return q, nil
}
