package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/lshigami/Studynest/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultQuestionCount is drawn when an exam request does not say.
const DefaultQuestionCount = 10

type ExamService interface {
	CreateExam(ctx context.Context, req dto.ExamCreateDTO) (*dto.ExamDetailResponse, error)
	ListExams(ctx context.Context, filter repository.ExamFilter) ([]dto.ExamResponse, error)
	GetExam(ctx context.Context, id uint) (*dto.ExamDetailResponse, error)
	GetExamResult(ctx context.Context, id uint) (*dto.ExamResultResponse, error)
}

type examService struct {
	examRepo      repository.ExamRepository
	questionRepo  repository.QuestionRepository
	answerRepo    repository.AnswerRepository
	directionRepo repository.DirectionRepository
}

func NewExamService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	directionRepo repository.DirectionRepository,
) ExamService {
	return &examService{
		examRepo:      examRepo,
		questionRepo:  questionRepo,
		answerRepo:    answerRepo,
		directionRepo: directionRepo,
	}
}

func (s *examService) CreateExam(ctx context.Context, req dto.ExamCreateDTO) (*dto.ExamDetailResponse, error) {
	if _, err := s.directionRepo.FindByID(ctx, req.DirectionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDirectionNotFound
		}
		return nil, fmt.Errorf("error loading direction %d: %w", req.DirectionID, err)
	}

	count := req.QuestionCount
	if count <= 0 {
		count = DefaultQuestionCount
	}
	questions, err := s.questionRepo.RandomByDirection(ctx, req.DirectionID, count)
	if err != nil {
		log.Error().Err(err).Uint("directionID", req.DirectionID).Msg("CreateExam: Failed to draw questions")
		return nil, fmt.Errorf("error drawing questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	exam := model.Exam{
		DirectionID: req.DirectionID,
		Mode:        req.Mode,
		ScoreType:   req.ScoreType,
		Status:      model.ExamInProgress,
	}
	if exam.Mode == "" {
		exam.Mode = model.ExamUntimed
	}
	if exam.ScoreType == "" {
		exam.ScoreType = model.ScoreHundred
	}
	if exam.Mode == model.ExamTimed {
		exam.TimeLimit = req.TimeLimit
	}

	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	if err := s.examRepo.Create(ctx, &exam, ids); err != nil {
		log.Error().Err(err).Msg("CreateExam: Failed to persist exam")
		return nil, fmt.Errorf("error creating exam: %w", err)
	}
	log.Info().Uint("examID", exam.ID).Int("questions", len(ids)).Str("mode", exam.Mode).Msg("Exam created")
	return toExamDetailResponse(&exam, questions), nil
}

func (s *examService) ListExams(ctx context.Context, filter repository.ExamFilter) ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing exams: %w", err)
	}
	out := make([]dto.ExamResponse, len(exams))
	for i := range exams {
		out[i] = toExamResponse(&exams[i])
	}
	return out, nil
}

func (s *examService) GetExam(ctx context.Context, id uint) (*dto.ExamDetailResponse, error) {
	exam, err := s.findExam(ctx, id)
	if err != nil {
		return nil, err
	}
	questions, err := s.examRepo.FindQuestions(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading questions of exam %d: %w", id, err)
	}
	return toExamDetailResponse(exam, questions), nil
}

func (s *examService) GetExamResult(ctx context.Context, id uint) (*dto.ExamResultResponse, error) {
	exam, err := s.findExam(ctx, id)
	if err != nil {
		return nil, err
	}
	if exam.Status != model.ExamCompleted {
		return nil, ErrExamNotCompleted
	}
	answers, err := s.answerRepo.FindByExamID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading answers of exam %d: %w", id, err)
	}

	resp := &dto.ExamResultResponse{
		ExamID:         exam.ID,
		TotalQuestions: len(answers),
		Grade:          exam.Grade,
		Answers:        make([]dto.AnswerResponse, len(answers)),
	}
	if exam.Score != nil {
		resp.Score = *exam.Score
	}
	for i := range answers {
		if answers[i].IsCorrect {
			resp.CorrectCount++
		}
		resp.Answers[i] = toAnswerResponse(&answers[i])
	}
	return resp, nil
}

func (s *examService) findExam(ctx context.Context, id uint) (*model.Exam, error) {
	exam, err := s.examRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("error loading exam %d: %w", id, err)
	}
	return exam, nil
}
