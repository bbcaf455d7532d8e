package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/grading"
	"github.com/lshigami/Studynest/internal/metrics"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/lshigami/Studynest/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ExamSubmissionService grades a submitted exam and completes it.
type ExamSubmissionService interface {
	SubmitExam(ctx context.Context, examID uint, answers []dto.AnswerSubmitDTO) (*dto.ExamResultResponse, error)
}

type examSubmissionService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	grader       *SubjectiveGrader
	now          func() time.Time
}

func NewExamSubmissionService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	grader *SubjectiveGrader,
) ExamSubmissionService {
	return &examSubmissionService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		grader:       grader,
		now:          time.Now,
	}
}

// SubmitExam grades each answer in order, then completes the exam while
// storing one Answer per known question and a Mistake for every incorrect
// one. Objective questions are graded locally; short answers wait for the
// oracle, one at a time. The final score averages over every submitted
// answer, including answers to unknown questions, which are skipped. A
// submission that loses a race with another leaves no rows behind.
func (s *examSubmissionService) SubmitExam(ctx context.Context, examID uint, answers []dto.AnswerSubmitDTO) (*dto.ExamResultResponse, error) {
	exam, err := s.examRepo.FindByID(ctx, examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		log.Error().Err(err).Uint("examID", examID).Msg("SubmitExam: Failed to load exam")
		return nil, fmt.Errorf("error loading exam %d: %w", examID, err)
	}
	if exam.Status == model.ExamCompleted {
		return nil, ErrExamAlreadySubmitted
	}
	if len(answers) == 0 {
		return nil, ErrEmptySubmission
	}

	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading questions: %w", err)
	}

	result := &dto.ExamResultResponse{
		ExamID:         examID,
		TotalQuestions: len(answers),
		Answers:        make([]dto.AnswerResponse, 0, len(answers)),
	}
	graded := make([]model.Answer, 0, len(answers))
	total := 0.0

	for _, submitted := range answers {
		question, ok := questions[submitted.QuestionID]
		if !ok {
			log.Warn().Uint("examID", examID).Uint("questionID", submitted.QuestionID).Msg("SubmitExam: Unknown question, skipping")
			continue
		}

		answer := s.grade(ctx, &question, submitted.UserAnswer)
		total += answer.Score
		if answer.IsCorrect {
			result.CorrectCount++
		}
		graded = append(graded, answer)
	}

	result.Score = grading.FinalScore(total, len(answers))
	if exam.ScoreType == model.ScoreGrade {
		g := grading.LetterGrade(result.Score)
		result.Grade = &g
	}

	completed, err := s.examRepo.Complete(ctx, examID, graded, result.Score, result.Grade, s.now())
	if err != nil {
		log.Error().Err(err).Uint("examID", examID).Msg("SubmitExam: Failed to complete exam")
		return nil, fmt.Errorf("error completing exam %d: %w", examID, err)
	}
	if !completed {
		log.Warn().Uint("examID", examID).Msg("SubmitExam: Exam was completed by a concurrent submission")
		return nil, ErrExamAlreadySubmitted
	}
	for i := range graded {
		result.Answers = append(result.Answers, toAnswerResponse(&graded[i]))
	}

	metrics.ExamScores.Observe(result.Score)
	log.Info().Uint("examID", examID).Float64("score", result.Score).Int("correct", result.CorrectCount).
		Int("total", result.TotalQuestions).Msg("Exam submitted")
	return result, nil
}

func (s *examSubmissionService) grade(ctx context.Context, q *model.Question, userAnswer string) model.Answer {
	answer := model.Answer{
		QuestionID:    q.ID,
		UserAnswer:    userAnswer,
		GradingStatus: model.GradingGraded,
		AnsweredAt:    s.now(),
	}
	if model.IsObjective(q.Type) {
		answer.IsCorrect, answer.Score = grading.GradeObjective(q, userAnswer)
		return answer
	}

	eval := s.grader.Evaluate(ctx, q.Content, q.Answer, userAnswer, q.Type)
	answer.Score = eval.Score
	answer.IsCorrect = eval.Correct()
	answer.GradingStatus = eval.Status
	if eval.Feedback != "" {
		feedback := eval.Feedback
		answer.AIFeedback = &feedback
	}
	return answer
}
