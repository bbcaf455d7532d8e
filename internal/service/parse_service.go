package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/lshigami/Studynest/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	defaultTaskLimit   = 20
	maxTaskLimit       = 100
	sourcePreviewRunes = 500

	unnamedKnowledgePoint = "未命名知识点"
	unnamedBestPractice   = "未命名实践"
)

// FileUpload is an uploaded document as received from the client.
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ParseService runs knowledge extraction over text, files and web pages.
// Extraction or oracle failures do not fail the call: the task is stored
// as failed with the error message.
type ParseService interface {
	ParseText(ctx context.Context, req dto.ParseTextDTO) (*dto.ParseTaskResponse, error)
	ParseFile(ctx context.Context, title string, directionID *uint, file FileUpload) (*dto.ParseTaskResponse, error)
	ParseURL(ctx context.Context, req dto.ParseURLDTO) (*dto.ParseTaskResponse, error)
	ListTasks(ctx context.Context, skip, limit int, directionID *uint) ([]dto.TaskListResponse, error)
	GetTask(ctx context.Context, id uint) (*dto.ParseTaskResponse, error)
	UpdateTaskDirection(ctx context.Context, id uint, directionID *uint) (*dto.ParseTaskResponse, error)
	DeleteTask(ctx context.Context, id uint) error
	GenerateQuestions(ctx context.Context, id uint) (*dto.MaterialResponse, error)
}

type parseService struct {
	taskRepo        repository.ParseTaskRepository
	directionRepo   repository.DirectionRepository
	extractor       TextExtractor
	knowledge       KnowledgeExtractor
	storage         StorageProvider
	materialService MaterialService
}

func NewParseService(
	taskRepo repository.ParseTaskRepository,
	directionRepo repository.DirectionRepository,
	extractor TextExtractor,
	knowledge KnowledgeExtractor,
	storage StorageProvider,
	materialService MaterialService,
) ParseService {
	return &parseService{
		taskRepo:        taskRepo,
		directionRepo:   directionRepo,
		extractor:       extractor,
		knowledge:       knowledge,
		storage:         storage,
		materialService: materialService,
	}
}

func (s *parseService) ParseText(ctx context.Context, req dto.ParseTextDTO) (*dto.ParseTaskResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyContent
	}
	if err := s.checkDirection(ctx, req.DirectionID); err != nil {
		return nil, err
	}
	task := &model.ParseTask{
		DirectionID:   req.DirectionID,
		Title:         req.Title,
		SourceType:    model.SourceText,
		SourceContent: truncate(text, sourcePreviewRunes),
		Status:        model.TaskPending,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating parse task: %w", err)
	}
	return s.analyze(ctx, task, func() (string, error) { return text, nil })
}

func (s *parseService) ParseFile(ctx context.Context, title string, directionID *uint, file FileUpload) (*dto.ParseTaskResponse, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	ext, err := s.extractor.ValidateFile(file.Filename, int64(len(file.Data)))
	if err != nil {
		return nil, err
	}
	if err := s.checkDirection(ctx, directionID); err != nil {
		return nil, err
	}

	task := &model.ParseTask{
		DirectionID:   directionID,
		Title:         title,
		SourceType:    model.SourceFile,
		SourceContent: file.Filename,
		Status:        model.TaskPending,
	}
	key := ObjectKey("parse", ext)
	if err := s.storage.Upload(ctx, key, bytes.NewReader(file.Data), int64(len(file.Data)), file.ContentType); err != nil {
		log.Warn().Err(err).Str("file", file.Filename).Msg("ParseFile: Could not archive upload")
	} else {
		task.SourceObject = key
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating parse task: %w", err)
	}
	return s.analyze(ctx, task, func() (string, error) {
		return s.extractor.ExtractFile(ctx, file.Filename, file.Data)
	})
}

func (s *parseService) ParseURL(ctx context.Context, req dto.ParseURLDTO) (*dto.ParseTaskResponse, error) {
	if err := s.checkDirection(ctx, req.DirectionID); err != nil {
		return nil, err
	}
	task := &model.ParseTask{
		DirectionID:   req.DirectionID,
		Title:         req.Title,
		SourceType:    model.SourceURL,
		SourceContent: req.URL,
		Status:        model.TaskPending,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating parse task: %w", err)
	}
	return s.analyze(ctx, task, func() (string, error) {
		return s.extractor.ExtractURL(ctx, req.URL)
	})
}

// analyze fetches the raw text, asks the oracle for knowledge points and
// best practices, and stores the result.
func (s *parseService) analyze(ctx context.Context, task *model.ParseTask, rawText func() (string, error)) (*dto.ParseTaskResponse, error) {
	task.Status = model.TaskProcessing
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("error updating parse task %d: %w", task.ID, err)
	}

	raw, err := rawText()
	if err != nil {
		return s.fail(ctx, task, fmt.Errorf("text extraction failed: %w", err))
	}
	task.RawText = raw
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("error updating parse task %d: %w", task.ID, err)
	}

	result, err := s.knowledge.ExtractKnowledge(ctx, raw)
	if err != nil {
		return s.fail(ctx, task, fmt.Errorf("knowledge extraction failed: %w", err))
	}

	points := make([]model.KnowledgePoint, 0, len(result.KnowledgePoints))
	for _, kp := range result.KnowledgePoints {
		name := strings.TrimSpace(kp.Name)
		if name == "" {
			name = unnamedKnowledgePoint
		}
		points = append(points, model.KnowledgePoint{
			Name:        name,
			Description: kp.Description,
			Importance:  clampInt(int(kp.Importance), 1, 5, 3),
			Category:    kp.Category,
		})
	}
	practices := make([]model.BestPractice, 0, len(result.BestPractices))
	for _, bp := range result.BestPractices {
		title := strings.TrimSpace(bp.Title)
		if title == "" {
			title = unnamedBestPractice
		}
		practices = append(practices, model.BestPractice{
			Title:    title,
			Content:  bp.Content,
			Scenario: bp.Scenario,
			Notes:    bp.Notes,
		})
	}
	task.Summary = result.Summary
	task.ErrorMessage = ""
	if err := s.taskRepo.SaveAnalysis(ctx, task, points, practices); err != nil {
		return s.fail(ctx, task, fmt.Errorf("saving analysis failed: %w", err))
	}

	log.Info().Uint("taskID", task.ID).Int("knowledgePoints", len(points)).Int("bestPractices", len(practices)).Msg("Parse task completed")
	return toParseTaskResponse(task), nil
}

func (s *parseService) fail(ctx context.Context, task *model.ParseTask, cause error) (*dto.ParseTaskResponse, error) {
	log.Error().Err(cause).Uint("taskID", task.ID).Msg("Parse task failed")
	task.Status = model.TaskFailed
	task.ErrorMessage = cause.Error()
	if err := s.taskRepo.Update(context.WithoutCancel(ctx), task); err != nil {
		return nil, fmt.Errorf("error marking parse task %d failed: %w", task.ID, err)
	}
	return toParseTaskResponse(task), nil
}

func (s *parseService) checkDirection(ctx context.Context, directionID *uint) error {
	if directionID == nil {
		return nil
	}
	if _, err := s.directionRepo.FindByID(ctx, *directionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDirectionNotFound
		}
		return fmt.Errorf("error loading direction %d: %w", *directionID, err)
	}
	return nil
}

func (s *parseService) ListTasks(ctx context.Context, skip, limit int, directionID *uint) ([]dto.TaskListResponse, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultTaskLimit
	}
	if limit > maxTaskLimit {
		limit = maxTaskLimit
	}
	tasks, err := s.taskRepo.FindAll(ctx, skip, limit, directionID)
	if err != nil {
		return nil, fmt.Errorf("error listing parse tasks: %w", err)
	}
	out := make([]dto.TaskListResponse, len(tasks))
	for i := range tasks {
		out[i] = toTaskListResponse(&tasks[i])
	}
	return out, nil
}

func (s *parseService) getTask(ctx context.Context, id uint) (*model.ParseTask, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("error loading parse task %d: %w", id, err)
	}
	return task, nil
}

func (s *parseService) GetTask(ctx context.Context, id uint) (*dto.ParseTaskResponse, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return toParseTaskResponse(task), nil
}

func (s *parseService) UpdateTaskDirection(ctx context.Context, id uint, directionID *uint) (*dto.ParseTaskResponse, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkDirection(ctx, directionID); err != nil {
		return nil, err
	}
	task.DirectionID = directionID
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("error updating parse task %d: %w", id, err)
	}
	return toParseTaskResponse(task), nil
}

func (s *parseService) DeleteTask(ctx context.Context, id uint) error {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("error deleting parse task %d: %w", id, err)
	}
	if task.SourceObject != "" {
		if err := s.storage.Delete(ctx, task.SourceObject); err != nil {
			log.Warn().Err(err).Str("object", task.SourceObject).Msg("DeleteTask: Could not remove archived upload")
		}
	}
	return nil
}

// GenerateQuestions turns a completed task's raw text into a material in
// the task's direction.
func (s *parseService) GenerateQuestions(ctx context.Context, id uint) (*dto.MaterialResponse, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.Status != model.TaskCompleted {
		return nil, ErrTaskNotCompleted
	}
	if strings.TrimSpace(task.RawText) == "" {
		return nil, ErrTaskNoText
	}
	if task.DirectionID == nil {
		return nil, ErrTaskNoDirection
	}
	return s.materialService.GenerateFromText(ctx, *task.DirectionID, task.Title, task.RawText)
}
