package service

import (
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

// ProgressFunc receives processing events; it may be nil.
type ProgressFunc func(dto.ProgressEvent)

// fallbackDirectionName is used in prompts when the direction is gone.
const fallbackDirectionName = "通用"

type MaterialService interface {
	ListMaterials(ctx context.Context, directionID *uint) ([]dto.MaterialResponse, error)
	// CreateMaterial stores the material and processes it synchronously.
	// Oracle failures mark the material failed instead of failing the call.
	CreateMaterial(ctx context.Context, req dto.MaterialCreateDTO) (*dto.MaterialResponse, error)
	// StreamProgress processes a pending material and reports each step.
	// A material another request is already processing reports a single
	// processing event; any other non-pending material reports a single
	// completed event.
	StreamProgress(ctx context.Context, id uint, emit ProgressFunc) error
	// GenerateFromText turns already-extracted text into a processed
	// material. Unlike CreateMaterial a processing failure is returned.
	GenerateFromText(ctx context.Context, directionID uint, title, content string) (*dto.MaterialResponse, error)
	DeleteMaterial(ctx context.Context, id uint) error
}

type materialService struct {
	materialRepo  repository.MaterialRepository
	questionRepo  repository.QuestionRepository
	directionRepo repository.DirectionRepository
	generator     QuestionGenerator
}

func NewMaterialService(
	materialRepo repository.MaterialRepository,
	questionRepo repository.QuestionRepository,
	directionRepo repository.DirectionRepository,
	generator QuestionGenerator,
) MaterialService {
	return &materialService{
		materialRepo:  materialRepo,
		questionRepo:  questionRepo,
		directionRepo: directionRepo,
		generator:     generator,
	}
}

func (s *materialService) ListMaterials(ctx context.Context, directionID *uint) ([]dto.MaterialResponse, error) {
	materials, err := s.materialRepo.FindAll(ctx, directionID)
	if err != nil {
		return nil, fmt.Errorf("error listing materials: %w", err)
	}
	out := make([]dto.MaterialResponse, len(materials))
	for i := range materials {
		out[i] = toMaterialResponse(&materials[i])
	}
	return out, nil
}

func (s *materialService) CreateMaterial(ctx context.Context, req dto.MaterialCreateDTO) (*dto.MaterialResponse, error) {
	direction, err := s.directionRepo.FindByID(ctx, req.DirectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDirectionNotFound
		}
		return nil, fmt.Errorf("error loading direction %d: %w", req.DirectionID, err)
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}
	resp, procErr := s.createAndProcess(ctx, direction.ID, direction.Name, req.Title, req.Content)
	if procErr != nil && resp != nil {
		log.Error().Err(procErr).Uint("materialID", resp.ID).Msg("CreateMaterial: Processing failed")
		return resp, nil
	}
	return resp, procErr
}

func (s *materialService) GenerateFromText(ctx context.Context, directionID uint, title, content string) (*dto.MaterialResponse, error) {
	direction, err := s.directionRepo.FindByID(ctx, directionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDirectionNotFound
		}
		return nil, fmt.Errorf("error loading direction %d: %w", directionID, err)
	}
	resp, err := s.createAndProcess(ctx, direction.ID, direction.Name, title, content)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}
	return resp, nil
}

// createAndProcess stores a material already marked processing and
// processes it. When
// processing fails the failed material is returned along with the error.
func (s *materialService) createAndProcess(ctx context.Context, directionID uint, directionName, title, content string) (*dto.MaterialResponse, error) {
	if !s.generator.Available() {
		return nil, ErrAIUnavailable
	}

	material := model.Material{
		DirectionID: directionID,
		Title:       title,
		Content:     content,
		Status:      model.MaterialProcessing,
	}
	if err := s.materialRepo.Create(ctx, &material); err != nil {
		log.Error().Err(err).Msg("CreateMaterial: Failed to create material")
		return nil, fmt.Errorf("error creating material: %w", err)
	}

	procErr := s.process(ctx, &material, directionName, nil)
	resp := toMaterialResponse(&material)
	return &resp, procErr
}

func (s *materialService) StreamProgress(ctx context.Context, id uint, emit ProgressFunc) error {
	material, err := s.materialRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return fmt.Errorf("error loading material %d: %w", id, err)
	}
	if material.Status != model.MaterialPending && material.Status != model.MaterialProcessing {
		emit(dto.ProgressEvent{Step: "completed", Progress: 100, Message: "处理完成！", MaterialID: id})
		return nil
	}
	claimed := false
	if material.Status == model.MaterialPending {
		if claimed, err = s.materialRepo.ClaimPending(ctx, id); err != nil {
			return fmt.Errorf("error claiming material %d: %w", id, err)
		}
	}
	if !claimed {
		emit(dto.ProgressEvent{Step: "processing", Progress: 0, Message: "材料正在处理中", MaterialID: id})
		return nil
	}
	material.Status = model.MaterialProcessing

	directionName := material.Direction.Name
	if directionName == "" {
		directionName = fallbackDirectionName
	}
	if err := s.process(ctx, material, directionName, emit); err != nil {
		log.Error().Err(err).Uint("materialID", id).Msg("StreamProgress: Processing failed")
	}
	return nil
}

// process extracts key points, generates questions and stores them, then
// marks the material processed. Any error marks it failed.
func (s *materialService) process(ctx context.Context, material *model.Material, directionName string, emit ProgressFunc) error {
	report := func(ev dto.ProgressEvent) {
		if emit != nil {
			emit(ev)
		}
	}
	fail := func(err error) error {
		material.Status = model.MaterialFailed
		if uerr := s.materialRepo.UpdateStatus(context.WithoutCancel(ctx), material.ID, model.MaterialFailed); uerr != nil {
			log.Error().Err(uerr).Uint("materialID", material.ID).Msg("Failed to mark material as failed")
		}
		report(dto.ProgressEvent{Step: "error", Progress: 0, Message: "处理失败: " + err.Error()})
		return err
	}

	report(dto.ProgressEvent{Step: "extracting", Progress: 10, Message: "正在提炼知识点..."})
	keyPoints, err := s.generator.ExtractKeyPoints(ctx, material.Content, directionName)
	if err != nil {
		return fail(fmt.Errorf("extract key points: %w", err))
	}
	material.KeyPoints = keyPoints
	if err := s.materialRepo.Update(ctx, material); err != nil {
		return fail(fmt.Errorf("store key points: %w", err))
	}
	report(dto.ProgressEvent{Step: "extracted", Progress: 40, Message: fmt.Sprintf("知识点提炼完成，共%d个", len(keyPoints)), Data: keyPoints})

	report(dto.ProgressEvent{Step: "generating", Progress: 50, Message: "正在生成题目..."})
	generated, err := s.generator.GenerateQuestions(ctx, keyPoints, directionName, nil)
	if err != nil {
		return fail(fmt.Errorf("generate questions: %w", err))
	}
	report(dto.ProgressEvent{Step: "generated", Progress: 70, Message: fmt.Sprintf("题目生成完成，共%d道", len(generated)), Data: len(generated)})

	report(dto.ProgressEvent{Step: "saving", Progress: 80, Message: "正在保存题目..."})
	for i, g := range generated {
		q, ok := normalizeGenerated(material.ID, g)
		if !ok {
			log.Warn().Uint("materialID", material.ID).Int("index", i).Msg("Skipping generated question without content")
			continue
		}
		if err := s.questionRepo.Create(ctx, &q); err != nil {
			return fail(fmt.Errorf("store question: %w", err))
		}
		report(dto.ProgressEvent{
			Step:     "saving",
			Progress: 80 + (i+1)*15/len(generated),
			Message:  fmt.Sprintf("保存题目 %d/%d", i+1, len(generated)),
		})
	}

	material.Status = model.MaterialProcessed
	if err := s.materialRepo.UpdateStatus(ctx, material.ID, model.MaterialProcessed); err != nil {
		return fail(fmt.Errorf("mark processed: %w", err))
	}
	report(dto.ProgressEvent{Step: "completed", Progress: 100, Message: "处理完成！", MaterialID: material.ID})
	log.Info().Uint("materialID", material.ID).Int("keyPoints", len(keyPoints)).Int("questions", len(generated)).Msg("Material processed")
	return nil
}

// normalizeGenerated maps an oracle question onto the stored shape: unknown
// types become single_choice and difficulty is kept within 1-5.
func normalizeGenerated(materialID uint, g GeneratedQuestion) (model.Question, bool) {
	content := strings.TrimSpace(g.Content)
	if content == "" {
		return model.Question{}, false
	}
	qType := strings.TrimSpace(g.Type)
	if !model.ValidQuestionType(qType) {
		qType = model.QuestionSingleChoice
	}
	q := model.Question{
		MaterialID:  materialID,
		Type:        qType,
		Difficulty:  clampInt(int(g.Difficulty), 1, 5, 3),
		Content:     content,
		Answer:      string(g.Answer),
		Explanation: g.Explanation,
	}
	if len(g.Options) > 0 {
		q.Options = g.Options
	}
	return q, true
}

func (s *materialService) DeleteMaterial(ctx context.Context, id uint) error {
	if err := s.materialRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMaterialNotFound
		}
		return fmt.Errorf("error deleting material %d: %w", id, err)
	}
	return nil
}
