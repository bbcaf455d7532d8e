package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/repository"
	"gorm.io/gorm"
)

type MistakeService interface {
	ListMistakes(ctx context.Context, filter repository.MistakeFilter) ([]dto.MistakeResponse, error)
	GetMistake(ctx context.Context, id uint) (*dto.MistakeResponse, error)
	// UpdateMistake applies the given fields; without review_count the
	// review counter goes up by one.
	UpdateMistake(ctx context.Context, id uint, req dto.MistakeUpdateDTO) (*dto.MistakeResponse, error)
	DeleteMistake(ctx context.Context, id uint) error
}

type mistakeService struct {
	mistakeRepo repository.MistakeRepository
}

func NewMistakeService(mistakeRepo repository.MistakeRepository) MistakeService {
	return &mistakeService{mistakeRepo: mistakeRepo}
}

func (s *mistakeService) ListMistakes(ctx context.Context, filter repository.MistakeFilter) ([]dto.MistakeResponse, error) {
	mistakes, err := s.mistakeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing mistakes: %w", err)
	}
	out := make([]dto.MistakeResponse, len(mistakes))
	for i := range mistakes {
		out[i] = toMistakeResponse(&mistakes[i])
	}
	return out, nil
}

func (s *mistakeService) GetMistake(ctx context.Context, id uint) (*dto.MistakeResponse, error) {
	m, err := s.mistakeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMistakeNotFound
		}
		return nil, fmt.Errorf("error loading mistake %d: %w", id, err)
	}
	resp := toMistakeResponse(m)
	return &resp, nil
}

func (s *mistakeService) UpdateMistake(ctx context.Context, id uint, req dto.MistakeUpdateDTO) (*dto.MistakeResponse, error) {
	m, err := s.mistakeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMistakeNotFound
		}
		return nil, fmt.Errorf("error loading mistake %d: %w", id, err)
	}
	if req.Mastered != nil {
		m.Mastered = *req.Mastered
	}
	if req.ReviewCount != nil {
		m.ReviewCount = *req.ReviewCount
	} else {
		m.ReviewCount++
	}
	if err := s.mistakeRepo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("error updating mistake %d: %w", id, err)
	}
	resp := toMistakeResponse(m)
	return &resp, nil
}

func (s *mistakeService) DeleteMistake(ctx context.Context, id uint) error {
	if err := s.mistakeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMistakeNotFound
		}
		return fmt.Errorf("error deleting mistake %d: %w", id, err)
	}
	return nil
}
