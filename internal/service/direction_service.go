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

type DirectionService interface {
	ListDirections(ctx context.Context) ([]dto.DirectionResponse, error)
	CreateDirection(ctx context.Context, req dto.DirectionCreateDTO) (*dto.DirectionResponse, error)
	GetDirection(ctx context.Context, id uint) (*dto.DirectionResponse, error)
	DeleteDirection(ctx context.Context, id uint) error
}

type directionService struct {
	directionRepo repository.DirectionRepository
}

func NewDirectionService(directionRepo repository.DirectionRepository) DirectionService {
	return &directionService{directionRepo: directionRepo}
}

func (s *directionService) ListDirections(ctx context.Context) ([]dto.DirectionResponse, error) {
	directions, err := s.directionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing directions: %w", err)
	}
	out := make([]dto.DirectionResponse, len(directions))
	for i := range directions {
		out[i] = toDirectionResponse(&directions[i])
	}
	return out, nil
}

func (s *directionService) CreateDirection(ctx context.Context, req dto.DirectionCreateDTO) (*dto.DirectionResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyContent
	}
	_, err := s.directionRepo.FindByName(ctx, name)
	if err == nil {
		return nil, ErrDirectionExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking direction name: %w", err)
	}

	direction := model.Direction{Name: name, Description: req.Description}
	if err := s.directionRepo.Create(ctx, &direction); err != nil {
		log.Error().Err(err).Str("name", name).Msg("CreateDirection: Failed to create direction")
		return nil, fmt.Errorf("error creating direction: %w", err)
	}
	resp := toDirectionResponse(&direction)
	return &resp, nil
}

func (s *directionService) GetDirection(ctx context.Context, id uint) (*dto.DirectionResponse, error) {
	direction, err := s.directionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDirectionNotFound
		}
		return nil, fmt.Errorf("error loading direction %d: %w", id, err)
	}
	resp := toDirectionResponse(direction)
	return &resp, nil
}

func (s *directionService) DeleteDirection(ctx context.Context, id uint) error {
	if err := s.directionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDirectionNotFound
		}
		return fmt.Errorf("error deleting direction %d: %w", id, err)
	}
	return nil
}
