package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/repository"
)

func TestCreateDirectionNameIsUniqueAmongLiveRows(t *testing.T) {
	svc := NewDirectionService(repository.NewDirectionRepository(newTestDB(t)))
	ctx := context.Background()

	first, err := svc.CreateDirection(ctx, dto.DirectionCreateDTO{Name: "Go", Description: "backend"})
	if err != nil {
		t.Fatalf("CreateDirection: %v", err)
	}
	_, err = svc.CreateDirection(ctx, dto.DirectionCreateDTO{Name: " Go "})
	if !errors.Is(err, ErrDirectionExists) || !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("duplicate name: err = %v", err)
	}

	if err := svc.DeleteDirection(ctx, first.ID); err != nil {
		t.Fatalf("DeleteDirection: %v", err)
	}
	again, err := svc.CreateDirection(ctx, dto.DirectionCreateDTO{Name: "Go"})
	if err != nil {
		t.Fatalf("recreate after delete: %v", err)
	}
	if again.ID == first.ID {
		t.Error("recreated direction reused the deleted row")
	}

	list, err := svc.ListDirections(ctx)
	if err != nil {
		t.Fatalf("ListDirections: %v", err)
	}
	if len(list) != 1 || list[0].ID != again.ID {
		t.Errorf("unexpected directions %+v", list)
	}
}

func TestCreateDirectionRejectsBlankName(t *testing.T) {
	svc := NewDirectionService(repository.NewDirectionRepository(newTestDB(t)))
	if _, err := svc.CreateDirection(context.Background(), dto.DirectionCreateDTO{Name: "   "}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("blank name: err = %v", err)
	}
}

func TestGetAndDeleteMissingDirection(t *testing.T) {
	svc := NewDirectionService(repository.NewDirectionRepository(newTestDB(t)))
	ctx := context.Background()
	if _, err := svc.GetDirection(ctx, 42); !errors.Is(err, ErrDirectionNotFound) {
		t.Errorf("get: err = %v", err)
	}
	if err := svc.DeleteDirection(ctx, 42); !errors.Is(err, ErrDirectionNotFound) {
		t.Errorf("delete: err = %v", err)
	}
}
