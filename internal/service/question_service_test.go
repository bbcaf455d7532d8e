package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Studynest/internal/dto"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/lshigami/Studynest/internal/repository"
	"gorm.io/gorm"
)

func newQuestionFixture(t *testing.T) (*gorm.DB, QuestionService, model.Question) {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()
	dir := model.Direction{Name: "Go"}
	if err := repository.NewDirectionRepository(db).Create(ctx, &dir); err != nil {
		t.Fatalf("create direction: %v", err)
	}
	mat := model.Material{DirectionID: dir.ID, Title: "t", Content: "c", Status: model.MaterialProcessed}
	if err := repository.NewMaterialRepository(db).Create(ctx, &mat); err != nil {
		t.Fatalf("create material: %v", err)
	}
	q := model.Question{
		MaterialID:  mat.ID,
		Type:        model.QuestionSingleChoice,
		Difficulty:  2,
		Content:     "Pick one",
		Options:     []string{"a", "b"},
		Answer:      "a",
		Explanation: "a is right",
	}
	questionRepo := repository.NewQuestionRepository(db)
	if err := questionRepo.Create(ctx, &q); err != nil {
		t.Fatalf("create question: %v", err)
	}
	return db, NewQuestionService(questionRepo), q
}

func TestUpdateQuestionOnlyTouchesGivenFields(t *testing.T) {
	db, svc, q := newQuestionFixture(t)
	ctx := context.Background()

	difficulty := 5
	got, err := svc.UpdateQuestion(ctx, q.ID, dto.QuestionUpdateDTO{Difficulty: &difficulty})
	if err != nil {
		t.Fatalf("UpdateQuestion: %v", err)
	}
	if got.Difficulty != 5 || got.Content != "Pick one" || got.Answer != "a" || len(got.Options) != 2 {
		t.Errorf("unexpected response %+v", got)
	}

	var stored model.Question
	if err := db.First(&stored, q.ID).Error; err != nil {
		t.Fatalf("reload question: %v", err)
	}
	if stored.Difficulty != 5 || stored.Answer != "a" || stored.Explanation != "a is right" ||
		len(stored.Options) != 2 || stored.Options[0] != "a" || stored.Options[1] != "b" {
		t.Errorf("stored question %+v", stored)
	}

	options := []string{"x", "y", "z"}
	answer := "z"
	if _, err := svc.UpdateQuestion(ctx, q.ID, dto.QuestionUpdateDTO{Options: &options, Answer: &answer}); err != nil {
		t.Fatalf("UpdateQuestion options: %v", err)
	}
	if err := db.First(&stored, q.ID).Error; err != nil {
		t.Fatalf("reload question: %v", err)
	}
	if stored.Difficulty != 5 || stored.Answer != "z" || len(stored.Options) != 3 {
		t.Errorf("stored question after second update %+v", stored)
	}

	if _, err := svc.UpdateQuestion(ctx, 9999, dto.QuestionUpdateDTO{Difficulty: &difficulty}); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("missing question: err = %v", err)
	}
}

func TestRateQuestion(t *testing.T) {
	db, svc, q := newQuestionFixture(t)
	ctx := context.Background()

	got, err := svc.RateQuestion(ctx, q.ID, model.RatingBad)
	if err != nil {
		t.Fatalf("RateQuestion: %v", err)
	}
	if got.Rating == nil || *got.Rating != model.RatingBad {
		t.Errorf("response rating = %v", got.Rating)
	}
	var stored model.Question
	if err := db.First(&stored, q.ID).Error; err != nil {
		t.Fatalf("reload question: %v", err)
	}
	if stored.Rating == nil || *stored.Rating != model.RatingBad || stored.Difficulty != 2 {
		t.Errorf("stored question %+v", stored)
	}

	if _, err := svc.RateQuestion(ctx, q.ID, "meh"); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("invalid rating: err = %v", err)
	}
	if _, err := svc.RateQuestion(ctx, 9999, model.RatingGood); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("missing question: err = %v", err)
	}
}

func TestDeleteQuestion(t *testing.T) {
	_, svc, q := newQuestionFixture(t)
	ctx := context.Background()

	if err := svc.DeleteQuestion(ctx, q.ID); err != nil {
		t.Fatalf("DeleteQuestion: %v", err)
	}
	if _, err := svc.GetQuestion(ctx, q.ID); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("get after delete: err = %v", err)
	}
	if err := svc.DeleteQuestion(ctx, q.ID); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("second delete: err = %v", err)
	}
}
