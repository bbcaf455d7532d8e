package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/Studynest/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// seedQuestions creates a direction with one material holding n questions.
func seedQuestions(t *testing.T, db *gorm.DB, n int) (model.Direction, []model.Question) {
	t.Helper()
	ctx := context.Background()
	dir := model.Direction{Name: "Go"}
	if err := NewDirectionRepository(db).Create(ctx, &dir); err != nil {
		t.Fatalf("create direction: %v", err)
	}
	mat := model.Material{DirectionID: dir.ID, Title: "basics", Content: "text", Status: model.MaterialProcessed}
	if err := NewMaterialRepository(db).Create(ctx, &mat); err != nil {
		t.Fatalf("create material: %v", err)
	}
	qs := make([]model.Question, n)
	for i := range qs {
		qs[i] = model.Question{
			MaterialID: mat.ID,
			Type:       model.QuestionSingleChoice,
			Difficulty: 3,
			Content:    "q",
			Options:    []string{"a", "b"},
			Answer:     "A",
		}
	}
	if err := NewQuestionRepository(db).CreateBatch(ctx, qs); err != nil {
		t.Fatalf("create questions: %v", err)
	}
	return dir, qs
}

// startExam opens an in-progress exam over the given questions.
func startExam(t *testing.T, db *gorm.DB, dir model.Direction, qs []model.Question) model.Exam {
	t.Helper()
	ids := make([]uint, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	exam := model.Exam{DirectionID: dir.ID, Mode: model.ExamUntimed, ScoreType: model.ScoreHundred, Status: model.ExamInProgress}
	if err := NewExamRepository(db).Create(context.Background(), &exam, ids); err != nil {
		t.Fatalf("create exam: %v", err)
	}
	return exam
}

func TestExamCompleteIsOneWay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir, qs := seedQuestions(t, db, 2)
	repo := NewExamRepository(db)
	exam := startExam(t, db, dir, qs)

	first := []model.Answer{{QuestionID: qs[0].ID, UserAnswer: "A", IsCorrect: true, Score: 100, GradingStatus: model.GradingGraded, AnsweredAt: time.Now()}}
	ok, err := repo.Complete(ctx, exam.ID, first, 50, nil, time.Now())
	if err != nil || !ok {
		t.Fatalf("first complete: ok=%v err=%v", ok, err)
	}
	second := []model.Answer{{QuestionID: qs[1].ID, UserAnswer: "B", GradingStatus: model.GradingGraded, AnsweredAt: time.Now()}}
	ok, err = repo.Complete(ctx, exam.ID, second, 100, nil, time.Now())
	if err != nil {
		t.Fatalf("second complete: %v", err)
	}
	if ok {
		t.Fatal("second complete should report false")
	}

	got, err := repo.FindByID(ctx, exam.ID)
	if err != nil {
		t.Fatalf("find exam: %v", err)
	}
	if got.Status != model.ExamCompleted || got.Score == nil || *got.Score != 50 {
		t.Fatalf("exam after completion = %+v", got)
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not set")
	}
	answers, err := NewAnswerRepository(db).FindByExamID(ctx, exam.ID)
	if err != nil {
		t.Fatalf("find answers: %v", err)
	}
	if len(answers) != 1 || answers[0].QuestionID != qs[0].ID {
		t.Errorf("answers after rejected completion = %+v", answers)
	}
	var mistakes int64
	db.Model(&model.Mistake{}).Count(&mistakes)
	if mistakes != 0 {
		t.Errorf("rejected completion left %d mistakes", mistakes)
	}
}

func TestExamQuestionsKeepDrawOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir, qs := seedQuestions(t, db, 3)
	repo := NewExamRepository(db)

	exam := model.Exam{DirectionID: dir.ID, Mode: model.ExamUntimed, ScoreType: model.ScoreHundred, Status: model.ExamInProgress}
	order := []uint{qs[2].ID, qs[0].ID, qs[1].ID}
	if err := repo.Create(ctx, &exam, order); err != nil {
		t.Fatalf("create exam: %v", err)
	}
	got, err := repo.FindQuestions(ctx, exam.ID)
	if err != nil {
		t.Fatalf("find questions: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}
	for i, q := range got {
		if q.ID != order[i] {
			t.Errorf("position %d: got question %d, want %d", i, q.ID, order[i])
		}
	}
}

func TestCompleteWritesMistakeOnlyForIncorrectAnswers(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir, qs := seedQuestions(t, db, 2)
	exam := startExam(t, db, dir, qs)

	answers := []model.Answer{
		{QuestionID: qs[0].ID, UserAnswer: "A", IsCorrect: true, Score: 100, GradingStatus: model.GradingGraded, AnsweredAt: time.Now()},
		{QuestionID: qs[1].ID, UserAnswer: "B", GradingStatus: model.GradingGraded, AnsweredAt: time.Now()},
	}
	if ok, err := NewExamRepository(db).Complete(ctx, exam.ID, answers, 50, nil, time.Now()); err != nil || !ok {
		t.Fatalf("complete: ok=%v err=%v", ok, err)
	}
	if answers[0].ID == 0 || answers[1].ExamID != exam.ID {
		t.Errorf("answers not stored against the exam: %+v", answers)
	}

	var mistakes []model.Mistake
	db.Find(&mistakes)
	if len(mistakes) != 1 || mistakes[0].AnswerID != answers[1].ID || mistakes[0].QuestionID != qs[1].ID {
		t.Fatalf("unexpected mistakes %+v", mistakes)
	}
}

func TestRandomByDirectionLimitsAndFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir, _ := seedQuestions(t, db, 5)
	repo := NewQuestionRepository(db)

	got, err := repo.RandomByDirection(ctx, dir.ID, 3)
	if err != nil {
		t.Fatalf("random: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("got %d questions, want 3", len(got))
	}

	none, err := repo.RandomByDirection(ctx, dir.ID+100, 3)
	if err != nil {
		t.Fatalf("random other direction: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d questions for an empty direction", len(none))
	}
}

func TestMaterialDeleteRemovesQuestions(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	_, qs := seedQuestions(t, db, 2)

	if err := NewMaterialRepository(db).Delete(ctx, qs[0].MaterialID); err != nil {
		t.Fatalf("delete material: %v", err)
	}
	left, err := NewQuestionRepository(db).Find(ctx, QuestionFilter{})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("%d questions survived material deletion", len(left))
	}
	if err := NewMaterialRepository(db).Delete(ctx, qs[0].MaterialID); err != gorm.ErrRecordNotFound {
		t.Errorf("second delete err = %v, want ErrRecordNotFound", err)
	}
}

func TestMistakeFilterByDirection(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dir, qs := seedQuestions(t, db, 1)
	exam := startExam(t, db, dir, qs)
	answers := []model.Answer{{QuestionID: qs[0].ID, UserAnswer: "B", GradingStatus: model.GradingGraded, AnsweredAt: time.Now()}}
	if _, err := NewExamRepository(db).Complete(ctx, exam.ID, answers, 0, nil, time.Now()); err != nil {
		t.Fatalf("complete exam: %v", err)
	}
	repo := NewMistakeRepository(db)

	got, err := repo.FindAll(ctx, MistakeFilter{DirectionID: &dir.ID})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 1 || got[0].Question.ID != qs[0].ID {
		t.Fatalf("unexpected mistakes %+v", got)
	}
	other := dir.ID + 1
	got, err = repo.FindAll(ctx, MistakeFilter{DirectionID: &other})
	if err != nil {
		t.Fatalf("find other: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d mistakes for another direction", len(got))
	}
	mastered := true
	got, _ = repo.FindAll(ctx, MistakeFilter{Mastered: &mastered})
	if len(got) != 0 {
		t.Errorf("got %d mastered mistakes, want 0", len(got))
	}
}
