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

const (
	keyPointsReply = `[{"point":"goroutine","description":"轻量线程","importance":5},{"point":"channel","description":"通信","importance":"9"}]`
	questionsReply = "```json\n" + `[
  {"type":"single_choice","difficulty":2,"content":"What starts a goroutine?","options":["go","run","spawn","async"],"answer":"A","explanation":"go keyword"},
  {"type":"essay","difficulty":9,"content":"Explain channels","answer":"typed conduits"},
  {"type":"true_false","content":"   ","answer":"正确"}
]` + "\n```"
)

func newMaterialFixture(t *testing.T, llm *scriptedLLM) (*gorm.DB, MaterialService, model.Direction) {
	t.Helper()
	db := newTestDB(t)
	dirRepo := repository.NewDirectionRepository(db)
	dir := model.Direction{Name: "Go"}
	if err := dirRepo.Create(context.Background(), &dir); err != nil {
		t.Fatalf("create direction: %v", err)
	}
	svc := NewMaterialService(
		repository.NewMaterialRepository(db),
		repository.NewQuestionRepository(db),
		dirRepo,
		NewAIService(llm),
	)
	return db, svc, dir
}

func TestCreateMaterialGeneratesQuestions(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{
		{marker: markKeyPoints, reply: keyPointsReply},
		{marker: markQuestions, reply: questionsReply},
	}}
	db, svc, dir := newMaterialFixture(t, llm)

	m, err := svc.CreateMaterial(context.Background(), dto.MaterialCreateDTO{DirectionID: dir.ID, Title: "Concurrency", Content: "goroutines and channels"})
	if err != nil {
		t.Fatalf("CreateMaterial: %v", err)
	}
	if m.Status != model.MaterialProcessed {
		t.Fatalf("status = %q, want processed", m.Status)
	}
	if len(m.KeyPoints) != 2 || m.KeyPoints[1].Importance != 5 {
		t.Errorf("unexpected key points %+v", m.KeyPoints)
	}

	var qs []model.Question
	db.Order("id").Find(&qs)
	if len(qs) != 2 {
		t.Fatalf("stored %d questions, want 2 (blank content skipped)", len(qs))
	}
	if qs[1].Type != model.QuestionSingleChoice || qs[1].Difficulty != 5 {
		t.Errorf("unknown type not normalised: %+v", qs[1])
	}
	if qs[0].Answer != "A" || len(qs[0].Options) != 4 {
		t.Errorf("unexpected first question %+v", qs[0])
	}
}

func TestCreateMaterialOracleErrorMarksFailed(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{{marker: markKeyPoints, err: errors.New("quota exceeded")}}}
	db, svc, dir := newMaterialFixture(t, llm)

	m, err := svc.CreateMaterial(context.Background(), dto.MaterialCreateDTO{DirectionID: dir.ID, Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("CreateMaterial should not fail: %v", err)
	}
	if m.Status != model.MaterialFailed {
		t.Errorf("status = %q, want failed", m.Status)
	}
	var stored model.Material
	db.First(&stored, m.ID)
	if stored.Status != model.MaterialFailed {
		t.Errorf("stored status = %q, want failed", stored.Status)
	}
}

func TestCreateMaterialRequiresOracleAndDirection(t *testing.T) {
	_, svc, dir := newMaterialFixture(t, &scriptedLLM{unavailable: true})
	ctx := context.Background()

	if _, err := svc.CreateMaterial(ctx, dto.MaterialCreateDTO{DirectionID: dir.ID, Title: "t", Content: "c"}); !errors.Is(err, ErrAIUnavailable) {
		t.Errorf("no oracle: err = %v", err)
	}
	if _, err := svc.CreateMaterial(ctx, dto.MaterialCreateDTO{DirectionID: 77, Title: "t", Content: "c"}); !errors.Is(err, ErrDirectionNotFound) {
		t.Errorf("missing direction: err = %v", err)
	}
}

func TestStreamProgressReportsSteps(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{
		{marker: markKeyPoints, reply: keyPointsReply},
		{marker: markQuestions, reply: questionsReply},
	}}
	db, svc, dir := newMaterialFixture(t, llm)
	ctx := context.Background()

	pending := model.Material{DirectionID: dir.ID, Title: "t", Content: "c", Status: model.MaterialPending}
	if err := repository.NewMaterialRepository(db).Create(ctx, &pending); err != nil {
		t.Fatalf("create material: %v", err)
	}

	var events []dto.ProgressEvent
	if err := svc.StreamProgress(ctx, pending.ID, func(ev dto.ProgressEvent) { events = append(events, ev) }); err != nil {
		t.Fatalf("StreamProgress: %v", err)
	}
	if len(events) < 6 {
		t.Fatalf("got %d events", len(events))
	}
	if events[0].Step != "extracting" || events[0].Progress != 10 {
		t.Errorf("first event %+v", events[0])
	}
	last := events[len(events)-1]
	if last.Step != "completed" || last.Progress != 100 || last.MaterialID != pending.ID {
		t.Errorf("last event %+v", last)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Progress < events[i-1].Progress {
			t.Errorf("progress went backwards at %d: %+v", i, events)
		}
	}

	// A processed material reports completion without calling the oracle again.
	calls := len(llm.prompts)
	events = nil
	if err := svc.StreamProgress(ctx, pending.ID, func(ev dto.ProgressEvent) { events = append(events, ev) }); err != nil {
		t.Fatalf("second StreamProgress: %v", err)
	}
	if len(events) != 1 || events[0].Step != "completed" || len(llm.prompts) != calls {
		t.Errorf("reprocessed a finished material: %+v", events)
	}

	if err := svc.StreamProgress(ctx, 999, func(dto.ProgressEvent) {}); !errors.Is(err, ErrMaterialNotFound) {
		t.Errorf("missing material: err = %v", err)
	}
}

func TestStreamProgressErrorEvent(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{
		{marker: markKeyPoints, reply: keyPointsReply},
		{marker: markQuestions, err: errors.New("timeout")},
	}}
	db, svc, dir := newMaterialFixture(t, llm)
	ctx := context.Background()
	pending := model.Material{DirectionID: dir.ID, Title: "t", Content: "c", Status: model.MaterialPending}
	if err := repository.NewMaterialRepository(db).Create(ctx, &pending); err != nil {
		t.Fatalf("create material: %v", err)
	}

	var last dto.ProgressEvent
	if err := svc.StreamProgress(ctx, pending.ID, func(ev dto.ProgressEvent) { last = ev }); err != nil {
		t.Fatalf("StreamProgress: %v", err)
	}
	if last.Step != "error" || last.Progress != 0 {
		t.Errorf("last event %+v, want error", last)
	}
}

func TestStreamProgressSkipsClaimedMaterial(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{
		{marker: markKeyPoints, reply: keyPointsReply},
		{marker: markQuestions, reply: questionsReply},
	}}
	db, svc, dir := newMaterialFixture(t, llm)
	ctx := context.Background()
	materialRepo := repository.NewMaterialRepository(db)
	pending := model.Material{DirectionID: dir.ID, Title: "t", Content: "c", Status: model.MaterialPending}
	if err := materialRepo.Create(ctx, &pending); err != nil {
		t.Fatalf("create material: %v", err)
	}

	// Another connection got there first.
	if ok, err := materialRepo.ClaimPending(ctx, pending.ID); err != nil || !ok {
		t.Fatalf("claim: ok=%v err=%v", ok, err)
	}
	if ok, _ := materialRepo.ClaimPending(ctx, pending.ID); ok {
		t.Fatal("material claimed twice")
	}

	var events []dto.ProgressEvent
	if err := svc.StreamProgress(ctx, pending.ID, func(ev dto.ProgressEvent) { events = append(events, ev) }); err != nil {
		t.Fatalf("StreamProgress: %v", err)
	}
	if len(events) != 1 || events[0].Step != "processing" || events[0].MaterialID != pending.ID {
		t.Errorf("unexpected events %+v", events)
	}
	if len(llm.prompts) != 0 {
		t.Errorf("oracle called %d times for a claimed material", len(llm.prompts))
	}
	var questions int64
	db.Model(&model.Question{}).Count(&questions)
	if questions != 0 {
		t.Errorf("generated %d questions for a claimed material", questions)
	}
}
