package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/Studynest/internal/grading"
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

// scriptedLLM answers by the first rule whose marker appears in the prompt.
type scriptedLLM struct {
	mu          sync.Mutex
	rules       []llmRule
	unavailable bool
	prompts     []string
}

type llmRule struct {
	marker string
	reply  string
	err    error
}

func (l *scriptedLLM) Chat(_ context.Context, prompt string, _ float32) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.prompts = append(l.prompts, prompt)
	for _, r := range l.rules {
		if strings.Contains(prompt, r.marker) {
			return r.reply, r.err
		}
	}
	return "", nil
}

func (l *scriptedLLM) Available() bool { return !l.unavailable }

// Prompt markers, one per AIService capability.
const (
	markKeyPoints = "提炼5-10个核心知识点"
	markQuestions = "出题教师"
	markEvaluate  = "阅卷教师"
	markKnowledge = "深度分析"
)

type fakeOracle struct {
	eval  *grading.Evaluation
	err   error
	calls int
}

func (o *fakeOracle) EvaluateAnswer(context.Context, string, string, string, string) (*grading.Evaluation, error) {
	o.calls++
	if o.err != nil {
		return nil, o.err
	}
	if o.eval == nil {
		return nil, nil
	}
	e := *o.eval
	return &e, nil
}
