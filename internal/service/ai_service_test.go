package service

import (
	"context"
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"score": 80}`, `{"score": 80}`},
		{"json fence", "```json\n{\"score\": 80}\n```", `{"score": 80}`},
		{"bare fence", "```\n[1, 2]\n```", `[1, 2]`},
		{"prose around", "好的，结果如下：\n{\"a\": 1}\n希望有帮助", `{"a": 1}`},
		{"array", "here: [{\"a\":1}] done", `[{"a":1}]`},
		{"nothing", "no json here", "no json here"},
	}
	for _, tc := range cases {
		if got := extractJSON(tc.in); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateAnswerParsesLooseReply(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{{
		marker: markEvaluate,
		reply:  "```json\n{\"score\": \"85\", \"feedback\": \"不错\", \"key_points_hit\": \"并发\", \"key_points_missed\": []}\n```",
	}}}
	eval, err := NewAIService(llm).EvaluateAnswer(context.Background(), "q", "a", "u", "short_answer")
	if err != nil {
		t.Fatalf("EvaluateAnswer: %v", err)
	}
	if eval.Score != 85 || eval.Feedback != "不错" {
		t.Errorf("unexpected evaluation %+v", eval)
	}
	if len(eval.KeyPointsHit) != 1 || eval.KeyPointsHit[0] != "并发" {
		t.Errorf("key points hit = %v", eval.KeyPointsHit)
	}
}

func TestEvaluateAnswerUnparsable(t *testing.T) {
	for _, reply := range []string{"I cannot grade this", `{"feedback": "no score"}`} {
		llm := &scriptedLLM{rules: []llmRule{{marker: markEvaluate, reply: reply}}}
		_, err := NewAIService(llm).EvaluateAnswer(context.Background(), "q", "a", "u", "short_answer")
		if !errors.Is(err, ErrOracleUnparsable) {
			t.Errorf("reply %q: err = %v, want ErrOracleUnparsable", reply, err)
		}
	}
}

func TestExtractKeyPointsFallsBackToPlaceholder(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{{marker: markKeyPoints, reply: "sorry"}}}
	points, err := NewAIService(llm).ExtractKeyPoints(context.Background(), "content", "Go")
	if err != nil {
		t.Fatalf("ExtractKeyPoints: %v", err)
	}
	if len(points) != 1 || points[0].Point != keyPointFallbackName || points[0].Description != "sorry" {
		t.Errorf("unexpected placeholder %+v", points)
	}
}

func TestGenerateQuestionsJoinsListAnswers(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{{
		marker: markQuestions,
		reply:  `[{"type":"multi_choice","difficulty":"4","content":"pick","options":["a","b","c","d"],"answer":["A","C"]}]`,
	}}}
	qs, err := NewAIService(llm).GenerateQuestions(context.Background(), nil, "Go", nil)
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(qs) != 1 || string(qs[0].Answer) != "A,C" || qs[0].Difficulty != 4 {
		t.Errorf("unexpected questions %+v", qs)
	}
}

func TestExtractKnowledgeFallback(t *testing.T) {
	llm := &scriptedLLM{rules: []llmRule{{marker: markKnowledge, reply: "garbage"}}}
	res, err := NewAIService(llm).ExtractKnowledge(context.Background(), "text")
	if err != nil {
		t.Fatalf("ExtractKnowledge: %v", err)
	}
	if res.Summary != knowledgeFallbackSummary || len(res.KnowledgePoints) != 0 {
		t.Errorf("unexpected fallback %+v", res)
	}
}

func TestOracleErrorPropagates(t *testing.T) {
	boom := errors.New("timeout")
	llm := &scriptedLLM{rules: []llmRule{{marker: markKnowledge, err: boom}}}
	if _, err := NewAIService(llm).ExtractKnowledge(context.Background(), "text"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
