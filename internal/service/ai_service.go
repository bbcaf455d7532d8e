package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/Studynest/internal/grading"
	"github.com/lshigami/Studynest/internal/metrics"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/rs/zerolog/log"
)

// ScoringOracle grades one open-ended answer against its key points.
type ScoringOracle interface {
	EvaluateAnswer(ctx context.Context, question, canonical, userAnswer, typeLabel string) (*grading.Evaluation, error)
}

// QuestionGenerator turns study material into key points and questions.
type QuestionGenerator interface {
	Available() bool
	ExtractKeyPoints(ctx context.Context, content, direction string) ([]model.KeyPoint, error)
	GenerateQuestions(ctx context.Context, keyPoints []model.KeyPoint, direction string, types []string) ([]GeneratedQuestion, error)
}

// KnowledgeExtractor summarises free text into knowledge points and best
// practices.
type KnowledgeExtractor interface {
	ExtractKnowledge(ctx context.Context, rawText string) (*KnowledgeResult, error)
}

// GeneratedQuestion is a question as the oracle proposes it, before it is
// normalised and stored.
type GeneratedQuestion struct {
	Type           string     `json:"type"`
	Difficulty     flexInt    `json:"difficulty"`
	Content        string     `json:"content"`
	Options        []string   `json:"options"`
	Answer         flexAnswer `json:"answer"`
	Explanation    string     `json:"explanation"`
	KnowledgePoint string     `json:"knowledge_point"`
}

type KnowledgeResult struct {
	Summary         string `json:"summary"`
	KnowledgePoints []struct {
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Importance  flexInt `json:"importance"`
		Category    string  `json:"category"`
	} `json:"knowledge_points"`
	BestPractices []struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Scenario string `json:"scenario"`
		Notes    string `json:"notes"`
	} `json:"best_practices"`
}

const (
	keyPointTemperature  = 0.3
	questionTemperature  = 0.5
	evaluateTemperature  = 0.3
	knowledgeTemperature = 0.3
)

// Texts stored when the oracle reply cannot be parsed.
const (
	keyPointFallbackName     = "知识点提取失败"
	knowledgeFallbackSummary = "内容解析失败，请重试。"
)

// DefaultQuestionTypes are requested when the caller does not narrow them.
var DefaultQuestionTypes = []string{
	model.QuestionSingleChoice,
	model.QuestionMultiChoice,
	model.QuestionTrueFalse,
	model.QuestionShortAnswer,
}

// AIService builds the study prompts on top of an LLMClient.
type AIService struct {
	llm LLMClient
}

func NewAIService(llm LLMClient) *AIService {
	return &AIService{llm: llm}
}

func (s *AIService) Available() bool {
	return s.llm.Available()
}

func (s *AIService) chat(ctx context.Context, operation, prompt string, temperature float32) (string, error) {
	out, err := s.llm.Chat(ctx, prompt, temperature)
	if err != nil {
		metrics.OracleCalls.WithLabelValues(operation, "error").Inc()
		return "", err
	}
	metrics.OracleCalls.WithLabelValues(operation, "ok").Inc()
	return out, nil
}

// ExtractKeyPoints asks for 5-10 core concepts. An unparsable reply becomes
// a single placeholder point that carries the raw reply.
func (s *AIService) ExtractKeyPoints(ctx context.Context, content, direction string) ([]model.KeyPoint, error) {
	prompt := fmt.Sprintf(`你是一位专业的%s领域教师。请从以下学习资料中提炼5-10个核心知识点。

学习资料：
%s

请以JSON数组格式返回，每个知识点包含：
- point: 知识点名称
- description: 简要描述
- importance: 重要程度(1-5)

只返回JSON数组，不要其他内容。`, direction, content)

	raw, err := s.chat(ctx, "extract_key_points", prompt, keyPointTemperature)
	if err != nil {
		return nil, err
	}

	var parsed []struct {
		Point       string  `json:"point"`
		Description string  `json:"description"`
		Importance  flexInt `json:"importance"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		metrics.OracleCalls.WithLabelValues("extract_key_points", "unparsable").Inc()
		log.Warn().Err(err).Msg("ExtractKeyPoints: unparsable oracle reply, storing placeholder")
		return []model.KeyPoint{{Point: keyPointFallbackName, Description: raw, Importance: 3}}, nil
	}
	points := make([]model.KeyPoint, 0, len(parsed))
	for _, p := range parsed {
		points = append(points, model.KeyPoint{Point: p.Point, Description: p.Description, Importance: clampInt(int(p.Importance), 1, 5, 3)})
	}
	return points, nil
}

// GenerateQuestions asks for one or two questions per key point. An
// unparsable reply yields no questions.
func (s *AIService) GenerateQuestions(ctx context.Context, keyPoints []model.KeyPoint, direction string, types []string) ([]GeneratedQuestion, error) {
	if len(types) == 0 {
		types = DefaultQuestionTypes
	}
	lines := make([]string, 0, len(keyPoints))
	for _, p := range keyPoints {
		lines = append(lines, fmt.Sprintf("- %s: %s", p.Point, p.Description))
	}

	prompt := fmt.Sprintf(`你是一位专业的%s领域出题教师。请基于以下知识点生成测试题目。

知识点：
%s

要求：
1. 为每个知识点生成1-2道题目
2. 题型包括：%s
3. 难度分布均匀(1-5)
4. 选择题需要4个选项

请以JSON数组格式返回，每道题包含：
- type: 题型(single_choice/multi_choice/true_false/short_answer)
- difficulty: 难度(1-5)
- content: 题目内容
- options: 选项数组(选择题必填，判断题为["正确","错误"])
- answer: 标准答案(选择题为正确选项，判断题为"正确"或"错误"，简答题为答案要点)
- explanation: 答案解析
- knowledge_point: 对应的知识点

只返回JSON数组，不要其他内容。`, direction, strings.Join(lines, "\n"), strings.Join(types, ", "))

	raw, err := s.chat(ctx, "generate_questions", prompt, questionTemperature)
	if err != nil {
		return nil, err
	}
	var questions []GeneratedQuestion
	if err := json.Unmarshal([]byte(extractJSON(raw)), &questions); err != nil {
		metrics.OracleCalls.WithLabelValues("generate_questions", "unparsable").Inc()
		log.Warn().Err(err).Msg("GenerateQuestions: unparsable oracle reply, no questions generated")
		return []GeneratedQuestion{}, nil
	}
	return questions, nil
}

// EvaluateAnswer asks the oracle to score an open-ended answer from 0 to
// 100. It returns ErrOracleUnparsable when the reply is not the requested
// JSON object.
func (s *AIService) EvaluateAnswer(ctx context.Context, question, canonical, userAnswer, typeLabel string) (*grading.Evaluation, error) {
	prompt := fmt.Sprintf(`你是一位专业的阅卷教师。请评估学生的答案。

题目：%s

标准答案要点：%s

学生答案：%s

请以JSON格式返回评分结果：
- score: 得分(0-100)
- feedback: 评语(指出答案的优点和不足)
- key_points_hit: 命中的要点
- key_points_missed: 遗漏的要点

只返回JSON对象，不要其他内容。`, question, canonical, userAnswer)

	raw, err := s.chat(ctx, "evaluate_answer", prompt, evaluateTemperature)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Score           *flexFloat  `json:"score"`
		Feedback        string      `json:"feedback"`
		KeyPointsHit    flexStrings `json:"key_points_hit"`
		KeyPointsMissed flexStrings `json:"key_points_missed"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil || parsed.Score == nil {
		metrics.OracleCalls.WithLabelValues("evaluate_answer", "unparsable").Inc()
		log.Warn().Err(err).Str("type", typeLabel).Msg("EvaluateAnswer: unparsable oracle reply")
		return nil, fmt.Errorf("%w: %s", ErrOracleUnparsable, truncate(raw, 200))
	}
	return &grading.Evaluation{
		Score:           float64(*parsed.Score),
		Feedback:        parsed.Feedback,
		KeyPointsHit:    parsed.KeyPointsHit,
		KeyPointsMissed: parsed.KeyPointsMissed,
		Status:          model.GradingGraded,
	}, nil
}

// ExtractKnowledge asks for a summary, knowledge points and best practices.
// An unparsable reply yields the empty default structure.
func (s *AIService) ExtractKnowledge(ctx context.Context, rawText string) (*KnowledgeResult, error) {
	prompt := fmt.Sprintf(`你是一位专业的知识管理专家。请对以下内容进行深度分析，提炼核心知识点并总结最佳实践。

【内容】：
%s

【任务要求】：
1. 提炼 5-10 个核心知识点，每个知识点包含：
   - name: 知识点名称（简洁明了）
   - description: 详细描述（100-200字）
   - importance: 重要程度（1-5，5最重要）
   - category: 分类标签（如"技术原理"、"工具使用"、"设计模式"、"方法论"等）

2. 总结 3-8 条最佳实践建议，每条包含：
   - title: 实践标题（简洁明了）
   - content: 具体内容（详细描述该实践的做法）
   - scenario: 适用场景（在什么情况下应该使用）
   - notes: 注意事项（需要避免的坑或特别提醒）

3. 生成一段内容摘要（100-200字，概括核心要点）

【输出格式】：
请严格以JSON格式返回，结构如下：
{
  "summary": "内容摘要...",
  "knowledge_points": [
    {"name": "...", "description": "...", "importance": 5, "category": "..."}
  ],
  "best_practices": [
    {"title": "...", "content": "...", "scenario": "...", "notes": "..."}
  ]
}

只返回JSON，不要其他内容。`, rawText)

	raw, err := s.chat(ctx, "extract_knowledge", prompt, knowledgeTemperature)
	if err != nil {
		return nil, err
	}
	var result KnowledgeResult
	if err := json.Unmarshal([]byte(extractJSON(raw)), &result); err != nil {
		metrics.OracleCalls.WithLabelValues("extract_knowledge", "unparsable").Inc()
		log.Error().Err(err).Str("raw", truncate(raw, 500)).Msg("ExtractKnowledge: unparsable oracle reply")
		return &KnowledgeResult{Summary: knowledgeFallbackSummary}, nil
	}
	return &result, nil
}

func clampInt(v, lo, hi, fallback int) int {
	if v == 0 {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
