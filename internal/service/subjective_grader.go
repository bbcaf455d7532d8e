package service

import (
	"context"
	"errors"

	"github.com/lshigami/Studynest/internal/grading"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/rs/zerolog/log"
)

// Feedback stored on answers the oracle could not grade.
const (
	feedbackUnparsable  = "AI 评分结果无法解析，本题暂记 0 分，请稍后重试。"
	feedbackUnavailable = "AI 评分服务暂不可用，本题暂记 0 分，请稍后重试。"
)

// SubjectiveGrader scores open-ended answers through a ScoringOracle. It
// never fails: oracle problems turn into a zero score with explanatory
// feedback and the oracle_failed status.
type SubjectiveGrader struct {
	oracle ScoringOracle
}

func NewSubjectiveGrader(oracle ScoringOracle) *SubjectiveGrader {
	return &SubjectiveGrader{oracle: oracle}
}

func (g *SubjectiveGrader) Evaluate(ctx context.Context, content, canonical, userAnswer, typeLabel string) grading.Evaluation {
	eval, err := g.oracle.EvaluateAnswer(ctx, content, canonical, userAnswer, typeLabel)
	switch {
	case errors.Is(err, ErrOracleUnparsable):
		log.Warn().Err(err).Str("type", typeLabel).Msg("SubjectiveGrader: oracle reply unparsable, scoring 0")
		return grading.Failed(feedbackUnparsable)
	case err != nil:
		log.Error().Err(err).Str("type", typeLabel).Msg("SubjectiveGrader: oracle unavailable, scoring 0")
		return grading.Failed(feedbackUnavailable)
	case eval == nil:
		return grading.Failed(feedbackUnparsable)
	}

	out := *eval
	out.Score = grading.Round2(grading.Clamp(out.Score))
	out.Status = model.GradingGraded
	return out
}
