package grading

import (
	"strings"

	"github.com/lshigami/Studynest/internal/model"
)

// FullScore is awarded for a correct objective answer.
const FullScore = 100.0

// GradeObjective compares a user answer with the canonical answer of a
// single-choice, multi-choice or true/false question. Both sides go
// through ResolveOption, so "B", "b." and the option text are equivalent.
// Multi-choice answers are compared as sets of comma-separated parts.
func GradeObjective(q *model.Question, userAnswer string) (bool, float64) {
	var correct bool
	if q.Type == model.QuestionMultiChoice {
		correct = sameSet(resolveParts(userAnswer, q.Options), resolveParts(q.Answer, q.Options))
	} else {
		correct = ResolveOption(userAnswer, q.Options) == ResolveOption(q.Answer, q.Options)
	}
	if correct {
		return true, FullScore
	}
	return false, 0
}

func resolveParts(answer string, options []string) map[string]struct{} {
	parts := make(map[string]struct{})
	for _, p := range strings.Split(answer, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		parts[ResolveOption(p, options)] = struct{}{}
	}
	return parts
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
