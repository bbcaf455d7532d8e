package grading

import "github.com/lshigami/Studynest/internal/model"

// Evaluation is the outcome of grading one open-ended answer.
type Evaluation struct {
	Score           float64  `json:"score"`
	Feedback        string   `json:"feedback"`
	KeyPointsHit    []string `json:"key_points_hit,omitempty"`
	KeyPointsMissed []string `json:"key_points_missed,omitempty"`
	Status          string   `json:"-"` // model.GradingGraded or model.GradingOracleFailed
}

// Correct reports whether the evaluation reaches PassScore.
func (e Evaluation) Correct() bool {
	return e.Score >= PassScore
}

// Failed builds the zero-score evaluation used when the oracle could not
// grade the answer.
func Failed(feedback string) Evaluation {
	return Evaluation{Score: 0, Feedback: feedback, Status: model.GradingOracleFailed}
}
