package grading

import "math"

// PassScore is the threshold at or above which a subjective answer counts
// as correct.
const PassScore = 60.0

// LetterGrade converts a 0-100 score into A/B/C/D.
func LetterGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= PassScore:
		return "C"
	default:
		return "D"
	}
}

// Round2 rounds to the two decimals the score columns store.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds a score to [0, 100].
func Clamp(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(FullScore, score))
}

// FinalScore averages per-question scores over the number of submitted
// answers. Submitted answers that could not be graded still count in the
// denominator.
func FinalScore(total float64, submitted int) float64 {
	if submitted <= 0 {
		return 0
	}
	return Round2(total / float64(submitted))
}
