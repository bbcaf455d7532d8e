package grading

import "testing"

func TestLetterGrade(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, "A"},
		{90, "A"},
		{89.99, "B"},
		{80, "B"},
		{79.99, "C"},
		{66.67, "C"},
		{60, "C"},
		{59.99, "D"},
		{0, "D"},
	}
	for _, tc := range cases {
		if got := LetterGrade(tc.score); got != tc.want {
			t.Errorf("LetterGrade(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestFinalScore(t *testing.T) {
	if got := FinalScore(200, 3); got != 66.67 {
		t.Errorf("FinalScore(200, 3) = %v, want 66.67", got)
	}
	if got := FinalScore(300, 3); got != 100 {
		t.Errorf("FinalScore(300, 3) = %v, want 100", got)
	}
	if got := FinalScore(0, 0); got != 0 {
		t.Errorf("FinalScore with no answers = %v, want 0", got)
	}
	if got := LetterGrade(FinalScore(200, 3)); got != "C" {
		t.Errorf("grade of {100,0,100} = %q, want C", got)
	}
}

func TestClamp(t *testing.T) {
	cases := map[float64]float64{-5: 0, 0: 0, 55.5: 55.5, 100: 100, 140: 100}
	for in, want := range cases {
		if got := Clamp(in); got != want {
			t.Errorf("Clamp(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestEvaluationCorrect(t *testing.T) {
	if !(Evaluation{Score: 60}).Correct() {
		t.Error("score 60 should pass")
	}
	if (Evaluation{Score: 59.5}).Correct() {
		t.Error("score 59.5 should not pass")
	}
	f := Failed("unavailable")
	if f.Score != 0 || f.Correct() || f.Feedback == "" || f.Status != "oracle_failed" {
		t.Errorf("unexpected failed evaluation %+v", f)
	}
}
