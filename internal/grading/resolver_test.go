package grading

import "testing"

func TestResolveOption(t *testing.T) {
	capitals := []string{"Paris", "London", "Rome", "Berlin"}
	cases := []struct {
		name    string
		raw     string
		options []string
		want    string
	}{
		{"letter", "B", capitals, "London"},
		{"lowercase letter", "c", capitals, "Rome"},
		{"padded letter", "  D ", capitals, "Berlin"},
		{"exact option text", "Rome", capitals, "Rome"},
		{"option text is trimmed", "Paris", []string{" Paris ", "London"}, "Paris"},
		{"letter with dot", "A.", capitals, "Paris"},
		{"letter with dot and text", "B. London", capitals, "London"},
		{"letter with ideographic comma", "C、Rome", capitals, "Rome"},
		{"letter with fullwidth stop", "D．", capitals, "Berlin"},
		{"letter with colon", "a:", capitals, "Paris"},
		{"letter with fullwidth colon", "B：伦敦", capitals, "London"},
		{"letter out of range", "E", capitals, "E"},
		{"letter past H", "I", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, "I"},
		{"H maps to eighth option", "H", []string{"1", "2", "3", "4", "5", "6", "7", "8"}, "8"},
		{"free text", "Madrid", capitals, "Madrid"},
		{"no options", "  B ", nil, "B"},
		{"empty answer", "   ", capitals, ""},
		{"letter followed by other char", "Ab", capitals, "Ab"},
		{"chinese option text", "正确", []string{"正确", "错误"}, "正确"},
		{"letter onto chinese option", "B", []string{"正确", "错误"}, "错误"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveOption(tc.raw, tc.options); got != tc.want {
				t.Errorf("ResolveOption(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestResolveOptionPrefersExactTextOverLetter(t *testing.T) {
	// "A" is both an option text and a letter; the text match wins.
	opts := []string{"B", "A"}
	if got := ResolveOption("A", opts); got != "A" {
		t.Fatalf("got %q, want %q", got, "A")
	}
}
