package grading

import "strings"

// optionLetters are the answer letters mapped onto option indexes.
const optionLetters = "ABCDEFGH"

// letterSeparators may follow an option letter, as in "A." or "B：".
const letterSeparators = ".、．:："

// ResolveOption maps a raw answer onto the text of the option it refers to.
// The answer is trimmed first; then, in order:
//
//   - an answer equal to an option's trimmed text resolves to that text;
//   - a single letter A-H (any case) resolves to the option at that index;
//   - a letter A-H followed by a separator (". 、 ． : ：") and anything else
//     resolves the same way;
//   - everything else resolves to the trimmed answer.
//
// Letters beyond the end of options fall through to the trimmed answer.
func ResolveOption(raw string, options []string) string {
	answer := strings.TrimSpace(raw)
	if len(options) == 0 {
		return answer
	}

	for _, opt := range options {
		if answer == strings.TrimSpace(opt) {
			return strings.TrimSpace(opt)
		}
	}

	runes := []rune(answer)
	if len(runes) == 1 {
		if idx, ok := letterIndex(runes[0]); ok && idx < len(options) {
			return strings.TrimSpace(options[idx])
		}
	}

	if len(runes) >= 2 && strings.ContainsRune(letterSeparators, runes[1]) {
		if idx, ok := letterIndex(runes[0]); ok && idx < len(options) {
			return strings.TrimSpace(options[idx])
		}
	}

	return answer
}

func letterIndex(r rune) (int, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	idx := strings.IndexRune(optionLetters, r)
	return idx, idx >= 0
}
