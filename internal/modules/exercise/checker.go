package exercise

import "strings"

// diacriticFolding maps Polish letters to their ASCII skeletons. Used only in
// lenient comparison; a correct answer typed without ogonki still counts, with
// the caveat surfaced in the result.
var diacriticFolding = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n",
	"ó", "o", "ś", "s", "ź", "z", "ż", "z",
)

// AnswerVerdict classifies a submitted answer.
type AnswerVerdict string

const (
	VerdictCorrect AnswerVerdict = "correct"
	// VerdictAlmost means the answer matches after diacritic folding.
	VerdictAlmost    AnswerVerdict = "almost"
	VerdictIncorrect AnswerVerdict = "incorrect"
)

// CheckAnswer compares a submission against the expected answer. Comparison is
// case-insensitive and whitespace-normalized; a diacritic-folded match is
// reported separately so the client can nudge the learner about spelling.
func CheckAnswer(expected, submitted string) AnswerVerdict {
	want := normalizeAnswer(expected)
	got := normalizeAnswer(submitted)
	if got == "" {
		return VerdictIncorrect
	}
	if got == want {
		return VerdictCorrect
	}
	if diacriticFolding.Replace(got) == diacriticFolding.Replace(want) {
		return VerdictAlmost
	}
	return VerdictIncorrect
}

func normalizeAnswer(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(s), " ")
}
