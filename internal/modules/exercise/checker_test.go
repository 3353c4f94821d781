package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAnswer(t *testing.T) {
	cases := []struct {
		name      string
		expected  string
		submitted string
		verdict   AnswerVerdict
	}{
		{"exact", "robię", "robię", VerdictCorrect},
		{"case insensitive", "Robię", "robię", VerdictCorrect},
		{"surrounding whitespace", "robię", "  robię  ", VerdictCorrect},
		{"inner whitespace collapsed", "nie ma", "nie   ma", VerdictCorrect},
		{"missing diacritics", "robię", "robie", VerdictAlmost},
		{"diacritics both ways", "zółty", "żółty", VerdictAlmost},
		{"wrong word", "robię", "robisz", VerdictIncorrect},
		{"empty submission", "robię", "", VerdictIncorrect},
		{"whitespace only", "robię", "   ", VerdictIncorrect},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.verdict, CheckAnswer(tc.expected, tc.submitted))
		})
	}
}

func TestValidateType(t *testing.T) {
	assert.Error(t, validateType("matching", nil, "a"))
	assert.NoError(t, validateType("translation", nil, "dom"))
	assert.Error(t, validateType("multiple_choice", []string{"dom"}, "dom"))
	assert.Error(t, validateType("multiple_choice", []string{"dom", "kot"}, "pies"))
	assert.NoError(t, validateType("multiple_choice", []string{"dom", "kot"}, "Dom"))
}
