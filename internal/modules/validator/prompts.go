package validator

import "fmt"

const validationSystemPrompt = `You are a Polish language teacher reviewing a learner's writing.
Check the text for grammar, spelling, and word-choice mistakes.
Respond with a single JSON object and nothing else, using this shape:
{"correct": bool, "issues": [{"fragment": "...", "explanation": "..."}], "suggestion": "..."}
"correct" is true only when the text has no mistakes. "issues" lists each
mistake with the offending fragment and a short English explanation.
"suggestion" is the corrected text, or empty when the text is already correct.`

func buildValidationPrompt(text string) string {
	return fmt.Sprintf("Review this Polish text:\n\n%s", text)
}
