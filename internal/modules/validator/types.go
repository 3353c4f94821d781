package validator

// ValidateDTO is the request body for grammar validation.
type ValidateDTO struct {
	Text string `json:"text" binding:"required"`
}

// Issue is one problem the model found in the submitted text.
type Issue struct {
	Fragment    string `json:"fragment"`
	Explanation string `json:"explanation"`
}

// ValidationResult is the structured verdict for one submission.
type ValidationResult struct {
	Correct    bool    `json:"correct"`
	Issues     []Issue `json:"issues"`
	Suggestion string  `json:"suggestion,omitempty"`
}

type modelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
