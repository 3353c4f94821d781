package models

// Exercise types supported by the practice engine.
const (
	ExerciseMultipleChoice = "multiple_choice"
	ExerciseFillBlank      = "fill_blank"
	ExerciseTranslation    = "translation"
)

// ExerciseModel is a server-stored practice question. Choices is only used by
// multiple-choice exercises; the other types compare free-text answers.
type ExerciseModel struct {
	Base
	Type        string     `json:"type"        gorm:"size:32;not null;index"`
	Topic       string     `json:"topic"       gorm:"size:64;index"`
	Level       string     `json:"level"       gorm:"size:8;index"`
	Prompt      string     `json:"prompt"      gorm:"type:text;not null"`
	Choices     StringList `json:"choices"     gorm:"type:text"`
	Answer      string     `json:"answer"      gorm:"size:255;not null"`
	Explanation string     `json:"explanation" gorm:"type:text"`
}

func (ExerciseModel) TableName() string { return "exercises" }
