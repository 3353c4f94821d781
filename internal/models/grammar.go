package models

// GrammarTopicModel is one reference-grammar article, authored in markdown and
// rendered to HTML on read.
type GrammarTopicModel struct {
	Base
	Title    string `json:"title"    gorm:"not null"`
	Slug     string `json:"slug"     gorm:"uniqueIndex;not null"`
	Category string `json:"category" gorm:"size:64;index"` // e.g. "cases", "verbs", "pronunciation"
	Level    string `json:"level"    gorm:"size:8;index"`
	Text     string `json:"text"     gorm:"type:longtext"`
	Order    int    `json:"order"    gorm:"default:0"`
}

func (GrammarTopicModel) TableName() string { return "grammar_topics" }
