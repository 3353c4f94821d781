package models

// VocabularyModel is one curated dictionary entry managed through the admin
// tooling, distinct from the bulk-ingested morphological corpus.
type VocabularyModel struct {
	Base
	Polish       string       `json:"polish"       gorm:"size:191;not null;index"`
	Translation  string       `json:"translation"  gorm:"size:191;not null"`
	PartOfSpeech PartOfSpeech `json:"partOfSpeech" gorm:"size:16;index"`
	Example      string       `json:"example"      gorm:"type:text"`
	Category     string       `json:"category"     gorm:"size:64;index"`
	Level        string       `json:"level"        gorm:"size:8;index"` // CEFR: A1..C2
}

func (VocabularyModel) TableName() string { return "vocabularies" }
