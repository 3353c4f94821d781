package morphology

import "github.com/lingo-polska/core/internal/models"

// Features is the decomposed attribute record produced by ParseFeatures.
// Attributes absent from the tag string stay at their unspecified zero value.
type Features struct {
	PartOfSpeech models.PartOfSpeech
	Tense        models.Tense
	Person       models.Person
	Mood         models.Mood
	Aspect       models.Aspect
	Voice        models.Voice
	Case         models.Case
	Number       models.Number
	Gender       models.Gender
	Animacy      models.Animacy
	Degree       models.Degree
	Definiteness models.Definiteness
	Polarity     models.Polarity
}

// UnspecifiedKey is the bucket name used when a grouping attribute is absent
// on a row. Grouping never drops rows, so absent attributes get their own
// bucket instead of being skipped.
const UnspecifiedKey = "unspecified"

// FormEntry is one leaf of the grouped inflection structure. Verb leaves
// carry person/number, nominal leaves carry gender, and leaves in the
// ungrouped bucket keep all three.
type FormEntry struct {
	Form   string        `json:"form"`
	Person models.Person `json:"person,omitempty"`
	Number models.Number `json:"number,omitempty"`
	Gender models.Gender `json:"gender,omitempty"`
}

// GroupedInflections is the nested presentation-ready structure:
// verbs are keyed tense → mood, nominals number → case. Key order carries no
// meaning; display ordering belongs to the consumer.
type GroupedInflections map[string]map[string][]FormEntry

// LookupResult is the full payload for one inflection lookup.
type LookupResult struct {
	Lemma        string              `json:"lemma"`
	PartOfSpeech models.PartOfSpeech `json:"partOfSpeech"`
	TotalForms   int                 `json:"totalForms"`
	Inflections  GroupedInflections  `json:"inflections"`
}

// LemmaEntry is one row of the lemma listing.
type LemmaEntry struct {
	Lemma        string              `json:"lemma"`
	PartOfSpeech models.PartOfSpeech `json:"partOfSpeech"`
	FormCount    int64               `json:"formCount"`
}

// ListFilter narrows the lemma listing. Search matches case-insensitively as
// a substring; Limit is bounded by the service.
type ListFilter struct {
	Search       string              `json:"search"        form:"search"`
	PartOfSpeech models.PartOfSpeech `json:"partOfSpeech"  form:"partOfSpeech"`
	Limit        int                 `json:"limit"         form:"limit"`
}

// POSStat aggregates corpus counts for one part of speech.
type POSStat struct {
	PartOfSpeech models.PartOfSpeech `json:"partOfSpeech"`
	TotalForms   int64               `json:"totalForms"`
	UniqueLemmas int64               `json:"uniqueLemmas"`
}

// SearchCriteria is an exact-match filter over any subset of word-form
// attributes. Nil fields do not filter; present fields must hold a known
// enumerated value or the search fails with a ValidationError.
type SearchCriteria struct {
	Lemma         *string `json:"lemma"`
	InflectedForm *string `json:"inflectedForm"`
	PartOfSpeech  *string `json:"partOfSpeech"`
	Tense         *string `json:"tense"`
	Person        *string `json:"person"`
	Mood          *string `json:"mood"`
	Aspect        *string `json:"aspect"`
	Voice         *string `json:"voice"`
	Case          *string `json:"case"`
	Number        *string `json:"number"`
	Gender        *string `json:"gender"`
	Animacy       *string `json:"animacy"`
	Degree        *string `json:"degree"`
	Definiteness  *string `json:"definiteness"`
	Polarity      *string `json:"polarity"`
	Limit         int     `json:"limit"`
}
