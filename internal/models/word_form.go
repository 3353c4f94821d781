package models

// PartOfSpeech is the coarse word category derived from the raw feature tags.
type PartOfSpeech string

const (
	POSVerb      PartOfSpeech = "VERB"
	POSNoun      PartOfSpeech = "NOUN"
	POSAdjective PartOfSpeech = "ADJECTIVE"
	POSOther     PartOfSpeech = "OTHER"
)

// Decomposed grammatical attributes. The empty string is the explicit
// "unspecified" variant for every attribute: a feature tag string simply did
// not carry that dimension for the form.
type (
	Tense        string
	Person       string
	Mood         string
	Aspect       string
	Voice        string
	Case         string
	Number       string
	Gender       string
	Animacy      string
	Degree       string
	Definiteness string
	Polarity     string
)

const (
	TenseUnspecified Tense = ""
	TensePast        Tense = "past"
	TensePresent     Tense = "present"
	TenseFuture      Tense = "future"

	PersonUnspecified Person = ""
	PersonFirst       Person = "first"
	PersonSecond      Person = "second"
	PersonThird       Person = "third"

	MoodUnspecified Mood = ""
	MoodIndicative  Mood = "indicative"
	MoodImperative  Mood = "imperative"
	MoodConditional Mood = "conditional"
	MoodSubjunctive Mood = "subjunctive"

	AspectUnspecified  Aspect = ""
	AspectPerfective   Aspect = "perfective"
	AspectImperfective Aspect = "imperfective"

	VoiceUnspecified Voice = ""
	VoiceActive      Voice = "active"
	VoicePassive     Voice = "passive"

	CaseUnspecified  Case = ""
	CaseNominative   Case = "nominative"
	CaseGenitive     Case = "genitive"
	CaseDative       Case = "dative"
	CaseAccusative   Case = "accusative"
	CaseInstrumental Case = "instrumental"
	CaseLocative     Case = "locative"
	CaseVocative     Case = "vocative"

	NumberUnspecified Number = ""
	NumberSingular    Number = "singular"
	NumberPlural      Number = "plural"

	GenderUnspecified Gender = ""
	GenderMasculine   Gender = "masculine"
	GenderFeminine    Gender = "feminine"
	GenderNeuter      Gender = "neuter"

	AnimacyUnspecified Animacy = ""
	AnimacyAnimate     Animacy = "animate"
	AnimacyInanimate   Animacy = "inanimate"
	AnimacyHuman       Animacy = "human"

	DegreeUnspecified Degree = ""
	DegreePositive    Degree = "positive"
	DegreeComparative Degree = "comparative"
	DegreeSuperlative Degree = "superlative"

	DefinitenessUnspecified Definiteness = ""
	DefinitenessDefinite    Definiteness = "definite"
	DefinitenessIndefinite  Definiteness = "indefinite"

	PolarityUnspecified Polarity = ""
	PolarityPositive    Polarity = "positive"
	PolarityNegative    Polarity = "negative"
)

// WordFormModel is one inflected surface form of a lemma, ingested once from
// the offline morphological corpus and read-only afterwards. The table holds
// tens of millions of rows, so it deliberately skips the UUID Base: a plain
// auto-increment key and no soft delete keep rows and indexes compact.
//
// (lemma, inflected_form, part_of_speech) is unique; ingestion relies on it
// to collapse duplicate corpus lines.
type WordFormModel struct {
	ID            uint64       `json:"-"             gorm:"primaryKey;autoIncrement"`
	Lemma         string       `json:"lemma"         gorm:"size:191;not null;uniqueIndex:uniq_lemma_form_pos,priority:1;index:idx_lemma;index:idx_lemma_pos,priority:1"`
	InflectedForm string       `json:"inflectedForm" gorm:"size:191;not null;uniqueIndex:uniq_lemma_form_pos,priority:2;index:idx_inflected_form"`
	RawFeatures   string       `json:"rawFeatures"   gorm:"size:255;not null"`
	PartOfSpeech  PartOfSpeech `json:"partOfSpeech"  gorm:"size:16;not null;uniqueIndex:uniq_lemma_form_pos,priority:3;index:idx_lemma_pos,priority:2;index:idx_pos_case,priority:1"`

	Tense        Tense        `json:"tense,omitempty"        gorm:"size:16"`
	Person       Person       `json:"person,omitempty"       gorm:"size:16"`
	Mood         Mood         `json:"mood,omitempty"         gorm:"size:16"`
	Aspect       Aspect       `json:"aspect,omitempty"       gorm:"size:16"`
	Voice        Voice        `json:"voice,omitempty"        gorm:"size:16"`
	Case         Case         `json:"case,omitempty"         gorm:"column:grammatical_case;size:16;index:idx_pos_case,priority:2"`
	Number       Number       `json:"number,omitempty"       gorm:"size:16"`
	Gender       Gender       `json:"gender,omitempty"       gorm:"size:16"`
	Animacy      Animacy      `json:"animacy,omitempty"      gorm:"size:16"`
	Degree       Degree       `json:"degree,omitempty"       gorm:"size:16"`
	Definiteness Definiteness `json:"definiteness,omitempty" gorm:"size:16"`
	Polarity     Polarity     `json:"polarity,omitempty"     gorm:"size:16"`
}

func (WordFormModel) TableName() string { return "word_forms" }

// LemmaSummaryModel is a materialized (lemma, part of speech, form count)
// view over word_forms, rebuilt by the ingest tool and the background
// aggregation job. It is disposable and never a source of truth.
type LemmaSummaryModel struct {
	ID           uint64       `json:"-"            gorm:"primaryKey;autoIncrement"`
	Lemma        string       `json:"lemma"        gorm:"size:191;not null;uniqueIndex:uniq_summary_lemma_pos,priority:1;index:idx_summary_lemma"`
	PartOfSpeech PartOfSpeech `json:"partOfSpeech" gorm:"size:16;not null;uniqueIndex:uniq_summary_lemma_pos,priority:2;index:idx_summary_pos"`
	FormCount    int64        `json:"formCount"    gorm:"not null"`
}

func (LemmaSummaryModel) TableName() string { return "lemma_summaries" }
