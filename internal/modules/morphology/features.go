package morphology

import (
	"strings"

	"github.com/lingo-polska/core/internal/models"
)

// Token tables follow the UniMorph-style compact tags used by the corpus
// interchange format (semicolon-delimited, e.g. "V;IND;PRS;1;SG").
var (
	tenseTokens = map[string]models.Tense{
		"PST": models.TensePast,
		"PRS": models.TensePresent,
		"FUT": models.TenseFuture,
	}
	personTokens = map[string]models.Person{
		"1": models.PersonFirst,
		"2": models.PersonSecond,
		"3": models.PersonThird,
	}
	moodTokens = map[string]models.Mood{
		"IND":  models.MoodIndicative,
		"IMP":  models.MoodImperative,
		"COND": models.MoodConditional,
		"SBJV": models.MoodSubjunctive,
	}
	aspectTokens = map[string]models.Aspect{
		"PFV":  models.AspectPerfective,
		"IPFV": models.AspectImperfective,
	}
	voiceTokens = map[string]models.Voice{
		"ACT":  models.VoiceActive,
		"PASS": models.VoicePassive,
	}
	caseTokens = map[string]models.Case{
		"NOM": models.CaseNominative,
		"GEN": models.CaseGenitive,
		"DAT": models.CaseDative,
		"ACC": models.CaseAccusative,
		"INS": models.CaseInstrumental,
		"LOC": models.CaseLocative,
		"VOC": models.CaseVocative,
	}
	numberTokens = map[string]models.Number{
		"SG": models.NumberSingular,
		"PL": models.NumberPlural,
	}
	genderTokens = map[string]models.Gender{
		"MASC": models.GenderMasculine,
		"FEM":  models.GenderFeminine,
		"NEUT": models.GenderNeuter,
	}
	animacyTokens = map[string]models.Animacy{
		"ANIM": models.AnimacyAnimate,
		"INAN": models.AnimacyInanimate,
		"HUM":  models.AnimacyHuman,
	}
	degreeTokens = map[string]models.Degree{
		"CMPR": models.DegreeComparative,
		"SPRL": models.DegreeSuperlative,
	}
	definitenessTokens = map[string]models.Definiteness{
		"DEF":  models.DefinitenessDefinite,
		"INDF": models.DefinitenessIndefinite,
	}
	polarityTokens = map[string]models.Polarity{
		"POS": models.PolarityPositive,
		"NEG": models.PolarityNegative,
	}
)

// ParseFeatures converts a compact feature-tag string into a decomposed
// attribute record. It is a pure function and never fails: unknown tokens are
// ignored, and an empty or malformed string yields part of speech OTHER with
// every attribute unspecified.
//
// When several category tokens co-occur, part of speech resolves by fixed
// priority: verb over noun over adjective. That mirrors the original
// sequential-check behavior and is covered by tests so it cannot drift
// silently.
func ParseFeatures(raw string) Features {
	f := Features{PartOfSpeech: models.POSOther}

	hasVerb, hasNoun, hasAdj := false, false, false
	for _, token := range strings.Split(raw, ";") {
		token = strings.ToUpper(strings.TrimSpace(token))
		if token == "" {
			continue
		}

		switch token {
		case "V":
			hasVerb = true
			continue
		case "N":
			hasNoun = true
			continue
		case "ADJ":
			hasAdj = true
			continue
		}

		// First token wins within each category so parsing stays
		// deterministic on contradictory input.
		if v, ok := tenseTokens[token]; ok && f.Tense == models.TenseUnspecified {
			f.Tense = v
		} else if v, ok := personTokens[token]; ok && f.Person == models.PersonUnspecified {
			f.Person = v
		} else if v, ok := moodTokens[token]; ok && f.Mood == models.MoodUnspecified {
			f.Mood = v
		} else if v, ok := aspectTokens[token]; ok && f.Aspect == models.AspectUnspecified {
			f.Aspect = v
		} else if v, ok := voiceTokens[token]; ok && f.Voice == models.VoiceUnspecified {
			f.Voice = v
		} else if v, ok := caseTokens[token]; ok && f.Case == models.CaseUnspecified {
			f.Case = v
		} else if v, ok := numberTokens[token]; ok && f.Number == models.NumberUnspecified {
			f.Number = v
		} else if v, ok := genderTokens[token]; ok && f.Gender == models.GenderUnspecified {
			f.Gender = v
		} else if v, ok := animacyTokens[token]; ok && f.Animacy == models.AnimacyUnspecified {
			f.Animacy = v
		} else if v, ok := degreeTokens[token]; ok && f.Degree == models.DegreeUnspecified {
			f.Degree = v
		} else if v, ok := definitenessTokens[token]; ok && f.Definiteness == models.DefinitenessUnspecified {
			f.Definiteness = v
		} else if v, ok := polarityTokens[token]; ok && f.Polarity == models.PolarityUnspecified {
			f.Polarity = v
		}
	}

	switch {
	case hasVerb:
		f.PartOfSpeech = models.POSVerb
	case hasNoun:
		f.PartOfSpeech = models.POSNoun
	case hasAdj:
		f.PartOfSpeech = models.POSAdjective
	}

	return f
}

// Apply copies the decomposed attributes onto a word-form row. PartOfSpeech
// is always derived here, never set independently.
func (f Features) Apply(row *models.WordFormModel) {
	row.PartOfSpeech = f.PartOfSpeech
	row.Tense = f.Tense
	row.Person = f.Person
	row.Mood = f.Mood
	row.Aspect = f.Aspect
	row.Voice = f.Voice
	row.Case = f.Case
	row.Number = f.Number
	row.Gender = f.Gender
	row.Animacy = f.Animacy
	row.Degree = f.Degree
	row.Definiteness = f.Definiteness
	row.Polarity = f.Polarity
}

// ParsePartOfSpeech validates a caller-supplied part-of-speech filter value.
func ParsePartOfSpeech(s string) (models.PartOfSpeech, bool) {
	switch models.PartOfSpeech(strings.ToUpper(strings.TrimSpace(s))) {
	case models.POSVerb:
		return models.POSVerb, true
	case models.POSNoun:
		return models.POSNoun, true
	case models.POSAdjective:
		return models.POSAdjective, true
	case models.POSOther:
		return models.POSOther, true
	default:
		return "", false
	}
}
