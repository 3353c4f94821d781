package morphology

import (
	"testing"

	"github.com/lingo-polska/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeaturesVerb(t *testing.T) {
	f := ParseFeatures("V;IND;PRS;1;SG")

	assert.Equal(t, models.POSVerb, f.PartOfSpeech)
	assert.Equal(t, models.MoodIndicative, f.Mood)
	assert.Equal(t, models.TensePresent, f.Tense)
	assert.Equal(t, models.PersonFirst, f.Person)
	assert.Equal(t, models.NumberSingular, f.Number)

	// everything else stays unspecified
	assert.Equal(t, models.AspectUnspecified, f.Aspect)
	assert.Equal(t, models.VoiceUnspecified, f.Voice)
	assert.Equal(t, models.CaseUnspecified, f.Case)
	assert.Equal(t, models.GenderUnspecified, f.Gender)
	assert.Equal(t, models.DegreeUnspecified, f.Degree)
}

func TestParseFeaturesTable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Features
	}{
		{
			name: "noun genitive plural",
			raw:  "N;GEN;PL;MASC",
			want: Features{
				PartOfSpeech: models.POSNoun,
				Case:         models.CaseGenitive,
				Number:       models.NumberPlural,
				Gender:       models.GenderMasculine,
			},
		},
		{
			name: "adjective comparative",
			raw:  "ADJ;CMPR;NOM;SG;FEM",
			want: Features{
				PartOfSpeech: models.POSAdjective,
				Degree:       models.DegreeComparative,
				Case:         models.CaseNominative,
				Number:       models.NumberSingular,
				Gender:       models.GenderFeminine,
			},
		},
		{
			name: "perfective past with polarity",
			raw:  "V;PST;PFV;3;PL;NEG",
			want: Features{
				PartOfSpeech: models.POSVerb,
				Tense:        models.TensePast,
				Aspect:       models.AspectPerfective,
				Person:       models.PersonThird,
				Number:       models.NumberPlural,
				Polarity:     models.PolarityNegative,
			},
		},
		{
			name: "empty string",
			raw:  "",
			want: Features{PartOfSpeech: models.POSOther},
		},
		{
			name: "garbage tokens",
			raw:  "FOO;;BAR;12X",
			want: Features{PartOfSpeech: models.POSOther},
		},
		{
			name: "whitespace and case tolerated",
			raw:  " v ; ind ; prs ; 2 ; sg ",
			want: Features{
				PartOfSpeech: models.POSVerb,
				Mood:         models.MoodIndicative,
				Tense:        models.TensePresent,
				Person:       models.PersonSecond,
				Number:       models.NumberSingular,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFeatures(tt.raw))
		})
	}
}

// Multiple category tokens resolve by fixed priority: verb > noun > adjective.
func TestParseFeaturesCategoryPriority(t *testing.T) {
	assert.Equal(t, models.POSVerb, ParseFeatures("N;V;PRS").PartOfSpeech)
	assert.Equal(t, models.POSVerb, ParseFeatures("ADJ;V").PartOfSpeech)
	assert.Equal(t, models.POSNoun, ParseFeatures("ADJ;N;GEN").PartOfSpeech)
	assert.Equal(t, models.POSVerb, ParseFeatures("ADJ;N;V").PartOfSpeech)
}

func TestParseFeaturesDeterministic(t *testing.T) {
	inputs := []string{
		"V;IND;PRS;1;SG", "N;GEN;PL", "", "nonsense", "V;PST;PST", "ADJ;SPRL;LOC;PL",
	}
	for _, raw := range inputs {
		first := ParseFeatures(raw)
		second := ParseFeatures(raw)
		require.Equal(t, first, second, "input %q", raw)
	}
}

// Contradictory repeated tokens within a category: the first one wins.
func TestParseFeaturesFirstTokenWins(t *testing.T) {
	f := ParseFeatures("V;PRS;PST")
	assert.Equal(t, models.TensePresent, f.Tense)
}

func TestFeaturesApply(t *testing.T) {
	row := models.WordFormModel{Lemma: "robić", InflectedForm: "robię", RawFeatures: "V;IND;PRS;1;SG"}
	ParseFeatures(row.RawFeatures).Apply(&row)

	assert.Equal(t, models.POSVerb, row.PartOfSpeech)
	assert.Equal(t, models.TensePresent, row.Tense)
	assert.Equal(t, models.PersonFirst, row.Person)
	assert.Equal(t, models.NumberSingular, row.Number)
}

func TestParsePartOfSpeech(t *testing.T) {
	pos, ok := ParsePartOfSpeech("verb")
	require.True(t, ok)
	assert.Equal(t, models.POSVerb, pos)

	_, ok = ParsePartOfSpeech("adverb")
	assert.False(t, ok)
}
