package morphology

import (
	"testing"

	"github.com/lingo-polska/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verbRow(form string, tense models.Tense, mood models.Mood, person models.Person, number models.Number) models.WordFormModel {
	return models.WordFormModel{
		Lemma: "robić", InflectedForm: form, PartOfSpeech: models.POSVerb,
		Tense: tense, Mood: mood, Person: person, Number: number,
	}
}

func nounRow(form string, number models.Number, grammaticalCase models.Case, gender models.Gender) models.WordFormModel {
	return models.WordFormModel{
		Lemma: "dom", InflectedForm: form, PartOfSpeech: models.POSNoun,
		Number: number, Case: grammaticalCase, Gender: gender,
	}
}

func TestGroupVerbByTenseThenMood(t *testing.T) {
	rows := []models.WordFormModel{
		verbRow("robię", models.TensePresent, models.MoodIndicative, models.PersonFirst, models.NumberSingular),
		verbRow("robisz", models.TensePresent, models.MoodIndicative, models.PersonSecond, models.NumberSingular),
		verbRow("robił", models.TensePast, models.MoodUnspecified, models.PersonUnspecified, models.NumberSingular),
	}

	grouped := GroupForms(models.POSVerb, rows)

	present := grouped["present"]["indicative"]
	require.Len(t, present, 2)
	assert.Equal(t, "robię", present[0].Form)
	assert.Equal(t, models.PersonFirst, present[0].Person)
	assert.Equal(t, "robisz", present[1].Form)

	// a row with no mood lands in the explicit unspecified bucket
	past := grouped["past"][UnspecifiedKey]
	require.Len(t, past, 1)
	assert.Equal(t, "robił", past[0].Form)
}

func TestGroupNominalByNumberThenCase(t *testing.T) {
	rows := []models.WordFormModel{
		nounRow("dom", models.NumberSingular, models.CaseNominative, models.GenderMasculine),
		nounRow("domu", models.NumberSingular, models.CaseGenitive, models.GenderMasculine),
		nounRow("domy", models.NumberPlural, models.CaseNominative, models.GenderMasculine),
		nounRow("domów", models.NumberPlural, models.CaseGenitive, models.GenderMasculine),
	}

	grouped := GroupForms(models.POSNoun, rows)

	nomSg := grouped["singular"]["nominative"]
	require.Len(t, nomSg, 1)
	assert.Equal(t, "dom", nomSg[0].Form)
	assert.Equal(t, models.GenderMasculine, nomSg[0].Gender)

	genPl := grouped["plural"]["genitive"]
	require.Len(t, genPl, 1)
	assert.Equal(t, "domów", genPl[0].Form)
}

func TestGroupAdjectiveUsesNominalStrategy(t *testing.T) {
	rows := []models.WordFormModel{
		{InflectedForm: "dobry", PartOfSpeech: models.POSAdjective, Number: models.NumberSingular, Case: models.CaseNominative, Gender: models.GenderMasculine},
		{InflectedForm: "dobra", PartOfSpeech: models.POSAdjective, Number: models.NumberSingular, Case: models.CaseNominative, Gender: models.GenderFeminine},
	}

	grouped := GroupForms(models.POSAdjective, rows)
	leaves := grouped["singular"]["nominative"]
	require.Len(t, leaves, 2)
	assert.Equal(t, models.GenderMasculine, leaves[0].Gender)
	assert.Equal(t, models.GenderFeminine, leaves[1].Gender)
}

func TestGroupOtherSingleBucket(t *testing.T) {
	rows := []models.WordFormModel{
		{InflectedForm: "szybko", PartOfSpeech: models.POSOther},
		{InflectedForm: "szybciej", PartOfSpeech: models.POSOther},
	}

	grouped := GroupForms(models.POSOther, rows)
	require.Len(t, grouped, 1)
	assert.Len(t, grouped[UnspecifiedKey][UnspecifiedKey], 2)
}

// Ungrouped rows still keep their attributes: a pronoun dropped into the
// single bucket must not lose its person/number/gender.
func TestGroupOtherKeepsRowAttributes(t *testing.T) {
	rows := []models.WordFormModel{
		{
			Lemma: "on", InflectedForm: "oni", PartOfSpeech: models.POSOther,
			Person: models.PersonThird, Number: models.NumberPlural, Gender: models.GenderMasculine,
		},
	}

	grouped := GroupForms(models.POSOther, rows)
	leaves := grouped[UnspecifiedKey][UnspecifiedKey]
	require.Len(t, leaves, 1)
	assert.Equal(t, "oni", leaves[0].Form)
	assert.Equal(t, models.PersonThird, leaves[0].Person)
	assert.Equal(t, models.NumberPlural, leaves[0].Number)
	assert.Equal(t, models.GenderMasculine, leaves[0].Gender)
}

// Grouping is a partition: every row appears in exactly one leaf, so the leaf
// total always equals the input row count, whatever attributes are missing.
func TestGroupingPartitionProperty(t *testing.T) {
	rowSets := map[models.PartOfSpeech][]models.WordFormModel{
		models.POSVerb: {
			verbRow("a", models.TensePresent, models.MoodIndicative, models.PersonFirst, models.NumberSingular),
			verbRow("b", models.TenseUnspecified, models.MoodUnspecified, models.PersonUnspecified, models.NumberUnspecified),
			verbRow("c", models.TensePast, models.MoodConditional, models.PersonThird, models.NumberPlural),
			verbRow("d", models.TensePast, models.MoodConditional, models.PersonThird, models.NumberSingular),
			verbRow("e", models.TenseFuture, models.MoodUnspecified, models.PersonSecond, models.NumberPlural),
		},
		models.POSNoun: {
			nounRow("f", models.NumberSingular, models.CaseUnspecified, models.GenderUnspecified),
			nounRow("g", models.NumberUnspecified, models.CaseLocative, models.GenderNeuter),
			nounRow("h", models.NumberPlural, models.CaseVocative, models.GenderFeminine),
		},
		models.POSOther: {
			{InflectedForm: "i"}, {InflectedForm: "j"},
		},
	}

	for pos, rows := range rowSets {
		grouped := GroupForms(pos, rows)
		assert.Equal(t, len(rows), CountLeaves(grouped), "part of speech %s", pos)
	}
}

func TestGroupEmptyRowSet(t *testing.T) {
	grouped := GroupForms(models.POSVerb, nil)
	assert.Empty(t, grouped)
	assert.Zero(t, CountLeaves(grouped))
}
