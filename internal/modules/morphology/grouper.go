package morphology

import "github.com/lingo-polska/core/internal/models"

// GroupForms reshapes a flat row-set for one lemma into the nested display
// structure. Verb tables are conventionally organized tense-then-mood with
// person/number varying within a cell; declension tables number-then-case
// with gender varying within a cell. Every input row lands in exactly one
// leaf: a row whose grouping attribute is unspecified goes into the
// "unspecified" bucket instead of being dropped.
func GroupForms(pos models.PartOfSpeech, rows []models.WordFormModel) GroupedInflections {
	switch pos {
	case models.POSVerb:
		return groupVerb(rows)
	case models.POSNoun, models.POSAdjective:
		return groupNominal(rows)
	default:
		return groupOther(rows)
	}
}

func groupVerb(rows []models.WordFormModel) GroupedInflections {
	out := make(GroupedInflections)
	for _, row := range rows {
		tense := bucketKey(string(row.Tense))
		mood := bucketKey(string(row.Mood))
		leaf := FormEntry{
			Form:   row.InflectedForm,
			Person: row.Person,
			Number: row.Number,
		}
		insert(out, tense, mood, leaf)
	}
	return out
}

func groupNominal(rows []models.WordFormModel) GroupedInflections {
	out := make(GroupedInflections)
	for _, row := range rows {
		number := bucketKey(string(row.Number))
		grammaticalCase := bucketKey(string(row.Case))
		leaf := FormEntry{
			Form:   row.InflectedForm,
			Gender: row.Gender,
		}
		insert(out, number, grammaticalCase, leaf)
	}
	return out
}

// groupOther has no meaningful grouping axes; all rows share the single
// unspecified bucket, but each leaf still carries whatever attributes the row
// held so pronouns and the like keep their person/number/gender.
func groupOther(rows []models.WordFormModel) GroupedInflections {
	out := make(GroupedInflections)
	for _, row := range rows {
		leaf := FormEntry{
			Form:   row.InflectedForm,
			Person: row.Person,
			Number: row.Number,
			Gender: row.Gender,
		}
		insert(out, UnspecifiedKey, UnspecifiedKey, leaf)
	}
	return out
}

func insert(out GroupedInflections, outer, inner string, leaf FormEntry) {
	if out[outer] == nil {
		out[outer] = make(map[string][]FormEntry)
	}
	out[outer][inner] = append(out[outer][inner], leaf)
}

func bucketKey(v string) string {
	if v == "" {
		return UnspecifiedKey
	}
	return v
}

// CountLeaves sums leaf entries across the whole structure. It equals the
// input row count for any grouped output; tests rely on this partition
// property.
func CountLeaves(g GroupedInflections) int {
	total := 0
	for _, inner := range g {
		for _, leaves := range inner {
			total += len(leaves)
		}
	}
	return total
}
