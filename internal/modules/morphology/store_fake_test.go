package morphology

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
)

// fakeStore is an in-memory Store used by resolver and service tests. It
// deduplicates on (lemma, inflectedForm, partOfSpeech) the way the real
// composite index does, and can be forced to fail to test error propagation.
type fakeStore struct {
	rows    []models.WordFormModel
	failErr error

	lemmaQueries int
	formQueries  int
}

func newFakeStore() *fakeStore { return &fakeStore{} }

func (f *fakeStore) key(r models.WordFormModel) string {
	return r.Lemma + "\x00" + r.InflectedForm + "\x00" + string(r.PartOfSpeech)
}

func (f *fakeStore) BulkUpsert(_ context.Context, rows []models.WordFormModel) error {
	if f.failErr != nil {
		return apperrors.Storage("bulk upsert", f.failErr)
	}
	seen := make(map[string]bool, len(f.rows))
	for _, existing := range f.rows {
		seen[f.key(existing)] = true
	}
	for _, row := range rows {
		if seen[f.key(row)] {
			continue
		}
		seen[f.key(row)] = true
		f.rows = append(f.rows, row)
	}
	return nil
}

func (f *fakeStore) FindByLemma(_ context.Context, lemma string) ([]models.WordFormModel, error) {
	f.lemmaQueries++
	if f.failErr != nil {
		return nil, apperrors.Storage("find by lemma", f.failErr)
	}
	var out []models.WordFormModel
	for _, row := range f.rows {
		if row.Lemma == lemma {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) FindByInflectedForm(_ context.Context, form string) (*models.WordFormModel, error) {
	f.formQueries++
	if f.failErr != nil {
		return nil, apperrors.Storage("find by inflected form", f.failErr)
	}
	for _, row := range f.rows {
		if row.InflectedForm == form {
			r := row
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SearchForms(_ context.Context, criteria SearchCriteria, limit int) ([]models.WordFormModel, error) {
	if f.failErr != nil {
		return nil, apperrors.Storage("search forms", f.failErr)
	}
	match := func(filter *string, value string) bool {
		return filter == nil || *filter == value
	}
	var out []models.WordFormModel
	for _, row := range f.rows {
		if !match(criteria.Lemma, row.Lemma) ||
			!match(criteria.InflectedForm, row.InflectedForm) ||
			!match(criteria.PartOfSpeech, string(row.PartOfSpeech)) ||
			!match(criteria.Tense, string(row.Tense)) ||
			!match(criteria.Person, string(row.Person)) ||
			!match(criteria.Mood, string(row.Mood)) ||
			!match(criteria.Case, string(row.Case)) ||
			!match(criteria.Number, string(row.Number)) ||
			!match(criteria.Gender, string(row.Gender)) {
			continue
		}
		out = append(out, row)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) ListLemmas(_ context.Context, filter ListFilter) ([]LemmaEntry, error) {
	if f.failErr != nil {
		return nil, apperrors.Storage("list lemmas", f.failErr)
	}
	counts := make(map[string]*LemmaEntry)
	var order []string
	for _, row := range f.rows {
		if filter.Search != "" && !strings.Contains(strings.ToLower(row.Lemma), filter.Search) {
			continue
		}
		if filter.PartOfSpeech != "" && row.PartOfSpeech != filter.PartOfSpeech {
			continue
		}
		key := row.Lemma + "\x00" + string(row.PartOfSpeech)
		if counts[key] == nil {
			counts[key] = &LemmaEntry{Lemma: row.Lemma, PartOfSpeech: row.PartOfSpeech}
			order = append(order, key)
		}
		counts[key].FormCount++
	}
	sort.Strings(order)
	var out []LemmaEntry
	for _, key := range order {
		out = append(out, *counts[key])
		if len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) Stats(_ context.Context) ([]POSStat, error) {
	if f.failErr != nil {
		return nil, apperrors.Storage("stats", f.failErr)
	}
	type agg struct {
		forms  int64
		lemmas map[string]bool
	}
	byPOS := make(map[models.PartOfSpeech]*agg)
	for _, row := range f.rows {
		a := byPOS[row.PartOfSpeech]
		if a == nil {
			a = &agg{lemmas: make(map[string]bool)}
			byPOS[row.PartOfSpeech] = a
		}
		a.forms++
		a.lemmas[row.Lemma] = true
	}
	var out []POSStat
	for pos, a := range byPOS {
		out = append(out, POSStat{PartOfSpeech: pos, TotalForms: a.forms, UniqueLemmas: int64(len(a.lemmas))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PartOfSpeech < out[j].PartOfSpeech })
	return out, nil
}

func (f *fakeStore) RebuildSummaries(context.Context) error {
	if f.failErr != nil {
		return apperrors.Storage("rebuild summaries", f.failErr)
	}
	return nil
}

var errStoreDown = errors.New("connection refused")

// ingestRow builds a corpus row the way the ingest tool does: parse the tag
// string, derive everything from it.
func ingestRow(lemma, form, rawFeatures string) models.WordFormModel {
	row := models.WordFormModel{Lemma: lemma, InflectedForm: form, RawFeatures: rawFeatures}
	ParseFeatures(rawFeatures).Apply(&row)
	return row
}
