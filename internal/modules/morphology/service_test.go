package morphology

import (
	"context"
	"testing"
	"time"

	"github.com/lingo-polska/core/internal/config"
	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	cfg := &config.AppConfig{}
	cfg.Cache.LookupTTL = time.Hour
	cfg.Cache.StatsTTL = time.Hour
	return NewService(store, cfg, zap.NewNop())
}

func TestLookupInflectionsVerbScenario(t *testing.T) {
	svc := newTestService(t, seededStore(t))

	result, err := svc.LookupInflections(context.Background(), "robię")
	require.NoError(t, err)

	assert.Equal(t, "robić", result.Lemma)
	assert.Equal(t, models.POSVerb, result.PartOfSpeech)
	assert.Equal(t, 3, result.TotalForms)

	present := result.Inflections["present"]["indicative"]
	require.Len(t, present, 2)
	assert.Equal(t, "robię", present[0].Form)
	assert.Equal(t, "robisz", present[1].Form)

	past := result.Inflections["past"][UnspecifiedKey]
	require.Len(t, past, 1)
	assert.Equal(t, "robił", past[0].Form)
}

func TestLookupInflectionsNotFound(t *testing.T) {
	svc := newTestService(t, seededStore(t))

	_, err := svc.LookupInflections(context.Background(), "nonexistentword123")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "nonexistentword123")
}

// Cache transparency: a warm cache returns exactly what the cold computation
// produced, and does not hit the store again.
func TestLookupCacheTransparency(t *testing.T) {
	store := seededStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	cold, err := svc.LookupInflections(ctx, "dom")
	require.NoError(t, err)
	queriesAfterCold := store.lemmaQueries

	warm, err := svc.LookupInflections(ctx, "dom")
	require.NoError(t, err)

	assert.Equal(t, cold, warm)
	assert.Equal(t, queriesAfterCold, store.lemmaQueries)

	// normalization shares the cache entry across input spellings
	_, err = svc.LookupInflections(ctx, "  DOM ")
	require.NoError(t, err)
	assert.Equal(t, queriesAfterCold, store.lemmaQueries)
}

func TestLookupCacheColdAfterPurge(t *testing.T) {
	store := seededStore(t)
	svc := newTestService(t, store)
	ctx := context.Background()

	warm, err := svc.LookupInflections(ctx, "dom")
	require.NoError(t, err)

	svc.PurgeCaches()

	cold, err := svc.LookupInflections(ctx, "dom")
	require.NoError(t, err)
	assert.Equal(t, warm, cold)
}

func TestListLemmasFilter(t *testing.T) {
	svc := newTestService(t, seededStore(t))

	entries, err := svc.ListLemmas(context.Background(), ListFilter{
		Search:       "ROB",
		PartOfSpeech: "verb",
		Limit:        10,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "robić", entries[0].Lemma)
	assert.Equal(t, models.POSVerb, entries[0].PartOfSpeech)
	assert.Equal(t, int64(3), entries[0].FormCount)
}

func TestListLemmasRejectsUnknownPOS(t *testing.T) {
	svc := newTestService(t, seededStore(t))

	_, err := svc.ListLemmas(context.Background(), ListFilter{PartOfSpeech: "GERUND"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestListLemmasBoundsLimit(t *testing.T) {
	store := seededStore(t)
	svc := newTestService(t, store)

	entries, err := svc.ListLemmas(context.Background(), ListFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSearchFormsExactMatch(t *testing.T) {
	svc := newTestService(t, seededStore(t))

	tense := "present"
	person := "second"
	rows, err := svc.SearchForms(context.Background(), SearchCriteria{
		Tense:  &tense,
		Person: &person,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "robisz", rows[0].InflectedForm)
}

func TestSearchFormsRejectsUnknownValue(t *testing.T) {
	svc := newTestService(t, seededStore(t))

	bad := "pluperfect"
	_, err := svc.SearchForms(context.Background(), SearchCriteria{Tense: &bad})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestStats(t *testing.T) {
	svc := newTestService(t, seededStore(t))

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	byPOS := make(map[models.PartOfSpeech]POSStat)
	for _, st := range stats {
		byPOS[st.PartOfSpeech] = st
	}
	assert.Equal(t, int64(3), byPOS[models.POSVerb].TotalForms)
	assert.Equal(t, int64(1), byPOS[models.POSVerb].UniqueLemmas)
	assert.Equal(t, int64(3), byPOS[models.POSNoun].TotalForms)
	assert.Equal(t, int64(1), byPOS[models.POSNoun].UniqueLemmas)
}

// Bulk ingestion dedup invariant: re-upserting overlapping data leaves one
// row per distinct (lemma, inflectedForm, partOfSpeech) triple.
func TestBulkUpsertDeduplicates(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	batch := []models.WordFormModel{
		ingestRow("robić", "robię", "V;IND;PRS;1;SG"),
		ingestRow("robić", "robię", "V;IND;PRS;1;SG"), // duplicate line in corpus
		ingestRow("robić", "robisz", "V;IND;PRS;2;SG"),
	}
	require.NoError(t, store.BulkUpsert(ctx, batch))
	require.NoError(t, store.BulkUpsert(ctx, batch)) // overlapping re-run

	rows, err := store.FindByLemma(ctx, "robić")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestStorageErrorPropagatesThroughService(t *testing.T) {
	store := seededStore(t)
	store.failErr = errStoreDown
	svc := newTestService(t, store)

	_, err := svc.LookupInflections(context.Background(), "dom")
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
}
