package morphology

import (
	"context"
	"testing"

	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *fakeStore {
	t.Helper()
	store := newFakeStore()
	err := store.BulkUpsert(context.Background(), []models.WordFormModel{
		ingestRow("robić", "robię", "V;IND;PRS;1;SG"),
		ingestRow("robić", "robisz", "V;IND;PRS;2;SG"),
		ingestRow("robić", "robił", "V;PST;MASC;SG"),
		ingestRow("dom", "dom", "N;NOM;SG;MASC"),
		ingestRow("dom", "domu", "N;GEN;SG;MASC"),
		ingestRow("dom", "domów", "N;GEN;PL;MASC"),
	})
	require.NoError(t, err)
	return store
}

func TestResolveLemmaDirectly(t *testing.T) {
	store := seededStore(t)
	resolver := NewResolver(store)

	lemma, rows, err := resolver.Resolve(context.Background(), "robić")
	require.NoError(t, err)
	assert.Equal(t, "robić", lemma)
	assert.Len(t, rows, 3)
	// resolved as a lemma on the first probe, no surface-form query needed
	assert.Zero(t, store.formQueries)
}

func TestResolveInflectedForm(t *testing.T) {
	store := seededStore(t)
	resolver := NewResolver(store)

	lemma, rows, err := resolver.Resolve(context.Background(), "robię")
	require.NoError(t, err)
	assert.Equal(t, "robić", lemma)
	assert.Len(t, rows, 3)
	assert.Equal(t, 1, store.formQueries)
}

func TestResolveNormalizesInput(t *testing.T) {
	resolver := NewResolver(seededStore(t))

	lemma, rows, err := resolver.Resolve(context.Background(), "  ROBIĘ ")
	require.NoError(t, err)
	assert.Equal(t, "robić", lemma)
	assert.Len(t, rows, 3)
}

// Looking up a lemma and looking up any of its inflected forms must resolve
// to the same lemma and the same full form-set.
func TestResolveIdempotence(t *testing.T) {
	resolver := NewResolver(seededStore(t))
	ctx := context.Background()

	viaLemma, lemmaRows, err := resolver.Resolve(ctx, "dom")
	require.NoError(t, err)

	for _, form := range []string{"dom", "domu", "domów"} {
		viaForm, formRows, err := resolver.Resolve(ctx, form)
		require.NoError(t, err)
		assert.Equal(t, viaLemma, viaForm)
		assert.Equal(t, lemmaRows, formRows)
	}
}

func TestResolveNotFound(t *testing.T) {
	resolver := NewResolver(seededStore(t))

	_, _, err := resolver.Resolve(context.Background(), "nonexistentword123")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "nonexistentword123")
}

func TestResolveEmptyInput(t *testing.T) {
	resolver := NewResolver(seededStore(t))

	_, _, err := resolver.Resolve(context.Background(), "   ")
	assert.True(t, apperrors.IsNotFound(err))
}

// A storage failure during the lemma probe must surface as a StorageError,
// never be mistaken for "not found".
func TestResolveStorageErrorPropagates(t *testing.T) {
	store := seededStore(t)
	store.failErr = errStoreDown
	resolver := NewResolver(store)

	_, _, err := resolver.Resolve(context.Background(), "robić")
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))
	assert.False(t, apperrors.IsNotFound(err))
}
