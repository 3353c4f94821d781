package morphology

import (
	"context"
	"strings"

	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
)

// Resolver turns a raw user-supplied word into its lemma and full form-set.
// A single input string is ambiguous between dictionary form and inflected
// form, so it probes both interpretations rather than making the caller
// disambiguate.
type Resolver struct {
	store Store
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store Store) *Resolver {
	return &Resolver{store: store}
}

// Normalize trims and lowercases a lookup word. It is also the cache-key
// normalization, so "Robię " and "robię" share one cache entry.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Resolve returns the lemma and every stored form for it. Storage failures
// propagate unchanged; in particular a failed lemma probe is never treated
// as "not found".
func (r *Resolver) Resolve(ctx context.Context, word string) (string, []models.WordFormModel, error) {
	normalized := Normalize(word)
	if normalized == "" {
		return "", nil, apperrors.NotFound("No forms found for '%s'", word)
	}

	rows, err := r.store.FindByLemma(ctx, normalized)
	if err != nil {
		return "", nil, err
	}
	if len(rows) > 0 {
		return normalized, rows, nil
	}

	// Not a lemma; try it as a surface form and re-query by its headword.
	match, err := r.store.FindByInflectedForm(ctx, normalized)
	if err != nil {
		return "", nil, err
	}
	if match != nil {
		rows, err = r.store.FindByLemma(ctx, match.Lemma)
		if err != nil {
			return "", nil, err
		}
		if len(rows) > 0 {
			return match.Lemma, rows, nil
		}
	}

	return "", nil, apperrors.NotFound("No forms found for '%s'", word)
}
