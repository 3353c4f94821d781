package morphology

import (
	"context"
	"fmt"
	"strings"

	"github.com/lingo-polska/core/internal/config"
	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"github.com/lingo-polska/core/internal/pkg/metrics"
	"go.uber.org/zap"
)

const (
	defaultLemmaLimit = 50
	maxLemmaLimit     = 200
	defaultFormLimit  = 100
	maxFormLimit      = 500

	statsCacheKey = "stats"
)

// Service is the lookup pipeline: resolver + grouper behind per-payload
// caches. A cold cache produces byte-identical responses to a warm one; the
// caches only save the two store round-trips and the grouping pass.
type Service struct {
	store    Store
	resolver *Resolver
	logger   *zap.Logger

	lookupCache *Cache[*LookupResult]
	lemmaCache  *Cache[[]LemmaEntry]
	statsCache  *Cache[[]POSStat]
}

// NewService wires the pipeline with caches sized from config.
func NewService(store Store, cfg *config.AppConfig, logger *zap.Logger) *Service {
	return &Service{
		store:       store,
		resolver:    NewResolver(store),
		logger:      logger,
		lookupCache: NewCache[*LookupResult](cfg.Cache.LookupTTL),
		lemmaCache:  NewCache[[]LemmaEntry](cfg.Cache.StatsTTL),
		statsCache:  NewCache[[]POSStat](cfg.Cache.StatsTTL),
	}
}

// LookupInflections resolves word to its lemma and returns the grouped
// form-set. The part of speech driving the grouping strategy comes from the
// first resolved row; all rows of one lemma share it by construction.
func (s *Service) LookupInflections(ctx context.Context, word string) (*LookupResult, error) {
	key := Normalize(word)
	if cached, ok := s.lookupCache.Get(key); ok {
		metrics.LookupCacheHits.Inc()
		return cached, nil
	}
	metrics.LookupCacheMisses.Inc()

	lemma, rows, err := s.resolver.Resolve(ctx, word)
	if err != nil {
		if apperrors.IsNotFound(err) {
			metrics.LookupNotFound.Inc()
		}
		return nil, err
	}

	pos := rows[0].PartOfSpeech
	result := &LookupResult{
		Lemma:        lemma,
		PartOfSpeech: pos,
		TotalForms:   len(rows),
		Inflections:  GroupForms(pos, rows),
	}

	s.lookupCache.Set(key, result)
	return result, nil
}

// ListLemmas returns lemma summaries matching the filter. The search term is
// case-insensitive; the limit is bounded to keep scans predictable.
func (s *Service) ListLemmas(ctx context.Context, filter ListFilter) ([]LemmaEntry, error) {
	filter.Search = strings.ToLower(strings.TrimSpace(filter.Search))
	if filter.PartOfSpeech != "" {
		pos, ok := ParsePartOfSpeech(string(filter.PartOfSpeech))
		if !ok {
			return nil, apperrors.Validation("unknown part of speech %q", filter.PartOfSpeech)
		}
		filter.PartOfSpeech = pos
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLemmaLimit
	}
	if filter.Limit > maxLemmaLimit {
		filter.Limit = maxLemmaLimit
	}

	key := fmt.Sprintf("lemmas|%s|%s|%d", filter.Search, filter.PartOfSpeech, filter.Limit)
	if cached, ok := s.lemmaCache.Get(key); ok {
		return cached, nil
	}

	entries, err := s.store.ListLemmas(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.lemmaCache.Set(key, entries)
	return entries, nil
}

// SearchForms runs an exact-match filter over any subset of word-form
// attributes. Malformed criteria fail up front with a ValidationError; no
// partial results are returned.
func (s *Service) SearchForms(ctx context.Context, criteria SearchCriteria) ([]models.WordFormModel, error) {
	if err := validateCriteria(&criteria); err != nil {
		return nil, err
	}
	limit := criteria.Limit
	if limit <= 0 {
		limit = defaultFormLimit
	}
	if limit > maxFormLimit {
		limit = maxFormLimit
	}
	return s.store.SearchForms(ctx, criteria, limit)
}

// Stats returns aggregate per-part-of-speech corpus counts, cached with the
// long TTL since the corpus changes only on re-ingestion.
func (s *Service) Stats(ctx context.Context) ([]POSStat, error) {
	if cached, ok := s.statsCache.Get(statsCacheKey); ok {
		return cached, nil
	}
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	s.statsCache.Set(statsCacheKey, stats)
	return stats, nil
}

// RebuildSummaries regenerates the lemma summary view and drops the derived
// caches, so listings reflect the fresh aggregation immediately.
func (s *Service) RebuildSummaries(ctx context.Context) error {
	if err := s.store.RebuildSummaries(ctx); err != nil {
		return err
	}
	s.lemmaCache.Purge()
	s.statsCache.Purge()
	s.logger.Info("lemma summaries rebuilt")
	return nil
}

// SweepCaches removes expired entries from every cache and reports the total.
func (s *Service) SweepCaches() int {
	return s.lookupCache.Sweep() + s.lemmaCache.Sweep() + s.statsCache.Sweep()
}

// PurgeCaches drops all cached payloads (admin clean-cache endpoint).
func (s *Service) PurgeCaches() {
	s.lookupCache.Purge()
	s.lemmaCache.Purge()
	s.statsCache.Purge()
}

// enum value sets for criteria validation, lowercased as stored.
var criteriaValues = map[string]map[string]bool{
	"partOfSpeech": {"VERB": true, "NOUN": true, "ADJECTIVE": true, "OTHER": true},
	"tense":        {"past": true, "present": true, "future": true},
	"person":       {"first": true, "second": true, "third": true},
	"mood":         {"indicative": true, "imperative": true, "conditional": true, "subjunctive": true},
	"aspect":       {"perfective": true, "imperfective": true},
	"voice":        {"active": true, "passive": true},
	"case": {"nominative": true, "genitive": true, "dative": true, "accusative": true,
		"instrumental": true, "locative": true, "vocative": true},
	"number":       {"singular": true, "plural": true},
	"gender":       {"masculine": true, "feminine": true, "neuter": true},
	"animacy":      {"animate": true, "inanimate": true, "human": true},
	"degree":       {"positive": true, "comparative": true, "superlative": true},
	"definiteness": {"definite": true, "indefinite": true},
	"polarity":     {"positive": true, "negative": true},
}

func validateCriteria(c *SearchCriteria) error {
	if c.Lemma != nil {
		*c.Lemma = Normalize(*c.Lemma)
	}
	if c.InflectedForm != nil {
		*c.InflectedForm = Normalize(*c.InflectedForm)
	}
	if c.PartOfSpeech != nil {
		pos, ok := ParsePartOfSpeech(*c.PartOfSpeech)
		if !ok {
			return apperrors.Validation("unknown part of speech %q", *c.PartOfSpeech)
		}
		*c.PartOfSpeech = string(pos)
	}

	checks := []struct {
		name  string
		value *string
	}{
		{"tense", c.Tense}, {"person", c.Person}, {"mood", c.Mood},
		{"aspect", c.Aspect}, {"voice", c.Voice}, {"case", c.Case},
		{"number", c.Number}, {"gender", c.Gender}, {"animacy", c.Animacy},
		{"degree", c.Degree}, {"definiteness", c.Definiteness}, {"polarity", c.Polarity},
	}
	for _, check := range checks {
		if check.value == nil {
			continue
		}
		v := strings.ToLower(strings.TrimSpace(*check.value))
		if !criteriaValues[check.name][v] {
			return apperrors.Validation("unknown %s value %q", check.name, *check.value)
		}
		*check.value = v
	}
	return nil
}
