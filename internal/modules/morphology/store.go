package morphology

import (
	"context"
	"errors"

	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the morphological corpus persistence boundary. The live service
// only reads; BulkUpsert and RebuildSummaries belong to the offline ingestion
// path. All failures surface as StorageError, never as empty results.
type Store interface {
	FindByLemma(ctx context.Context, lemma string) ([]models.WordFormModel, error)
	FindByInflectedForm(ctx context.Context, form string) (*models.WordFormModel, error)
	BulkUpsert(ctx context.Context, rows []models.WordFormModel) error
	SearchForms(ctx context.Context, criteria SearchCriteria, limit int) ([]models.WordFormModel, error)
	ListLemmas(ctx context.Context, filter ListFilter) ([]LemmaEntry, error)
	Stats(ctx context.Context) ([]POSStat, error)
	RebuildSummaries(ctx context.Context) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates the GORM-backed Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindByLemma(ctx context.Context, lemma string) ([]models.WordFormModel, error) {
	var rows []models.WordFormModel
	err := s.db.WithContext(ctx).
		Where("lemma = ?", lemma).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.Storage("find by lemma", err)
	}
	return rows, nil
}

func (s *gormStore) FindByInflectedForm(ctx context.Context, form string) (*models.WordFormModel, error) {
	var row models.WordFormModel
	err := s.db.WithContext(ctx).
		Where("inflected_form = ?", form).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("find by inflected form", err)
	}
	return &row, nil
}

// insertBatchSize bounds the rows per INSERT statement. MySQL's binary
// protocol caps a prepared statement at 65535 placeholders and every
// word_forms row binds 16 columns, so caller batches are re-chunked here
// rather than trusted to stay small.
const insertBatchSize = 1000

// BulkUpsert inserts rows, silently keeping the existing row on a
// (lemma, inflected_form, part_of_speech) conflict. Re-running ingestion over
// overlapping corpus files therefore never duplicates forms.
func (s *gormStore) BulkUpsert(ctx context.Context, rows []models.WordFormModel) error {
	if len(rows) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Session(&gorm.Session{CreateBatchSize: insertBatchSize}).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "lemma"}, {Name: "inflected_form"}, {Name: "part_of_speech"},
			},
			DoNothing: true,
		}).
		Create(&rows).Error
	return apperrors.Storage("bulk upsert", err)
}

func (s *gormStore) SearchForms(ctx context.Context, criteria SearchCriteria, limit int) ([]models.WordFormModel, error) {
	q := s.db.WithContext(ctx).Model(&models.WordFormModel{})

	apply := func(column string, v *string) {
		if v != nil {
			q = q.Where(column+" = ?", *v)
		}
	}
	apply("lemma", criteria.Lemma)
	apply("inflected_form", criteria.InflectedForm)
	apply("part_of_speech", criteria.PartOfSpeech)
	apply("tense", criteria.Tense)
	apply("person", criteria.Person)
	apply("mood", criteria.Mood)
	apply("aspect", criteria.Aspect)
	apply("voice", criteria.Voice)
	apply("grammatical_case", criteria.Case)
	apply("number", criteria.Number)
	apply("gender", criteria.Gender)
	apply("animacy", criteria.Animacy)
	apply("degree", criteria.Degree)
	apply("definiteness", criteria.Definiteness)
	apply("polarity", criteria.Polarity)

	var rows []models.WordFormModel
	if err := q.Limit(limit).Find(&rows).Error; err != nil {
		return nil, apperrors.Storage("search forms", err)
	}
	return rows, nil
}

// ListLemmas reads the materialized lemma_summaries view when it has been
// built, falling back to a live aggregation otherwise. The fallback keeps a
// fresh deployment functional before the first summary rebuild.
func (s *gormStore) ListLemmas(ctx context.Context, filter ListFilter) ([]LemmaEntry, error) {
	var summaryCount int64
	if err := s.db.WithContext(ctx).Model(&models.LemmaSummaryModel{}).Count(&summaryCount).Error; err != nil {
		return nil, apperrors.Storage("count lemma summaries", err)
	}

	var entries []LemmaEntry
	if summaryCount > 0 {
		q := s.db.WithContext(ctx).
			Model(&models.LemmaSummaryModel{}).
			Select("lemma", "part_of_speech", "form_count")
		if filter.Search != "" {
			q = q.Where("LOWER(lemma) LIKE ?", "%"+filter.Search+"%")
		}
		if filter.PartOfSpeech != "" {
			q = q.Where("part_of_speech = ?", filter.PartOfSpeech)
		}
		if err := q.Order("lemma ASC").Limit(filter.Limit).Scan(&entries).Error; err != nil {
			return nil, apperrors.Storage("list lemmas", err)
		}
		return entries, nil
	}

	q := s.db.WithContext(ctx).
		Model(&models.WordFormModel{}).
		Select("lemma", "part_of_speech", "COUNT(*) AS form_count").
		Group("lemma").Group("part_of_speech")
	if filter.Search != "" {
		q = q.Where("LOWER(lemma) LIKE ?", "%"+filter.Search+"%")
	}
	if filter.PartOfSpeech != "" {
		q = q.Where("part_of_speech = ?", filter.PartOfSpeech)
	}
	if err := q.Order("lemma ASC").Limit(filter.Limit).Scan(&entries).Error; err != nil {
		return nil, apperrors.Storage("list lemmas", err)
	}
	return entries, nil
}

func (s *gormStore) Stats(ctx context.Context) ([]POSStat, error) {
	var stats []POSStat
	err := s.db.WithContext(ctx).
		Model(&models.WordFormModel{}).
		Select("part_of_speech", "COUNT(*) AS total_forms", "COUNT(DISTINCT lemma) AS unique_lemmas").
		Group("part_of_speech").
		Scan(&stats).Error
	if err != nil {
		return nil, apperrors.Storage("stats", err)
	}
	return stats, nil
}

// RebuildSummaries regenerates the lemma_summaries materialized view in one
// transaction. The view is disposable, so a full truncate-and-rebuild is
// simpler and safer than incremental maintenance.
func (s *gormStore) RebuildSummaries(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&models.LemmaSummaryModel{}).Error; err != nil {
			return err
		}
		return tx.Exec(
			"INSERT INTO lemma_summaries (lemma, part_of_speech, form_count) " +
				"SELECT lemma, part_of_speech, COUNT(*) FROM word_forms " +
				"GROUP BY lemma, part_of_speech",
		).Error
	})
	return apperrors.Storage("rebuild summaries", err)
}
