package vocabulary

import (
	"errors"
	"strings"

	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/modules/morphology"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"gorm.io/gorm"
)

type CreateVocabularyDTO struct {
	Polish       string `json:"polish"       binding:"required"`
	Translation  string `json:"translation"  binding:"required"`
	PartOfSpeech string `json:"partOfSpeech"`
	Example      string `json:"example"`
	Category     string `json:"category"`
	Level        string `json:"level"`
}

type UpdateVocabularyDTO struct {
	Polish       *string `json:"polish"`
	Translation  *string `json:"translation"`
	PartOfSpeech *string `json:"partOfSpeech"`
	Example      *string `json:"example"`
	Category     *string `json:"category"`
	Level        *string `json:"level"`
}

// ListQuery filters the public vocabulary listing.
type ListQuery struct {
	Search   string
	Category string
	Level    string
	POS      string
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Query builds the filtered listing query; the handler paginates it.
func (s *Service) Query(q ListQuery) (*gorm.DB, error) {
	tx := s.db.Model(&models.VocabularyModel{})
	if search := strings.TrimSpace(q.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		tx = tx.Where("LOWER(polish) LIKE ? OR LOWER(translation) LIKE ?", like, like)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Level != "" {
		tx = tx.Where("level = ?", strings.ToUpper(q.Level))
	}
	if q.POS != "" {
		pos, ok := morphology.ParsePartOfSpeech(q.POS)
		if !ok {
			return nil, apperrors.Validation("unknown part of speech %q", q.POS)
		}
		tx = tx.Where("part_of_speech = ?", pos)
	}
	return tx.Order("polish ASC"), nil
}

func (s *Service) GetByID(id string) (*models.VocabularyModel, error) {
	var entry models.VocabularyModel
	if err := s.db.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Storage("get vocabulary", err)
	}
	return &entry, nil
}

func (s *Service) Create(dto *CreateVocabularyDTO) (*models.VocabularyModel, error) {
	entry := models.VocabularyModel{
		Polish:      strings.TrimSpace(dto.Polish),
		Translation: strings.TrimSpace(dto.Translation),
		Example:     dto.Example,
		Category:    dto.Category,
		Level:       strings.ToUpper(dto.Level),
	}
	if dto.PartOfSpeech != "" {
		pos, ok := morphology.ParsePartOfSpeech(dto.PartOfSpeech)
		if !ok {
			return nil, apperrors.Validation("unknown part of speech %q", dto.PartOfSpeech)
		}
		entry.PartOfSpeech = pos
	}

	var count int64
	s.db.Model(&models.VocabularyModel{}).
		Where("polish = ? AND translation = ?", entry.Polish, entry.Translation).
		Count(&count)
	if count > 0 {
		return nil, apperrors.Validation("entry already exists")
	}

	if err := s.db.Create(&entry).Error; err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.Validation("entry already exists")
		}
		return nil, apperrors.Storage("create vocabulary", err)
	}
	return &entry, nil
}

func (s *Service) Update(id string, dto *UpdateVocabularyDTO) (*models.VocabularyModel, error) {
	entry, err := s.GetByID(id)
	if err != nil || entry == nil {
		return entry, err
	}

	updates := map[string]interface{}{}
	if dto.Polish != nil {
		updates["polish"] = strings.TrimSpace(*dto.Polish)
	}
	if dto.Translation != nil {
		updates["translation"] = strings.TrimSpace(*dto.Translation)
	}
	if dto.PartOfSpeech != nil {
		pos, ok := morphology.ParsePartOfSpeech(*dto.PartOfSpeech)
		if !ok {
			return nil, apperrors.Validation("unknown part of speech %q", *dto.PartOfSpeech)
		}
		updates["part_of_speech"] = pos
	}
	if dto.Example != nil {
		updates["example"] = *dto.Example
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.Level != nil {
		updates["level"] = strings.ToUpper(*dto.Level)
	}

	if err := s.db.Model(entry).Updates(updates).Error; err != nil {
		return nil, apperrors.Storage("update vocabulary", err)
	}
	return entry, nil
}

func (s *Service) Delete(id string) error {
	if err := s.db.Delete(&models.VocabularyModel{}, "id = ?", id).Error; err != nil {
		return apperrors.Storage("delete vocabulary", err)
	}
	return nil
}
