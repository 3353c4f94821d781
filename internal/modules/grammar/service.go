package grammar

import (
	"errors"
	"strings"

	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"gorm.io/gorm"
)

type CreateTopicDTO struct {
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug"  binding:"required"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Text     string `json:"text"  binding:"required"`
	Order    int    `json:"order"`
}

type UpdateTopicDTO struct {
	Title    *string `json:"title"`
	Slug     *string `json:"slug"`
	Category *string `json:"category"`
	Level    *string `json:"level"`
	Text     *string `json:"text"`
	Order    *int    `json:"order"`
}

// TopicSummary is the listing shape: no body, just the index entry.
type TopicSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Order    int    `json:"order"`
}

// RenderedTopic is a topic with its markdown body rendered to HTML.
type RenderedTopic struct {
	models.GrammarTopicModel
	HTML string `json:"html"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns topic summaries, optionally filtered by category, ordered by
// the explicit sort key then title.
func (s *Service) List(category string) ([]TopicSummary, error) {
	tx := s.db.Model(&models.GrammarTopicModel{})
	if category != "" {
		tx = tx.Where("category = ?", category)
	}

	var topics []models.GrammarTopicModel
	if err := tx.Order("`order` ASC, title ASC").Find(&topics).Error; err != nil {
		return nil, apperrors.Storage("list grammar topics", err)
	}

	summaries := make([]TopicSummary, 0, len(topics))
	for _, t := range topics {
		summaries = append(summaries, TopicSummary{
			ID:       t.ID,
			Title:    t.Title,
			Slug:     t.Slug,
			Category: t.Category,
			Level:    t.Level,
			Order:    t.Order,
		})
	}
	return summaries, nil
}

// GetBySlug loads a topic and renders its body to HTML.
func (s *Service) GetBySlug(slug string) (*RenderedTopic, error) {
	var topic models.GrammarTopicModel
	if err := s.db.First(&topic, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Storage("get grammar topic", err)
	}

	html, err := RenderMarkdown(topic.Text)
	if err != nil {
		return nil, apperrors.Storage("render grammar topic", err)
	}
	return &RenderedTopic{GrammarTopicModel: topic, HTML: html}, nil
}

func (s *Service) GetByID(id string) (*models.GrammarTopicModel, error) {
	var topic models.GrammarTopicModel
	if err := s.db.First(&topic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Storage("get grammar topic", err)
	}
	return &topic, nil
}

func (s *Service) Create(dto *CreateTopicDTO) (*models.GrammarTopicModel, error) {
	slug := normalizeSlug(dto.Slug)
	if slug == "" {
		return nil, apperrors.Validation("slug must not be empty")
	}

	var count int64
	s.db.Model(&models.GrammarTopicModel{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return nil, apperrors.Validation("slug %q already in use", slug)
	}

	topic := models.GrammarTopicModel{
		Title:    strings.TrimSpace(dto.Title),
		Slug:     slug,
		Category: dto.Category,
		Level:    strings.ToUpper(dto.Level),
		Text:     dto.Text,
		Order:    dto.Order,
	}
	if err := s.db.Create(&topic).Error; err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, apperrors.Validation("slug %q already in use", slug)
		}
		return nil, apperrors.Storage("create grammar topic", err)
	}
	return &topic, nil
}

func (s *Service) Update(id string, dto *UpdateTopicDTO) (*models.GrammarTopicModel, error) {
	topic, err := s.GetByID(id)
	if err != nil || topic == nil {
		return topic, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = strings.TrimSpace(*dto.Title)
	}
	if dto.Slug != nil {
		slug := normalizeSlug(*dto.Slug)
		if slug == "" {
			return nil, apperrors.Validation("slug must not be empty")
		}
		if slug != topic.Slug {
			var count int64
			s.db.Model(&models.GrammarTopicModel{}).Where("slug = ? AND id <> ?", slug, id).Count(&count)
			if count > 0 {
				return nil, apperrors.Validation("slug %q already in use", slug)
			}
		}
		updates["slug"] = slug
	}
	if dto.Category != nil {
		updates["category"] = *dto.Category
	}
	if dto.Level != nil {
		updates["level"] = strings.ToUpper(*dto.Level)
	}
	if dto.Text != nil {
		updates["text"] = *dto.Text
	}
	if dto.Order != nil {
		updates["order"] = *dto.Order
	}

	if err := s.db.Model(topic).Updates(updates).Error; err != nil {
		return nil, apperrors.Storage("update grammar topic", err)
	}
	return topic, nil
}

func (s *Service) Delete(id string) error {
	if err := s.db.Delete(&models.GrammarTopicModel{}, "id = ?", id).Error; err != nil {
		return apperrors.Storage("delete grammar topic", err)
	}
	return nil
}

func normalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}
