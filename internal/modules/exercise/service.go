package exercise

import (
	"errors"
	"strings"

	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"gorm.io/gorm"
)

const (
	defaultPracticeSize = 10
	maxPracticeSize     = 50
)

type CreateExerciseDTO struct {
	Type        string   `json:"type"   binding:"required"`
	Topic       string   `json:"topic"`
	Level       string   `json:"level"`
	Prompt      string   `json:"prompt" binding:"required"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer" binding:"required"`
	Explanation string   `json:"explanation"`
}

type UpdateExerciseDTO struct {
	Type        *string   `json:"type"`
	Topic       *string   `json:"topic"`
	Level       *string   `json:"level"`
	Prompt      *string   `json:"prompt"`
	Choices     *[]string `json:"choices"`
	Answer      *string   `json:"answer"`
	Explanation *string   `json:"explanation"`
}

// AnswerDTO is one submitted answer within a scored practice set.
type AnswerDTO struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Answer     string `json:"answer"     binding:"required"`
}

// PracticeQuestion is an exercise as served to learners: answers withheld.
type PracticeQuestion struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Topic   string   `json:"topic,omitempty"`
	Level   string   `json:"level,omitempty"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices,omitempty"`
}

// SubmitResult is the grading outcome for one submitted answer.
type SubmitResult struct {
	ExerciseID  string        `json:"exerciseId"`
	Verdict     AnswerVerdict `json:"verdict"`
	Answer      string        `json:"answer"`
	Explanation string        `json:"explanation,omitempty"`
}

// SetScore is the grading outcome for a whole practice set. Almost-correct
// answers count as correct for the score; the per-question verdicts keep the
// distinction.
type SetScore struct {
	Results []SubmitResult `json:"results"`
	Correct int            `json:"correct"`
	Total   int            `json:"total"`
}

type ListQuery struct {
	Type  string
	Topic string
	Level string
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) filtered(q ListQuery) *gorm.DB {
	tx := s.db.Model(&models.ExerciseModel{})
	if q.Type != "" {
		tx = tx.Where("type = ?", q.Type)
	}
	if q.Topic != "" {
		tx = tx.Where("topic = ?", q.Topic)
	}
	if q.Level != "" {
		tx = tx.Where("level = ?", strings.ToUpper(q.Level))
	}
	return tx
}

// Query builds the filtered admin listing; the handler paginates it.
func (s *Service) Query(q ListQuery) *gorm.DB {
	return s.filtered(q).Order("created_at DESC")
}

// PracticeSet draws a random selection of exercises with answers withheld.
func (s *Service) PracticeSet(q ListQuery, size int) ([]PracticeQuestion, error) {
	if size < 1 {
		size = defaultPracticeSize
	}
	if size > maxPracticeSize {
		size = maxPracticeSize
	}

	var rows []models.ExerciseModel
	if err := s.filtered(q).Order("RAND()").Limit(size).Find(&rows).Error; err != nil {
		return nil, apperrors.Storage("draw practice set", err)
	}

	questions := make([]PracticeQuestion, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, PracticeQuestion{
			ID:      row.ID,
			Type:    row.Type,
			Topic:   row.Topic,
			Level:   row.Level,
			Prompt:  row.Prompt,
			Choices: row.Choices,
		})
	}
	return questions, nil
}

// Submit grades one answer. The correct answer and explanation are revealed in
// the result regardless of verdict.
func (s *Service) Submit(exerciseID, answer string) (*SubmitResult, error) {
	ex, err := s.GetByID(exerciseID)
	if err != nil {
		return nil, err
	}
	if ex == nil {
		return nil, apperrors.NotFound("exercise %q not found", exerciseID)
	}

	return &SubmitResult{
		ExerciseID:  ex.ID,
		Verdict:     CheckAnswer(ex.Answer, answer),
		Answer:      ex.Answer,
		Explanation: ex.Explanation,
	}, nil
}

// ScoreSet grades a batch of answers in one call.
func (s *Service) ScoreSet(answers []AnswerDTO) (*SetScore, error) {
	score := &SetScore{
		Results: make([]SubmitResult, 0, len(answers)),
		Total:   len(answers),
	}
	for _, a := range answers {
		result, err := s.Submit(a.ExerciseID, a.Answer)
		if err != nil {
			return nil, err
		}
		if result.Verdict != VerdictIncorrect {
			score.Correct++
		}
		score.Results = append(score.Results, *result)
	}
	return score, nil
}

func (s *Service) GetByID(id string) (*models.ExerciseModel, error) {
	var ex models.ExerciseModel
	if err := s.db.First(&ex, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Storage("get exercise", err)
	}
	return &ex, nil
}

func (s *Service) Create(dto *CreateExerciseDTO) (*models.ExerciseModel, error) {
	if err := validateType(dto.Type, dto.Choices, dto.Answer); err != nil {
		return nil, err
	}

	ex := models.ExerciseModel{
		Type:        dto.Type,
		Topic:       dto.Topic,
		Level:       strings.ToUpper(dto.Level),
		Prompt:      strings.TrimSpace(dto.Prompt),
		Choices:     dto.Choices,
		Answer:      strings.TrimSpace(dto.Answer),
		Explanation: dto.Explanation,
	}
	if err := s.db.Create(&ex).Error; err != nil {
		return nil, apperrors.Storage("create exercise", err)
	}
	return &ex, nil
}

func (s *Service) Update(id string, dto *UpdateExerciseDTO) (*models.ExerciseModel, error) {
	ex, err := s.GetByID(id)
	if err != nil || ex == nil {
		return ex, err
	}

	updates := map[string]interface{}{}
	if dto.Type != nil {
		if !validExerciseType(*dto.Type) {
			return nil, apperrors.Validation("unknown exercise type %q", *dto.Type)
		}
		updates["type"] = *dto.Type
	}
	if dto.Topic != nil {
		updates["topic"] = *dto.Topic
	}
	if dto.Level != nil {
		updates["level"] = strings.ToUpper(*dto.Level)
	}
	if dto.Prompt != nil {
		updates["prompt"] = strings.TrimSpace(*dto.Prompt)
	}
	if dto.Choices != nil {
		updates["choices"] = models.StringList(*dto.Choices)
	}
	if dto.Answer != nil {
		updates["answer"] = strings.TrimSpace(*dto.Answer)
	}
	if dto.Explanation != nil {
		updates["explanation"] = *dto.Explanation
	}

	if err := s.db.Model(ex).Updates(updates).Error; err != nil {
		return nil, apperrors.Storage("update exercise", err)
	}
	return ex, nil
}

func (s *Service) Delete(id string) error {
	if err := s.db.Delete(&models.ExerciseModel{}, "id = ?", id).Error; err != nil {
		return apperrors.Storage("delete exercise", err)
	}
	return nil
}

func validExerciseType(t string) bool {
	switch t {
	case models.ExerciseMultipleChoice, models.ExerciseFillBlank, models.ExerciseTranslation:
		return true
	}
	return false
}

func validateType(exType string, choices []string, answer string) error {
	if !validExerciseType(exType) {
		return apperrors.Validation("unknown exercise type %q", exType)
	}
	if exType != models.ExerciseMultipleChoice {
		return nil
	}
	if len(choices) < 2 {
		return apperrors.Validation("multiple choice exercises need at least two choices")
	}
	for _, choice := range choices {
		if CheckAnswer(answer, choice) == VerdictCorrect {
			return nil
		}
	}
	return apperrors.Validation("answer must be one of the choices")
}
