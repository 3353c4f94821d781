package validator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appcfg "github.com/lingo-polska/core/internal/config"
	"github.com/lingo-polska/core/internal/pkg/apperrors"
	"go.uber.org/zap"
)

const maxInputRunes = 2000

type Service struct {
	cfg    appcfg.AIConfig
	logger *zap.Logger
}

func NewService(cfg appcfg.AIConfig, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, logger: logger.Named("validator")}
}

func (s *Service) enabled() bool {
	return strings.TrimSpace(s.cfg.Provider.APIKey) != ""
}

// Validate sends the learner's text to the configured provider and parses the
// structured verdict out of its response.
func (s *Service) Validate(ctx context.Context, text string) (*ValidationResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperrors.Validation("text must not be empty")
	}
	if len([]rune(text)) > maxInputRunes {
		return nil, apperrors.Validation("text exceeds %d characters", maxInputRunes)
	}
	if !s.enabled() {
		return nil, apperrors.Validation("grammar validation is not configured")
	}

	raw, err := generate(ctx, &s.cfg.Provider, validationSystemPrompt, buildValidationPrompt(text))
	if err != nil {
		s.logger.Warn("provider call failed", zap.Error(err))
		return nil, fmt.Errorf("validate text: %w", err)
	}

	var result ValidationResult
	if err := unmarshalModelJSON(raw, &result); err != nil {
		s.logger.Warn("unparseable provider response", zap.String("raw", truncate(raw, 200)))
		return nil, fmt.Errorf("validate text: %w", err)
	}
	if result.Issues == nil {
		result.Issues = []Issue{}
	}
	return &result, nil
}

// ListModels queries the provider's model catalog.
func (s *Service) ListModels(ctx context.Context) ([]modelInfo, error) {
	if !s.enabled() {
		return nil, apperrors.Validation("grammar validation is not configured")
	}
	provider := s.cfg.Provider

	if isAnthropicProviderType(provider.Type) {
		return fetchModels(ctx, anthropicModelsEndpoint(provider.Endpoint), map[string]string{
			"x-api-key":         strings.TrimSpace(provider.APIKey),
			"anthropic-version": "2023-06-01",
			"accept":            "application/json",
		}, parseAnthropicModels)
	}
	return fetchModels(ctx, openAIModelsEndpoint(provider.Endpoint), map[string]string{
		"authorization": "Bearer " + strings.TrimSpace(provider.APIKey),
		"accept":        "application/json",
	}, parseOpenAIStyleModels)
}

// TestConnection round-trips a trivial prompt through the provider.
func (s *Service) TestConnection(ctx context.Context) error {
	if !s.enabled() {
		return apperrors.Validation("grammar validation is not configured")
	}
	_, err := generate(ctx, &s.cfg.Provider, "", "Reply with the single word: ok")
	if err != nil {
		return fmt.Errorf("provider connection test: %w", err)
	}
	return nil
}

func fetchModels(ctx context.Context, endpoint string, headers map[string]string, parse func([]byte) ([]modelInfo, error)) ([]modelInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		if strings.TrimSpace(v) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	client := &http.Client{Timeout: 20 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("provider models request failed: %s", strings.TrimSpace(string(body)))
	}
	models, err := parse(body)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, errors.New("provider returned no models")
	}
	return models, nil
}

func parseOpenAIStyleModels(body []byte) ([]modelInfo, error) {
	var payload struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	models := make([]modelInfo, 0, len(payload.Data))
	for _, item := range payload.Data {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = id
		}
		models = append(models, modelInfo{ID: id, Name: name})
	}
	return models, nil
}

func parseAnthropicModels(body []byte) ([]modelInfo, error) {
	var payload struct {
		Data []struct {
			ID          string `json:"id"`
			DisplayName string `json:"display_name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	models := make([]modelInfo, 0, len(payload.Data))
	for _, item := range payload.Data {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		name := strings.TrimSpace(item.DisplayName)
		if name == "" {
			name = id
		}
		models = append(models, modelInfo{ID: id, Name: name})
	}
	return models, nil
}

func anthropicModelsEndpoint(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return "https://api.anthropic.com/v1/models"
	}
	cleaned := strings.TrimRight(base, "/")
	cleaned = strings.TrimSuffix(cleaned, "/models")
	cleaned = strings.TrimSuffix(cleaned, "/v1")
	return cleaned + "/v1/models"
}

func openAIModelsEndpoint(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return "https://api.openai.com/v1/models"
	}
	cleaned := strings.TrimRight(base, "/")
	cleaned = strings.TrimSuffix(cleaned, "/models")
	cleaned = strings.TrimSuffix(cleaned, "/v1")
	return cleaned + "/v1/models"
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
