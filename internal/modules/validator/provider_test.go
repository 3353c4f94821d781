package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalModelJSON(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		var result ValidationResult
		err := unmarshalModelJSON(`{"correct": true, "issues": []}`, &result)
		require.NoError(t, err)
		assert.True(t, result.Correct)
	})

	t.Run("fenced object", func(t *testing.T) {
		raw := "```json\n{\"correct\": false, \"issues\": [{\"fragment\": \"poszłem\", \"explanation\": \"masculine past of iść is poszedłem\"}], \"suggestion\": \"Wczoraj poszedłem do sklepu.\"}\n```"
		var result ValidationResult
		err := unmarshalModelJSON(raw, &result)
		require.NoError(t, err)
		assert.False(t, result.Correct)
		require.Len(t, result.Issues, 1)
		assert.Equal(t, "poszłem", result.Issues[0].Fragment)
		assert.Equal(t, "Wczoraj poszedłem do sklepu.", result.Suggestion)
	})

	t.Run("object embedded in prose", func(t *testing.T) {
		raw := `Here is my verdict: {"correct": true, "issues": [], "suggestion": ""} Hope that helps!`
		var result ValidationResult
		require.NoError(t, unmarshalModelJSON(raw, &result))
		assert.True(t, result.Correct)
	})

	t.Run("no JSON at all", func(t *testing.T) {
		var result ValidationResult
		assert.Error(t, unmarshalModelJSON("the text looks fine to me", &result))
	})
}

func TestNormalizeOpenAICompatibleEndpoint(t *testing.T) {
	assert.Equal(t, "https://api.openai.com", normalizeOpenAICompatibleEndpoint(""))
	assert.Equal(t, "https://example.com", normalizeOpenAICompatibleEndpoint("https://example.com/v1/"))
	assert.Equal(t, "https://example.com/api", normalizeOpenAICompatibleEndpoint("https://example.com/api/v1"))
}

func TestModelsEndpoints(t *testing.T) {
	assert.Equal(t, "https://api.anthropic.com/v1/models", anthropicModelsEndpoint(""))
	assert.Equal(t, "https://proxy.local/v1/models", anthropicModelsEndpoint("https://proxy.local/v1/"))
	assert.Equal(t, "https://api.openai.com/v1/models", openAIModelsEndpoint(""))
	assert.Equal(t, "https://gw.example.com/v1/models", openAIModelsEndpoint("https://gw.example.com/v1/models"))
}
