package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdownTable(t *testing.T) {
	src := "# Locative case\n\n| Singular | Plural |\n| --- | --- |\n| domu | domach |\n"

	html, err := RenderMarkdown(src)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>domach</td>")
}

func TestRenderMarkdownPlainText(t *testing.T) {
	html, err := RenderMarkdown("Miękkie spółgłoski: ś, ź, ć, dź, ń.")
	require.NoError(t, err)
	assert.Contains(t, html, "<p>")
	assert.Contains(t, html, "dź")
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "locative-case", normalizeSlug("  Locative Case "))
	assert.Equal(t, "", normalizeSlug("   "))
}
