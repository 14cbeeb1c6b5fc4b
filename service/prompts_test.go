package service

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"kenyalegal-backend/models"
)

func TestBuildRAGPromptModeSelection(t *testing.T) {
	prompt := buildRAGPrompt(ModeCaseAnalysis, "[Source 1: ...]", "Analyse Mumo Matemu")
	assert.Contains(t, prompt, "INTEGRATION RULE")
	assert.Contains(t, prompt, "Ratio Decidendi")
	assert.Contains(t, prompt, "[Source 1: ...]")
	assert.Contains(t, prompt, "Analyse Mumo Matemu")

	// Unknown modes fall back to the research template
	prompt = buildRAGPrompt("swahili", "ctx", "q")
	assert.Contains(t, prompt, "## User's Question:")
}

func TestBuildDirectPromptOmitsSourceInstructions(t *testing.T) {
	prompt := buildDirectPrompt(ModeResearch, "What does Article 40 protect?")
	assert.Contains(t, prompt, "What does Article 40 protect?")
	assert.NotContains(t, prompt, "INTEGRATION RULE")
	assert.NotContains(t, prompt, "Retrieved Legal Sources")
}

func TestTemperatureForMode(t *testing.T) {
	assert.InDelta(t, 0.2, temperatureForMode(ModeDrafting), 1e-9)
	assert.InDelta(t, 0.4, temperatureForMode(ModeResearch), 1e-9)
	assert.InDelta(t, 0.4, temperatureForMode(""), 1e-9)
}

func TestBuildEmbeddingInput(t *testing.T) {
	chunk := models.Chunk{
		DocumentTitle: "Land Act 2012",
		Section:       "Section 152B",
		Citation:      "No. 6 of 2012",
		Text:          "A person shall not be evicted without a court order.",
	}

	input := buildEmbeddingInput(chunk)

	assert.True(t, strings.HasPrefix(input, "[DOCUMENT: Land Act 2012]\n"))
	assert.Contains(t, input, "[SECTION: Section 152B]\n")
	assert.Contains(t, input, "[CITATION: No. 6 of 2012]\n")
	assert.NotContains(t, input, "[COURT:")
	assert.True(t, strings.HasSuffix(input, chunk.Text))
}

func TestBuildEmbeddingInputBareChunk(t *testing.T) {
	chunk := models.Chunk{Text: "plain text"}
	assert.Equal(t, "plain text", buildEmbeddingInput(chunk))
}

func TestNormalizeEmbedding(t *testing.T) {
	v := []float64{3, 4}
	normalizeEmbedding(v)
	assert.InDelta(t, 0.6, v[0], 1e-9)
	assert.InDelta(t, 0.8, v[1], 1e-9)

	norm := math.Hypot(v[0], v[1])
	assert.InDelta(t, 1.0, norm, 1e-9)

	// Zero vector stays untouched
	z := []float64{0, 0}
	normalizeEmbedding(z)
	assert.Equal(t, []float64{0, 0}, z)
}
