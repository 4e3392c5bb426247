package services

import (
	"testing"

	"github.com/abdulwahabthakur/AI-Podcast-Generator/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeResearch_FillsDefaultsFromRequest(t *testing.T) {
	req := domain.ResearchRequest{Topic: "volcanoes", DurationMinutes: 30, Style: "documentary"}

	out := normalizeResearch(map[string]interface{}{}, req)

	assert.Equal(t, "volcanoes", out.Topic)
	assert.Equal(t, "English", out.Language)
	assert.Equal(t, 30, out.EstimatedDurationMinutes)
	assert.Equal(t, "documentary", out.SuggestedTone)
	assert.NotNil(t, out.KeyFacts)
	assert.NotNil(t, out.SuggestedHooks)
	assert.Empty(t, out.EpisodeOutline.Segments)
}

func TestNormalizeResearch_CapsListLengths(t *testing.T) {
	segments := make([]interface{}, 15)
	for i := range segments {
		segments[i] = map[string]interface{}{"title": "segment"}
	}
	facts := make([]interface{}, 20)
	for i := range facts {
		facts[i] = map[string]interface{}{"fact": "a fact", "confidence": 2.5}
	}
	hooks := make([]interface{}, 12)
	for i := range hooks {
		hooks[i] = "hook"
	}

	out := normalizeResearch(map[string]interface{}{
		"episodeOutline": map[string]interface{}{"segments": segments},
		"keyFacts":       facts,
		"suggestedHooks": hooks,
	}, domain.ResearchRequest{Topic: "volcanoes", DurationMinutes: 10})

	assert.Len(t, out.EpisodeOutline.Segments, maxSegments)
	assert.Len(t, out.KeyFacts, maxFacts)
	assert.Len(t, out.SuggestedHooks, maxHooks)
}

func TestNormalizeResearch_ClampsConfidence(t *testing.T) {
	out := normalizeResearch(map[string]interface{}{
		"keyFacts": []interface{}{
			map[string]interface{}{"fact": "too sure", "confidence": 3.0},
			map[string]interface{}{"fact": "negative", "confidence": -1.0},
			map[string]interface{}{"fact": "missing"},
		},
	}, domain.ResearchRequest{Topic: "volcanoes", DurationMinutes: 10})

	require.Len(t, out.KeyFacts, 3)
	assert.Equal(t, 1.0, out.KeyFacts[0].Confidence)
	assert.Equal(t, 0.0, out.KeyFacts[1].Confidence)
	assert.Equal(t, 0.5, out.KeyFacts[2].Confidence)
}

func TestNormalizeResearch_CoercesMistypedValues(t *testing.T) {
	out := normalizeResearch(map[string]interface{}{
		"estimatedDurationMinutes": "25",
		"topic":                    float64(42),
	}, domain.ResearchRequest{Topic: "volcanoes", DurationMinutes: 10})

	assert.Equal(t, 25, out.EstimatedDurationMinutes)
	assert.Equal(t, "42", out.Topic)
}

func TestBuildScriptFromResearch_ShapesDialogue(t *testing.T) {
	research := domain.ResearchOutput{
		Topic:          "volcanoes",
		SuggestedHooks: []string{"What if the ground beneath you could explode?"},
		EpisodeOutline: domain.EpisodeOutline{Segments: []domain.OutlineSegment{
			{Title: "Formation", Bullets: []string{"Magma rises", "Pressure builds"}},
		}},
	}

	script := buildScriptFromResearch(research)

	require.NotEmpty(t, script)
	first := script[0]
	assert.Equal(t, domain.HostSpeaker, first.Speaker)
	assert.Equal(t, "What if the ground beneath you could explode?", first.Text)
	require.NotNil(t, first.AudioEffect)
	assert.Equal(t, "fade_in", *first.AudioEffect)

	for _, line := range script[1:] {
		assert.Nil(t, line.AudioEffect)
	}

	last := script[len(script)-1]
	assert.Equal(t, "Thanks for listening. See you next time.", last.Text)
}
