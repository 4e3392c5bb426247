package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSONObject(`Sure! Here is the JSON: {"a":1} Hope that helps.`))
	assert.Equal(t, "", extractJSONObject("no braces here"))
	assert.Equal(t, "", extractJSONObject("} backwards {"))
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[{"speaker":"Host"}]`, extractJSONArray("```json\n[{\"speaker\":\"Host\"}]\n```"))
	assert.Equal(t, "", extractJSONArray("nothing"))
}

func TestRepairJSON_StripsFencesQuotesAndTrailingCommas(t *testing.T) {
	input := "```json\n{'topic': 'volcanoes', \"list\": [1, 2,],}\n```"

	repaired := repairJSON(input)

	var parsed map[string]interface{}
	require.True(t, safeParse(repaired, &parsed))
	assert.Equal(t, "volcanoes", parsed["topic"])
}

func TestSafeParse_RetriesWithRepair(t *testing.T) {
	var parsed map[string]interface{}

	require.True(t, safeParse(`{"valid": true}`, &parsed))
	require.True(t, safeParse(`{"trailing": 1,}`, &parsed))
	assert.False(t, safeParse("not json at all", &parsed))
}
