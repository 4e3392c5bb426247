package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	singleQuotedRe = regexp.MustCompile(`'([^']*?)'`)
	trailingComma  = regexp.MustCompile(`,\s*([}\]])`)
)

// extractJSONObject slices the first '{' through the last '}' out of an LLM
// reply, dropping any prose around the payload.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(text, "}")
	if end == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

func extractJSONArray(text string) string {
	start := strings.Index(text, "[")
	if start == -1 {
		return ""
	}
	end := strings.LastIndex(text, "]")
	if end == -1 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// repairJSON fixes the malformations models produce most often: markdown
// fences, single-quoted strings, and trailing commas.
func repairJSON(text string) string {
	repaired := strings.ReplaceAll(text, "```json", "")
	repaired = strings.ReplaceAll(repaired, "```", "")
	repaired = singleQuotedRe.ReplaceAllString(repaired, `"$1"`)
	repaired = trailingComma.ReplaceAllString(repaired, "$1")
	return repaired
}

// safeParse unmarshals into dest, retrying once on a repaired copy.
func safeParse(text string, dest interface{}) bool {
	if json.Unmarshal([]byte(text), dest) == nil {
		return true
	}
	return json.Unmarshal([]byte(repairJSON(text)), dest) == nil
}
