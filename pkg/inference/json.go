package inference

import (
	"regexp"
	"strings"
)

var (
	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
	jsonArrayPattern  = regexp.MustCompile(`(?s)\[.*\]`)
)

// ExtractJSONObject pulls the first JSON object out of a model completion,
// stripping markdown fences and surrounding prose.
func ExtractJSONObject(text string) string {
	return extract(text, jsonObjectPattern)
}

// ExtractJSONArray pulls the first JSON array out of a model completion.
func ExtractJSONArray(text string) string {
	return extract(text, jsonArrayPattern)
}

func extract(text string, pattern *regexp.Regexp) string {
	text = stripFences(text)
	if match := pattern.FindString(text); match != "" {
		return match
	}
	return text
}

func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
