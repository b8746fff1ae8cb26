package ai

import (
	"encoding/json"
	"strings"
)

// ParseContent interprets a raw completion into a candidate verdict. It
// serves both response modes: schema-constrained output lands in the JSON
// branch, legacy free text falls through to a line scan that defaults to
// reject. The only failure mode is a payload that presents itself as JSON
// but cannot be decoded.
func ParseContent(content string) (Verdict, error) {
	trimmed := strings.TrimSpace(content)
	candidate := extractJSONBlock(trimmed)
	if strings.HasPrefix(candidate, "{") && strings.HasSuffix(candidate, "}") {
		var verdict Verdict
		if err := json.Unmarshal([]byte(candidate), &verdict); err == nil {
			return verdict, nil
		} else if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
			return Verdict{}, newError(KindMalformed, "parse response", err)
		}
	}
	return parseFreeText(content), nil
}

// parseFreeText scans the blob line by line for the first decisive token.
// A line mentioning approve without reject approves; a line mentioning
// reject rejects; no decisive line means reject. The whole blob becomes the
// candidate explanation.
func parseFreeText(content string) Verdict {
	decision := "reject"
	for _, line := range strings.Split(strings.ToLower(content), "\n") {
		if strings.Contains(line, "approve") && !strings.Contains(line, "reject") {
			decision = "approve"
			break
		}
		if strings.Contains(line, "reject") {
			break
		}
	}
	return Verdict{Decision: decision, Explanation: content}
}

// extractJSONBlock strips markdown fences and surrounding prose so a JSON
// object embedded in the completion can be decoded directly.
func extractJSONBlock(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.IndexRune(trimmed, '\n'); idx >= 0 {
			trimmed = trimmed[idx+1:]
		}
		if strings.HasSuffix(trimmed, "```") {
			trimmed = trimmed[:len(trimmed)-3]
		}
		trimmed = strings.TrimSpace(trimmed)
	}
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end >= start {
		return strings.TrimSpace(trimmed[start : end+1])
	}
	return trimmed
}
