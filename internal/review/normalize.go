package review

import (
	"fmt"
	"strings"

	"product-approval-ai/backend/internal/ai"
)

const (
	unknownDecisionExplanation = "Unable to determine approval status - rejected for safety"
	unprocessableExplanation   = "Unable to process review - rejected for safety"
)

// Normalize coerces a raw backend verdict into a well-formed record. It is
// total: an unrecognized decision token, a malformed payload, or an
// out-of-range explanation all resolve toward rejection rather than an
// error. Every backend verdict passes through here before it reaches a
// caller.
func Normalize(verdict ai.Verdict, parseErr error) DecisionRecord {
	if parseErr != nil {
		return DecisionRecord{Decision: DecisionReject, Explanation: unprocessableExplanation}
	}

	explanation := strings.TrimSpace(verdict.Explanation)
	decision, err := ParseDecision(verdict.Decision)
	if err != nil {
		decision = DecisionReject
		explanation = unknownDecisionExplanation
	}

	return DecisionRecord{Decision: decision, Explanation: clampExplanation(explanation, decision)}
}

// clampExplanation enforces the explanation length bounds: overlong text is
// truncated with an ellipsis, short or empty text is replaced with a
// templated message naming the resolved decision.
func clampExplanation(explanation string, decision Decision) string {
	runes := []rune(explanation)
	if len(runes) > maxExplanationLen {
		return string(runes[:maxExplanationLen-3]) + "..."
	}
	if len(runes) < minExplanationLen {
		return fmt.Sprintf("Product %s based on content analysis.", decision.past())
	}
	return explanation
}
