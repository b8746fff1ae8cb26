package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Terms holds the ordered trigger phrase lists for the heuristic reviewer.
// Order is contractual: the first phrase matched in list order decides, and
// the reject list is always scanned before the approve list.
type Terms struct {
	Reject  []string `json:"reject"`
	Approve []string `json:"approve"`
}

// DefaultTerms returns the built-in trigger phrase lists.
func DefaultTerms() Terms {
	return Terms{
		Reject: []string{
			"guaranteed", "overnight", "100% guaranteed", "no risk",
			"lose 15kg", "turn €100 into €10,000", "miracle",
			"get rich quick", "secret formula", "doctors hate",
		},
		Approve: []string{
			"evidence-based", "research", "psychology", "behavioral science",
			"course", "education", "strategy", "methodology",
		},
	}
}

// LoadTerms reads trigger phrase lists from the provided JSON file.
func LoadTerms(path string) (Terms, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Terms{}, fmt.Errorf("read review terms: %w", err)
	}
	var terms Terms
	if err := json.Unmarshal(data, &terms); err != nil {
		return Terms{}, fmt.Errorf("unmarshal review terms: %w", err)
	}
	terms.Reject = normalizeTerms(terms.Reject)
	terms.Approve = normalizeTerms(terms.Approve)
	if len(terms.Reject) == 0 || len(terms.Approve) == 0 {
		return Terms{}, errors.New("review terms missing reject or approve list")
	}
	return terms, nil
}

func normalizeTerms(in []string) []string {
	out := make([]string, 0, len(in))
	for _, term := range in {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}

// Heuristic is the deterministic keyword reviewer used when the AI judge is
// disabled. It is a configuration-selected strategy, not a failure
// fallback: the engine picks it once at construction.
type Heuristic struct {
	terms Terms
}

// NewHeuristic constructs a heuristic reviewer over the supplied terms.
func NewHeuristic(terms Terms) *Heuristic {
	return &Heuristic{terms: terms}
}

// Classify scans the concatenated, lower-cased input against the reject
// list, then the approve list, then defaults to reject. Ambiguity never
// resolves to approval: a reject phrase wins even when approve phrases are
// also present.
func (h *Heuristic) Classify(input ReviewInput) DecisionRecord {
	content := strings.ToLower(input.ProductName + " " + input.SalesPage)

	for _, phrase := range h.terms.Reject {
		if strings.Contains(content, phrase) {
			explanation := fmt.Sprintf("Product contains suspicious claims: '%s' - requires manual review.", phrase)
			return DecisionRecord{
				Decision:    DecisionReject,
				Explanation: clampExplanation(explanation, DecisionReject),
			}
		}
	}

	for _, phrase := range h.terms.Approve {
		if strings.Contains(content, phrase) {
			return DecisionRecord{
				Decision:    DecisionApprove,
				Explanation: "Product appears educational and evidence-based.",
			}
		}
	}

	return DecisionRecord{
		Decision:    DecisionReject,
		Explanation: "Product requires manual review to ensure compliance and quality standards.",
	}
}
