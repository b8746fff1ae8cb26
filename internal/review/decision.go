package review

import (
	"errors"
	"fmt"
	"strings"
)

// Decision is the binary review verdict.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// ParseDecision resolves a raw token into a Decision. Matching is
// case-insensitive and strict; anything else is an error so callers must
// choose the safe default themselves.
func ParseDecision(raw string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(DecisionApprove):
		return DecisionApprove, nil
	case string(DecisionReject):
		return DecisionReject, nil
	}
	return "", fmt.Errorf("unknown decision %q", raw)
}

// past returns the past-tense form used in templated explanations.
func (d Decision) past() string {
	if d == DecisionApprove {
		return "approved"
	}
	return "rejected"
}

// Explanation length bounds every DecisionRecord must satisfy.
const (
	minExplanationLen = 10
	maxExplanationLen = 500
)

// DecisionRecord is the validated verdict returned to the caller. Records
// are only built by the normalizer or the heuristic, so the explanation
// bounds hold for every value in circulation.
type DecisionRecord struct {
	Decision    Decision `json:"decision"`
	Explanation string   `json:"explanation"`
}

// ReviewInput is the trimmed, non-empty pair under review.
type ReviewInput struct {
	ProductName string
	SalesPage   string
}

// NewReviewInput trims both fields and rejects empty or whitespace-only
// values before the engine ever runs.
func NewReviewInput(productName, salesPage string) (ReviewInput, error) {
	productName = strings.TrimSpace(productName)
	salesPage = strings.TrimSpace(salesPage)
	if productName == "" {
		return ReviewInput{}, errors.New("product name cannot be empty or just whitespace")
	}
	if salesPage == "" {
		return ReviewInput{}, errors.New("sales page content cannot be empty or just whitespace")
	}
	return ReviewInput{ProductName: productName, SalesPage: salesPage}, nil
}
