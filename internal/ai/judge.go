package ai

import "context"

// Verdict is the raw candidate decision produced by the backend before any
// validation. Decision may hold anything the model emitted; the review
// normalizer owns turning this into a well-formed record.
type Verdict struct {
	Decision    string `json:"decision"`
	Explanation string `json:"explanation"`
}

// Judge exposes AI-backed product review verdicts. Implementations must
// respect the context deadline and issue exactly one outbound call per
// invocation; retry policy belongs to the caller.
type Judge interface {
	Enabled() bool
	Review(ctx context.Context, productName, salesPage string) (Verdict, error)
}
