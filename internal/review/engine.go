package review

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"product-approval-ai/backend/internal/ai"
)

// Engine derives one decision record per review request. The strategy is
// fixed at construction: a backend judge when one is configured, otherwise
// the deterministic heuristic. The engine holds no mutable state, so
// concurrent reviews are fully independent.
type Engine struct {
	judge     ai.Judge
	heuristic *Heuristic
}

// NewEngine wires the engine with its strategy. A nil or disabled judge
// selects the heuristic.
func NewEngine(judge ai.Judge, heuristic *Heuristic) *Engine {
	if judge != nil && !judge.Enabled() {
		judge = nil
	}
	if heuristic == nil {
		heuristic = NewHeuristic(DefaultTerms())
	}
	return &Engine{judge: judge, heuristic: heuristic}
}

// Mock reports whether the engine runs on the heuristic instead of a
// backend judge.
func (e *Engine) Mock() bool {
	return e.judge == nil
}

// Review produces a validated decision for the input. Backend verdicts pass
// through the normalizer; uninterpretable payloads resolve to the safe
// reject record; invoke failures are classified once and returned as a
// *Failure with a non-leaking message.
func (e *Engine) Review(ctx context.Context, input ReviewInput) (DecisionRecord, error) {
	if e.judge == nil {
		return e.heuristic.Classify(input), nil
	}

	verdict, err := e.judge.Review(ctx, input.ProductName, input.SalesPage)
	if err != nil {
		var backendErr *ai.Error
		if errors.As(err, &backendErr) && backendErr.Kind == ai.KindMalformed {
			logrus.WithError(err).Warn("uninterpretable backend verdict")
			return Normalize(ai.Verdict{}, err), nil
		}
		failure := newFailure(err)
		logrus.WithError(err).WithField("class", failure.Class.String()).Error("review backend failure")
		return DecisionRecord{}, failure
	}

	return Normalize(verdict, nil), nil
}
