package scoring

import (
	"context"
	"log/slog"
	"math"

	"github.com/phrazzld/triage-api/internal/redact"
)

// Engine computes priority scores for tasks. It prefers the configured
// Scorer and degrades to the local Fallback heuristic when the scorer is
// absent or fails; the degradation is logged but never surfaced to the
// caller. The scorer gets exactly one attempt per task.
type Engine struct {
	scorer Scorer
	logger *slog.Logger
}

// NewEngine creates a scoring engine. scorer may be nil, in which case
// every score comes from the fallback heuristic. If logger is nil, the
// default logger is used.
func NewEngine(scorer Scorer, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		scorer: scorer,
		logger: logger.With(slog.String("component", "scoring_engine")),
	}
}

// Score returns a priority score in [0.0, 1.0] for the given task. It is
// total: any scorer failure, including a non-finite result, resolves to the
// fallback value instead of an error.
func (e *Engine) Score(ctx context.Context, title, description string) float64 {
	if e.scorer == nil {
		e.logger.Warn("no scoring provider configured, using fallback heuristic",
			slog.String("task_title", title))
		return Fallback(title, description)
	}

	score, err := e.scorer.Score(ctx, title, description)
	if err != nil {
		e.logger.Error("scorer call failed, using fallback heuristic",
			slog.String("task_title", title),
			slog.String("error", redact.Error(err)))
		return Fallback(title, description)
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		e.logger.Error("scorer returned non-finite score, using fallback heuristic",
			slog.String("task_title", title),
			slog.Float64("score", score))
		return Fallback(title, description)
	}

	return Clamp(score)
}
