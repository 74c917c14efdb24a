// Package scoring assigns every task a priority score in [0.0, 1.0].
//
// The Scorer interface is the boundary to an external language model; the
// Engine wraps a Scorer and guarantees totality: if no scorer is configured
// or the scorer fails in any way, the deterministic local Fallback heuristic
// supplies the score. Scoring never returns an error to the caller.
package scoring
