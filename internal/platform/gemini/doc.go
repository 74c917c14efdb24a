// Package gemini implements the scoring.Scorer interface using Google's
// Gemini API. The request is deliberately constrained: a short numeric
// answer, low temperature, and a finite timeout, so a slow or misbehaving
// provider degrades to the caller's fallback instead of hanging a request.
package gemini
