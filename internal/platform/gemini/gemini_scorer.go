package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/triage-api/internal/config"
	"github.com/phrazzld/triage-api/internal/scoring"
)

// maxScoreTokens bounds the model's output. The expected answer is a single
// number like "0.75", so a handful of tokens is plenty.
const maxScoreTokens = 16

// scoreTemperature keeps sampling deterministic-leaning to reduce variance
// between calls for the same task.
const scoreTemperature = 0.2

// promptTemplate embeds the task title and description verbatim and asks
// for a bare number. Title and description are injected in that order.
const promptTemplate = `Analyze the following task and determine its priority score on a scale of 0.0 to 1.0, where:
- 0.0-0.3 = Low priority (can be done later, not urgent)
- 0.4-0.6 = Medium priority (should be done soon)
- 0.7-1.0 = High priority (urgent, critical, or time-sensitive)

Task Title: %s
Task Description: %s

Consider factors like:
- Urgency and deadlines
- Importance and impact
- Dependencies on other tasks
- Time sensitivity

Respond with ONLY a number between 0.0 and 1.0 (e.g., 0.75), nothing else.`

// GeminiScorer implements the scoring.Scorer interface using Google's
// Gemini API to score task priority.
type GeminiScorer struct {
	logger  *slog.Logger
	client  *genai.Client
	model   string
	timeout time.Duration
}

// Ensure GeminiScorer implements scoring.Scorer interface
var _ scoring.Scorer = (*GeminiScorer)(nil)

// NewGeminiScorer creates a new GeminiScorer with the provided dependencies.
// Returns an error if the configuration is incomplete or the client cannot
// be initialized.
func NewGeminiScorer(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiScorer, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", scoring.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", scoring.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", scoring.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			scoring.ErrInvalidConfig, err)
	}

	return &GeminiScorer{
		logger:  logger.With(slog.String("component", "gemini_scorer")),
		client:  client,
		model:   cfg.ModelName,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}, nil
}

// Score implements scoring.Scorer. It makes a single bounded call to the
// Gemini API and parses the response as a float in [0.0, 1.0]. No retries:
// on any failure the caller's fallback takes over.
func (g *GeminiScorer) Score(ctx context.Context, title, description string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	prompt := buildPrompt(title, description)

	g.logger.DebugContext(ctx, "requesting priority score",
		slog.String("model", g.model),
		slog.Int("prompt_length", len(prompt)))

	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](scoreTemperature),
			MaxOutputTokens: maxScoreTokens,
		},
	)
	if err != nil {
		return 0, fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return 0, fmt.Errorf("%w: empty response", scoring.ErrInvalidResponse)
	}

	score, err := parseScore(text)
	if err != nil {
		return 0, err
	}

	g.logger.DebugContext(ctx, "priority score received",
		slog.Float64("score", score))

	return score, nil
}

// buildPrompt renders the scoring prompt with the task title and
// description embedded verbatim.
func buildPrompt(title, description string) string {
	if description == "" {
		description = "No description provided"
	}
	return fmt.Sprintf(promptTemplate, title, description)
}

// parseScore parses the model's text response as a float and clamps it to
// [0.0, 1.0]. Anything that is not a finite number is an invalid response.
func parseScore(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)

	score, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric answer %q", scoring.ErrInvalidResponse, trimmed)
	}

	// ParseFloat accepts "NaN" and "Inf" spellings
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("%w: non-finite answer %q", scoring.ErrInvalidResponse, trimmed)
	}

	return scoring.Clamp(score), nil
}
