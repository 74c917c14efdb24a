package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const scoreDelta = 1e-9

func TestFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description string
		want        float64
	}{
		{
			// 0.5 baseline + 0.3 urgent (single trigger despite two
			// matches) + 0.1 length bonus (11/50 capped at 0.1)
			name:        "urgent keywords trigger once",
			title:       "URGENT: fix",
			description: "asap deadline",
			want:        0.9,
		},
		{
			// 0.5 + 0.2 ("priority") - 0.2 (low set, single trigger
			// despite "low", "optional", "someday") + 0.1 length bonus
			name:        "high and low sets apply independently",
			title:       "Low priority cleanup",
			description: "someday optional",
			want:        0.6,
		},
		{
			// 0.5 + 0.1 length bonus, no keywords
			name:        "no keywords",
			title:       "Write report",
			description: "",
			want:        0.6,
		},
		{
			// 0.5 + 0.3 + 0.2 - 0.2 + 0.1
			name:        "all three sets trigger",
			title:       "urgent high low",
			description: "",
			want:        0.9,
		},
		{
			// 0.5 + 0.3 + 0.2 + 0.1 = 1.1, clamped
			name:        "clamped to upper bound",
			title:       "urgent high priority critical",
			description: "due soon",
			want:        1.0,
		},
		{
			// Short title: bonus is len/50, not the 0.1 cap. 0.5 + 2/50
			name:        "short title bonus below cap",
			title:       "go",
			description: "",
			want:        0.54,
		},
		{
			// Keyword only in description
			name:        "description scanned too",
			title:       "Tidy up",
			description: "can be done later",
			want:        0.5 - 0.2 + 7.0/50,
		},
		{
			// Case-insensitive substring match
			name:        "mixed case keyword",
			title:       "DeAdLiNe approaching",
			description: "",
			want:        0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Fallback(tt.title, tt.description)
			assert.InDelta(t, tt.want, got, scoreDelta)
		})
	}
}

func TestFallbackIsDeterministic(t *testing.T) {
	t.Parallel()

	first := Fallback("URGENT: fix", "asap deadline")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Fallback("URGENT: fix", "asap deadline"))
	}
}

func TestFallbackAlwaysInRange(t *testing.T) {
	t.Parallel()

	inputs := []struct{ title, description string }{
		{"", ""},
		{"x", ""},
		{strings.Repeat("urgent high priority ", 50), strings.Repeat("critical asap ", 100)},
		{"low later optional someday", "low later optional someday"},
		{strings.Repeat("a", 10000), ""},
		{"unicode título ßß", "descripción"},
	}

	for _, in := range inputs {
		got := Fallback(in.title, in.description)
		assert.GreaterOrEqual(t, got, 0.0, "title=%q", in.title)
		assert.LessOrEqual(t, got, 1.0, "title=%q", in.title)
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Clamp(-0.5))
	assert.Equal(t, 1.0, Clamp(1.5))
	assert.Equal(t, 0.42, Clamp(0.42))
	assert.Equal(t, 0.0, Clamp(0.0))
	assert.Equal(t, 1.0, Clamp(1.0))
}
