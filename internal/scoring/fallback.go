package scoring

import "strings"

// Keyword sets scanned by the fallback heuristic. Each set contributes its
// adjustment at most once, and the three scans are independent of each other.
var (
	urgentKeywords       = []string{"urgent", "asap", "critical", "important", "deadline", "due"}
	highPriorityKeywords = []string{"high", "priority", "soon", "quick"}
	lowPriorityKeywords  = []string{"low", "later", "optional", "someday"}
)

// Fallback computes a deterministic priority score from the task title and
// description alone. It is a pure function and cannot fail, which makes it
// the recovery path for every scorer error.
//
// The heuristic starts from a 0.5 baseline, adds 0.3 if any urgent keyword
// appears, adds 0.2 if any high-priority keyword appears, subtracts 0.2 if
// any low-priority keyword appears (each set triggering at most once), adds
// a title-length bonus of min(len(title)/50, 0.1), and clamps the result
// to [0.0, 1.0]. Keyword matching is a case-insensitive substring scan over
// title and description.
func Fallback(title, description string) float64 {
	titleLower := strings.ToLower(title)
	descLower := strings.ToLower(description)

	contains := func(keyword string) bool {
		return strings.Contains(titleLower, keyword) || strings.Contains(descLower, keyword)
	}

	score := 0.5

	for _, keyword := range urgentKeywords {
		if contains(keyword) {
			score += 0.3
			break
		}
	}

	for _, keyword := range highPriorityKeywords {
		if contains(keyword) {
			score += 0.2
			break
		}
	}

	for _, keyword := range lowPriorityKeywords {
		if contains(keyword) {
			score -= 0.2
			break
		}
	}

	score += min(float64(len(title))/50, 0.1)

	return Clamp(score)
}

// Clamp restricts a score to the [0.0, 1.0] range.
func Clamp(score float64) float64 {
	if score < 0.0 {
		return 0.0
	}
	if score > 1.0 {
		return 1.0
	}
	return score
}
