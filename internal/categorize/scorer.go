package categorize

import (
	"strings"

	"smart-screenshot-organizer/internal/model"
	"smart-screenshot-organizer/pkg/datemath"
)

// Rule-based extraction never reports near-certainty.
const maxRuleConfidence = 95

// Score derives a per-item confidence from the OCR base confidence, the
// category's keyword density in the line, and the presence of temporal
// information. The 0.8 multiplier keeps OCR confidence a ceiling: line-level
// classification adds its own uncertainty on top of recognition.
func Score(line string, category model.Category, baseConfidence float64) float64 {
	lower := strings.ToLower(line)

	score := baseConfidence * 0.8
	score += 5 * float64(countMatches(lower, keywordsByCategory[category]))
	if datemath.HasTemporalPattern(lower) {
		score += 10
	}

	return clamp(score, 0, maxRuleConfidence)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
