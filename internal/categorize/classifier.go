package categorize

import (
	"strings"

	"smart-screenshot-organizer/internal/model"
	"smart-screenshot-organizer/pkg/datemath"
)

// classificationRules is the category precedence chain: evaluated in order,
// first match wins. Achievements come first because their phrasing is the
// most specific and would otherwise be absorbed by "task/goal" todo language.
var classificationRules = []struct {
	category model.Category
	keywords []string
}{
	{model.CategoryAchievement, achievementKeywords},
	{model.CategoryReminder, reminderKeywords},
	{model.CategoryEvent, eventKeywords},
	{model.CategoryTodo, todoKeywords},
}

// Classify assigns a line to exactly one category. Lines with no category
// keyword but a recognizable time or date expression fall through to reminder
// (when they mention "remind") or event; everything else is uncategorized.
func Classify(line string) model.Category {
	lower := strings.ToLower(line)

	for _, rule := range classificationRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}

	if datemath.HasTemporalPattern(lower) {
		if strings.Contains(lower, "remind") {
			return model.CategoryReminder
		}
		return model.CategoryEvent
	}

	return model.CategoryUncategorized
}

// containsAny reports whether any keyword occurs in the lowercased text.
func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// countMatches counts how many keywords occur in the lowercased text.
func countMatches(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}
