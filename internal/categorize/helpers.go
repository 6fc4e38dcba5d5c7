package categorize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"smart-screenshot-organizer/internal/model"
)

// extractPriority scans the priority tiers in order; first matching tier wins.
func extractPriority(line string) model.Priority {
	lower := strings.ToLower(line)
	for _, tier := range priorityTiers {
		if containsAny(lower, tier.keywords) {
			return tier.priority
		}
	}
	return model.PriorityMedium
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bat\s+([A-Za-z][\w .'-]*)`),
	regexp.MustCompile(`(?i)\bin\s+([A-Za-z][\w .'-]*)`),
	regexp.MustCompile(`(?i)location:\s*(.+)`),
}

// extractLocation tries the location patterns in order and returns the first
// trimmed capture, or empty when none match.
func extractLocation(line string) string {
	for _, re := range locationPatterns {
		if m := re.FindStringSubmatch(line); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractEventType maps scheduling vocabulary to an event type.
func extractEventType(line string) model.EventType {
	lower := strings.ToLower(line)
	for _, et := range eventTypeKeywords {
		if containsAny(lower, et.keywords) {
			return et.eventType
		}
	}
	return model.EventMeeting
}

// extractRecurrence detects whether a line describes something recurring and,
// if so, tries to resolve the cadence. A recurring line with no resolvable
// cadence keeps IsRecurring true and an empty pattern.
func extractRecurrence(line string) (bool, model.RecurrencePattern) {
	lower := strings.ToLower(line)
	if !containsAny(lower, recurrenceKeywords) {
		return false, ""
	}
	for _, rp := range recurrencePatterns {
		if containsAny(lower, rp.keywords) {
			return true, rp.pattern
		}
	}
	return true, ""
}

// extractTags collects every tag whose keyword table matches the line.
// Each tag maps once, so no dedup is needed.
func extractTags(line string) []string {
	lower := strings.ToLower(line)
	tags := []string{}
	for _, tk := range tagKeywords {
		if containsAny(lower, tk.keywords) {
			tags = append(tags, tk.tag)
		}
	}
	return tags
}

// extractAchievementCategory maps milestone vocabulary to a bucket.
func extractAchievementCategory(line string) model.AchievementCategory {
	lower := strings.ToLower(line)
	for _, ac := range achievementCategories {
		if containsAny(lower, ac.keywords) {
			return ac.category
		}
	}
	return model.AchievementGeneral
}

var pointsRe = regexp.MustCompile(`(?i)\b(\d+)\s*points?\b`)

// extractPoints reads an explicit "<N> points" value, else falls back to a
// tier keyed on milestone/streak language.
func extractPoints(line string) int {
	if m := pointsRe.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	lower := strings.ToLower(line)
	switch {
	case containsAny(lower, []string{"milestone", "major", "level up"}):
		return pointsMilestone
	case containsAny(lower, []string{"streak", "consistent", "consistency"}):
		return pointsStreak
	default:
		return pointsDefault
	}
}

// cleanTitle strips a leading category-label prefix and a leading imperative
// verb, then capitalizes the first letter. An empty result becomes "Untitled".
func cleanTitle(line string) string {
	title := strings.TrimSpace(line)
	lower := strings.ToLower(title)

	for _, prefix := range titlePrefixes {
		if strings.HasPrefix(lower, prefix) {
			title = strings.TrimSpace(title[len(prefix):])
			lower = strings.ToLower(title)
			break
		}
	}

	for _, verb := range leadingVerbs {
		if strings.HasPrefix(lower, verb) {
			title = strings.TrimSpace(title[len(verb):])
			break
		}
	}

	if title == "" {
		return untitledFallback
	}

	runes := []rune(title)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
