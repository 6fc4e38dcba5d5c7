package categorize

import "smart-screenshot-organizer/internal/model"

// Minimum non-whitespace characters for a segmented line to be kept.
const minLineLength = 3

// Title used when cleaning strips a line down to nothing.
const untitledFallback = "Untitled"

// Keyword tables are static configuration: matching is case-insensitive
// substring search, no tokenization or stemming. Ambiguous lines resolve to
// the earliest-matching, most specific category (see classificationRules).

var achievementKeywords = []string{
	"achievement",
	"unlocked",
	"milestone",
	"badge",
	"streak",
	"level up",
	"trophy",
	"award",
	"earned",
	"congratulations",
}

var reminderKeywords = []string{
	"remind",
	"don't forget",
	"dont forget",
	"remember to",
	"follow up",
	"notify",
	"alert",
}

var eventKeywords = []string{
	"meeting",
	"appointment",
	"conference",
	"lunch",
	"dinner",
	"interview",
	"workshop",
	"seminar",
	"session",
	"party",
	"webinar",
}

var todoKeywords = []string{
	"todo",
	"to-do",
	"task",
	"complete",
	"finish",
	"submit",
	"due",
	"deadline",
	"buy",
	"call",
	"email",
	"send",
	"review",
	"pay",
	"order",
	"fix",
	"clean",
	"pick up",
}

// keywordsByCategory feeds the confidence scorer's match count.
var keywordsByCategory = map[model.Category][]string{
	model.CategoryAchievement: achievementKeywords,
	model.CategoryReminder:    reminderKeywords,
	model.CategoryEvent:       eventKeywords,
	model.CategoryTodo:        todoKeywords,
}

// priorityTiers are scanned in order; the first tier with a matching keyword
// wins.
var priorityTiers = []struct {
	priority model.Priority
	keywords []string
}{
	{model.PriorityUrgent, []string{"urgent", "asap", "immediately", "critical"}},
	{model.PriorityHigh, []string{"high priority", "important", "priority"}},
	{model.PriorityLow, []string{"low priority", "whenever", "someday", "eventually"}},
}

// eventTypeKeywords map scheduling vocabulary to an event type;
// unmatched lines default to meeting.
var eventTypeKeywords = []struct {
	eventType model.EventType
	keywords  []string
}{
	{model.EventAppointment, []string{"appointment", "doctor", "dentist", "checkup"}},
	{model.EventPersonal, []string{"personal", "family", "birthday", "anniversary"}},
	{model.EventTask, []string{"task", "work", "deadline"}},
	{model.EventMeeting, []string{"meeting", "conference", "standup", "sync"}},
}

var recurrenceKeywords = []string{"daily", "weekly", "monthly", "every", "recurring", "repeat"}

// recurrencePatterns resolve a detected recurring line to a cadence; a line
// may be recurring with no resolvable cadence.
var recurrencePatterns = []struct {
	pattern  model.RecurrencePattern
	keywords []string
}{
	{model.RecurrenceDaily, []string{"daily", "every day"}},
	{model.RecurrenceWeekly, []string{"weekly", "every week"}},
	{model.RecurrenceMonthly, []string{"monthly", "every month"}},
}

// achievementCategories resolve the achievement bucket; unmatched default to
// general.
var achievementCategories = []struct {
	category model.AchievementCategory
	keywords []string
}{
	{model.AchievementProductivity, []string{"task", "productive", "productivity"}},
	{model.AchievementConsistency, []string{"streak", "consistent", "consistency"}},
	{model.AchievementGoals, []string{"goal", "target"}},
}

// achievementIcons are the display icons per achievement category.
var achievementIcons = map[model.AchievementCategory]string{
	model.AchievementProductivity: "⚡",
	model.AchievementConsistency:  "🔥",
	model.AchievementGoals:        "🎯",
	model.AchievementGeneral:      "🏆",
}

// Default point tiers when no explicit "<N> points" appears in the line.
const (
	pointsMilestone = 100
	pointsStreak    = 50
	pointsDefault   = 25
)

// tagKeywords is the fixed keyword→tag table; a line may collect several tags.
var tagKeywords = []struct {
	tag      string
	keywords []string
}{
	{"work", []string{"work", "project", "office", "client"}},
	{"personal", []string{"personal", "family", "home"}},
	{"health", []string{"health", "doctor", "gym", "workout"}},
	{"shopping", []string{"shopping", "buy", "purchase", "grocery"}},
	{"urgent", []string{"urgent", "asap"}},
}

// titlePrefixes are category labels stripped from the front of a title.
var titlePrefixes = []string{
	"todo:",
	"to-do:",
	"task:",
	"reminder:",
	"event:",
	"achievement:",
	"note:",
}

// leadingVerbs are imperative openers stripped from the front of a title.
var leadingVerbs = []string{
	"complete ",
	"finish ",
	"need to ",
	"do ",
}
