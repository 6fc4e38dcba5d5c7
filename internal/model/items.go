package model

import "time"

// Category is the classification bucket a line is assigned to.
type Category string

const (
	CategoryTodo          Category = "todo"
	CategoryEvent         Category = "event"
	CategoryReminder      Category = "reminder"
	CategoryAchievement   Category = "achievement"
	CategoryUncategorized Category = "uncategorized"
)

// Priority levels for todos and reminders.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// TodoStatus is the lifecycle state of an extracted todo.
type TodoStatus string

const (
	StatusPending    TodoStatus = "pending"
	StatusInProgress TodoStatus = "in_progress"
	StatusCompleted  TodoStatus = "completed"
)

// EventType categorizes extracted events.
type EventType string

const (
	EventMeeting     EventType = "meeting"
	EventAppointment EventType = "appointment"
	EventTask        EventType = "task"
	EventReminder    EventType = "reminder"
	EventPersonal    EventType = "personal"
)

// EventColors are the fixed calendar display colors per event type.
var EventColors = map[EventType]string{
	EventMeeting:     "#3B82F6",
	EventAppointment: "#8B5CF6",
	EventTask:        "#F59E0B",
	EventReminder:    "#EF4444",
	EventPersonal:    "#10B981",
}

// RecurrencePattern is the cadence of a recurring reminder.
type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
)

// AchievementCategory groups extracted achievements.
type AchievementCategory string

const (
	AchievementProductivity AchievementCategory = "productivity"
	AchievementConsistency  AchievementCategory = "consistency"
	AchievementGoals        AchievementCategory = "goals"
	AchievementGeneral      AchievementCategory = "general"
)

// ExtractedTodo is an actionable item pulled from one OCR line.
// SourceText is always the exact trimmed line the item came from.
type ExtractedTodo struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      TodoStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Tags        []string   `json:"tags"`
	Confidence  float64    `json:"confidence"`
	SourceText  string     `json:"source_text"`
}

// ExtractedEvent is a scheduled item pulled from one OCR line.
type ExtractedEvent struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location,omitempty"`
	EventType   EventType `json:"event_type"`
	Color       string    `json:"color"`
	IsAllDay    bool      `json:"is_all_day"`
	Confidence  float64   `json:"confidence"`
	SourceText  string    `json:"source_text"`
}

// ExtractedReminder is an alert item pulled from one OCR line.
type ExtractedReminder struct {
	Title             string            `json:"title"`
	Message           string            `json:"message,omitempty"`
	RemindAt          time.Time         `json:"remind_at"`
	IsRecurring       bool              `json:"is_recurring"`
	RecurrencePattern RecurrencePattern `json:"recurrence_pattern,omitempty"`
	Priority          Priority          `json:"priority"`
	Confidence        float64           `json:"confidence"`
	SourceText        string            `json:"source_text"`
}

// ExtractedAchievement is a milestone/badge item pulled from one OCR line.
type ExtractedAchievement struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Points      int                 `json:"points"`
	Confidence  float64             `json:"confidence"`
	SourceText  string              `json:"source_text"`
}

// CategorizedResult buckets every segmented line into exactly one category.
// Lines matching no category land verbatim in Uncategorized.
type CategorizedResult struct {
	Todos         []ExtractedTodo        `json:"todos"`
	Events        []ExtractedEvent       `json:"events"`
	Reminders     []ExtractedReminder    `json:"reminders"`
	Achievements  []ExtractedAchievement `json:"achievements"`
	Uncategorized []string               `json:"uncategorized"`
}

// NewCategorizedResult returns a result with all buckets allocated empty, so
// JSON output carries [] rather than null.
func NewCategorizedResult() CategorizedResult {
	return CategorizedResult{
		Todos:         []ExtractedTodo{},
		Events:        []ExtractedEvent{},
		Reminders:     []ExtractedReminder{},
		Achievements:  []ExtractedAchievement{},
		Uncategorized: []string{},
	}
}

// ItemCount returns the number of extracted items across all category buckets,
// excluding uncategorized lines.
func (r CategorizedResult) ItemCount() int {
	return len(r.Todos) + len(r.Events) + len(r.Reminders) + len(r.Achievements)
}
