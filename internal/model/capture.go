package model

import "time"

// AnalysisSource tells which extraction strategy produced a capture's result.
type AnalysisSource string

const (
	SourceRuleBased AnalysisSource = "rule_based"
	SourceAI        AnalysisSource = "ai"
)

// Capture is a processed screenshot record: the OCR input plus the
// categorized result chosen by the merge layer. Persistence of these records
// is the storage collaborator's job; the core only builds them.
type Capture struct {
	ID          string
	UserID      string
	Recognition RecognizedText
	Result      CategorizedResult
	Source      AnalysisSource
	Summary     string // AI summary when Source is ai, empty otherwise
	CreatedAt   time.Time
}
