package categorize

import (
	"testing"

	"smart-screenshot-organizer/internal/model"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		category model.Category
		base     float64
		want     float64
	}{
		{
			// 85.5*0.8 + 5*1 ("meeting") + 10 (temporal)
			name:     "Event with temporal info",
			line:     "Meeting with team tomorrow at 2 PM",
			category: model.CategoryEvent,
			base:     85.5,
			want:     83.4,
		},
		{
			// 90*0.8 + 5*1 ("buy"), no temporal
			name:     "Todo without temporal info",
			line:     "Buy groceries",
			category: model.CategoryTodo,
			base:     90,
			want:     77,
		},
		{
			// 80*0.8 + 5*2 ("complete" + "due") + 10
			name:     "Keyword density counts per keyword",
			line:     "Complete the report due tomorrow",
			category: model.CategoryTodo,
			base:     80,
			want:     84,
		},
		{
			name:     "Clamped at 95",
			line:     "urgent meeting appointment conference lunch dinner interview workshop tomorrow",
			category: model.CategoryEvent,
			base:     100,
			want:     95,
		},
		{
			name:     "Zero base stays non-negative",
			line:     "random text",
			category: model.CategoryUncategorized,
			base:     0,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.line, tt.category, tt.base)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Score(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestScoreRange(t *testing.T) {
	lines := []string{
		"Meeting tomorrow",
		"urgent urgent urgent task task due due 5pm today tomorrow",
		"",
		"x",
	}
	bases := []float64{0, 42.5, 100, 150}

	for _, line := range lines {
		for _, base := range bases {
			got := Score(line, Classify(line), base)
			if got < 0 || got > maxRuleConfidence {
				t.Errorf("Score(%q, base=%v) = %v, outside [0, %d]", line, base, got, maxRuleConfidence)
			}
		}
	}
}
