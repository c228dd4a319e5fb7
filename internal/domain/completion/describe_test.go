package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "no questions",
			result: Calculate(report(0, 0, 0, 0)),
			want:   "No questions available yet",
		},
		{
			name:   "unknown",
			result: Calculate(nil),
			want:   "No questions available yet",
		},
		{
			name:   "complete",
			result: Calculate(report(20, 19, 0, 1)),
			want:   "Discovery complete! 19/20 questions answered",
		},
		{
			name:   "great progress with partial",
			result: Calculate(report(20, 13, 4, 3)),
			want:   "Great progress! 13 answered, 4 partial",
		},
		{
			name:   "great progress without partial",
			result: Calculate(report(10, 8, 0, 2)),
			want:   "Great progress! 8 answered",
		},
		{
			name:   "making progress",
			result: Calculate(report(10, 5, 0, 5)),
			want:   "Making progress: 5/10 questions completed",
		},
		{
			name:   "getting started",
			result: Calculate(report(50, 5, 2, 43)),
			want:   "Getting started: 5 questions answered so far",
		},
		{
			name:   "just beginning",
			result: Calculate(report(8, 0, 1, 7)),
			want:   "Just beginning: 8 questions ready for discovery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Describe(tt.result))
		})
	}
}

func TestDetailedBreakdown(t *testing.T) {
	t.Parallel()

	got := DetailedBreakdown(Calculate(report(20, 13, 4, 3)))

	want := "Total Questions: 20\n" +
		"Fully Answered: 13 (weight: 13.0)\n" +
		"Partially Answered: 4 (weight: 2.4)\n" +
		"Unanswered: 3\n" +
		"Weighted Score: 15.4/20"
	assert.Equal(t, want, got)
}
