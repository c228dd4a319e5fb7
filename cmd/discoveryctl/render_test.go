package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/completion"
	"github.com/jsamuelsen11/discovery-dashboard/internal/domain/progress"
)

func TestProgressBar_FillsProportionally(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		breakdown  progress.Breakdown
		wantFilled int
	}{
		{"empty", progress.Breakdown{Total: 10, Unanswered: 10}, 0},
		{"half", progress.Breakdown{Total: 10, Answered: 5, Unanswered: 5}, 10},
		{"full", progress.Breakdown{Total: 4, Answered: 4}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bar := progressBar(completion.DefaultPolicy().Score(tt.breakdown), 20)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, 20-tt.wantFilled, strings.Count(bar, "░"))
		})
	}
}

func TestProgressBar_DefaultResult(t *testing.T) {
	t.Parallel()

	bar := progressBar(completion.DefaultResult(), 10)
	assert.Equal(t, 10, strings.Count(bar, "░"))
	assert.Contains(t, statusBadge(completion.DefaultResult()), "unknown")
}
