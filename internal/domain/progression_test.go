package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestNextWeight(t *testing.T) {
	tests := []struct {
		name       string
		logged     []LoggedSet
		targetReps float64
		expected   string
	}{
		{
			name:       "no data means no suggestion",
			logged:     nil,
			targetReps: 8,
			expected:   "",
		},
		{
			name: "target hit earns full increment",
			logged: []LoggedSet{
				{Weight: 50, Reps: 8},
				{Weight: 50, Reps: 8},
				{Weight: 50, Reps: 8},
			},
			targetReps: 8,
			expected:   "52.5",
		},
		{
			name: "within one rep earns half increment",
			logged: []LoggedSet{
				{Weight: 50, Reps: 7},
				{Weight: 50, Reps: 7},
			},
			targetReps: 8,
			expected:   "51.3",
		},
		{
			name: "below target keeps the weight",
			logged: []LoggedSet{
				{Weight: 50, Reps: 5},
				{Weight: 50, Reps: 6},
			},
			targetReps: 8,
			expected:   "50.0",
		},
		{
			name: "averages decide the band",
			logged: []LoggedSet{
				{Weight: 40, Reps: 10},
				{Weight: 42.5, Reps: 9},
			},
			targetReps: 10,
			expected:   "42.5", // avg 41.25 + 1.25
		},
		{
			name: "beating the target still earns the full step",
			logged: []LoggedSet{
				{Weight: 60, Reps: 12},
			},
			targetReps: 10,
			expected:   "62.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SuggestNextWeight(tt.logged, tt.targetReps))
		})
	}
}
