package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetKey(t *testing.T) {
	assert.Equal(t, "d0-e2-s1-w", SetKey(0, 2, 1, FieldWeight))
	assert.Equal(t, "d6-e0-s3-r", SetKey(6, 0, 3, FieldReps))
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "run_2024-01-15_distance", DateKey(PrefixRun, "2024-01-15", "distance"))
	assert.Equal(t, "nutri_2024-01-15_protein", DateKey(PrefixNutrition, "2024-01-15", "protein"))
	assert.Equal(t, "body_2024-01-15_weight", DateKey(PrefixBody, "2024-01-15", "weight"))
}

func TestRunDoneKey(t *testing.T) {
	assert.Equal(t, "run_2024-01-15_done", RunDoneKey("2024-01-15"))
}
