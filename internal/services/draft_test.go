package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetEntryDefaultsEmpty(t *testing.T) {
	drafts := NewDraftService(newFakeStore())
	ctx := context.Background()

	weight, reps, err := drafts.SetEntry(ctx, 0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "", weight)
	assert.Equal(t, "", reps)
}

func TestSaveSetFieldRoundTrip(t *testing.T) {
	drafts := NewDraftService(newFakeStore())
	ctx := context.Background()

	require.NoError(t, drafts.SaveSetField(ctx, 0, 2, 1, "w", "52.5"))
	require.NoError(t, drafts.SaveSetField(ctx, 0, 2, 1, "r", "10"))

	weight, reps, err := drafts.SetEntry(ctx, 0, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, "52.5", weight)
	assert.Equal(t, "10", reps)

	// Other sets are untouched.
	weight, reps, err = drafts.SetEntry(ctx, 0, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "", weight)
	assert.Equal(t, "", reps)
}

func TestActiveDatesDefaultToToday(t *testing.T) {
	drafts := NewDraftService(newFakeStore())
	drafts.SetNow(fixedNow("2024-01-15T10:30:00Z"))
	ctx := context.Background()

	for _, get := range []func(context.Context) (string, error){
		drafts.ActiveRunDate,
		drafts.ActiveNutritionDate,
		drafts.ActiveBodyDate,
	} {
		date, err := get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", date)
	}
}

func TestSetActiveRunDateOverrides(t *testing.T) {
	drafts := NewDraftService(newFakeStore())
	drafts.SetNow(fixedNow("2024-01-15T10:30:00Z"))
	ctx := context.Background()

	require.NoError(t, drafts.SetActiveRunDate(ctx, "2024-01-10"))

	date, err := drafts.ActiveRunDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", date)
}

func TestRunDraftRoundTrip(t *testing.T) {
	drafts := NewDraftService(newFakeStore())
	ctx := context.Background()

	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "distance", "5"))
	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "time", "25:00"))
	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "effort", "Easy"))

	d, err := drafts.RunDraftFor(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "5", d.Distance)
	assert.Equal(t, "25:00", d.Time)
	assert.Equal(t, "Easy", d.Effort)
	assert.Equal(t, "", d.Notes)

	// A different date has its own draft.
	other, err := drafts.RunDraftFor(ctx, "2024-01-16")
	require.NoError(t, err)
	assert.Equal(t, RunDraft{}, other)
}

func TestClearRunDraftKeepsMarker(t *testing.T) {
	drafts := NewDraftService(newFakeStore())
	ctx := context.Background()

	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "distance", "5"))
	require.NoError(t, drafts.MarkRunDone(ctx, "2024-01-15"))
	require.NoError(t, drafts.ClearRunDraft(ctx, "2024-01-15"))

	d, err := drafts.RunDraftFor(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, RunDraft{}, d)

	done, err := drafts.IsRunDone(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.True(t, done)
}

func TestIsRunDoneDefaultsFalse(t *testing.T) {
	drafts := NewDraftService(newFakeStore())

	done, err := drafts.IsRunDone(context.Background(), "2024-01-15")
	require.NoError(t, err)
	assert.False(t, done)
}

func TestNutritionHabitFlagsDefaultNo(t *testing.T) {
	drafts := NewDraftService(newFakeStore())

	d, err := drafts.NutritionDraftFor(context.Background(), "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "No", d.Protein)
	assert.Equal(t, "No", d.Water)
	assert.Equal(t, "No", d.Veg)
	assert.Equal(t, "No", d.Steps)
	assert.Equal(t, "", d.StepsCount)
	assert.Equal(t, "", d.Energy)
	assert.Equal(t, "", d.Notes)
}

func TestToggleNutritionFlag(t *testing.T) {
	drafts := NewDraftService(newFakeStore())
	ctx := context.Background()

	require.NoError(t, drafts.ToggleNutritionFlag(ctx, "2024-01-15", "protein"))
	d, err := drafts.NutritionDraftFor(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "Yes", d.Protein)

	require.NoError(t, drafts.ToggleNutritionFlag(ctx, "2024-01-15", "protein"))
	d, err = drafts.NutritionDraftFor(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "No", d.Protein)
}

func TestBodyDraftRoundTrip(t *testing.T) {
	drafts := NewDraftService(newFakeStore())
	ctx := context.Background()

	require.NoError(t, drafts.SaveBodyField(ctx, "2024-01-15", "weight", "63.2"))
	require.NoError(t, drafts.SaveBodyField(ctx, "2024-01-15", "waist", "74"))

	d, err := drafts.BodyDraftFor(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "63.2", d.Weight)
	assert.Equal(t, "74", d.Waist)
	assert.Equal(t, "", d.Hips)
}
