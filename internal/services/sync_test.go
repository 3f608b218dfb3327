package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/ferro/internal/domain"
)

func newSyncFixture() (*fakeStore, *fakeSink, *DraftService, *SyncService) {
	store := newFakeStore()
	sink := &fakeSink{}
	drafts := NewDraftService(store)
	drafts.SetNow(fixedNow("2024-01-15T10:30:00Z"))
	workout := NewWorkoutService(store, drafts)
	sync := NewSyncService(store, sink, drafts, workout, "Alana")
	sync.SetNow(fixedNow("2024-01-15T10:30:00Z"))
	return store, sink, drafts, sync
}

func TestSyncSetsBuildsRowsFromDrafts(t *testing.T) {
	store, sink, drafts, sync := newSyncFixture()
	ctx := context.Background()

	// Back Squat set 1 and Romanian Deadlift set 2 on day 0.
	require.NoError(t, drafts.SaveSetField(ctx, 0, 0, 1, domain.FieldWeight, "50"))
	require.NoError(t, drafts.SaveSetField(ctx, 0, 0, 1, domain.FieldReps, "10"))
	require.NoError(t, drafts.SaveSetField(ctx, 0, 1, 2, domain.FieldWeight, "40"))

	result, err := sync.SyncSets(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LogSets, result.Domain)
	assert.Equal(t, 2, result.RowCount)

	rows, err := store.LoadLog(ctx, domain.LogSets)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alana|2024-01-15|D0|Lower Body Strength|Back Squat|set1", rows[0].ID())
	assert.Equal(t, "Alana|2024-01-15|D0|Lower Body Strength|Romanian Deadlift|set2", rows[1].ID())

	require.Len(t, sink.pushes, 1)
	assert.Len(t, sink.pushes[0].SetRows, 2)
	assert.Empty(t, sink.pushes[0].RunRows)
}

func TestSyncSetsSameDayOverwrites(t *testing.T) {
	store, _, drafts, sync := newSyncFixture()
	ctx := context.Background()

	require.NoError(t, drafts.SaveSetField(ctx, 0, 0, 1, domain.FieldWeight, "50"))
	_, err := sync.SyncSets(ctx)
	require.NoError(t, err)

	require.NoError(t, drafts.SaveSetField(ctx, 0, 0, 1, domain.FieldWeight, "52.5"))
	_, err = sync.SyncSets(ctx)
	require.NoError(t, err)

	rows, err := store.LoadLog(ctx, domain.LogSets)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "52.5", rows[0][7])
}

func TestSyncSetsNothingLoggedIsNoOp(t *testing.T) {
	store, sink, _, sync := newSyncFixture()
	ctx := context.Background()

	result, err := sync.SyncSets(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.RowCount)

	rows, err := store.LoadLog(ctx, domain.LogSets)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Empty(t, sink.pushes)
}

func TestSyncRunRequiresDistanceAndTime(t *testing.T) {
	_, sink, drafts, sync := newSyncFixture()
	ctx := context.Background()

	_, err := sync.SyncRun(ctx)
	assert.ErrorIs(t, err, domain.ErrRunDraftIncomplete)

	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "distance", "5"))
	_, err = sync.SyncRun(ctx)
	assert.ErrorIs(t, err, domain.ErrRunDraftIncomplete)

	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "time", "  "))
	_, err = sync.SyncRun(ctx)
	assert.ErrorIs(t, err, domain.ErrRunDraftIncomplete)

	assert.Empty(t, sink.pushes)
}

func TestSyncRunMarksDoneAndClearsDraft(t *testing.T) {
	store, sink, drafts, sync := newSyncFixture()
	ctx := context.Background()

	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "distance", "5"))
	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "time", "25:00"))
	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "effort", "Easy"))

	result, err := sync.SyncRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)

	rows, err := store.LoadLog(ctx, domain.LogRuns)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alana|RUN|2024-01-15T10:30:00Z", rows[0].ID())
	assert.Equal(t, "5:00 /km", rows[0][7])

	done, err := drafts.IsRunDone(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.True(t, done)

	draft, err := drafts.RunDraftFor(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, RunDraft{}, draft)

	require.Len(t, sink.pushes, 1)
	assert.Len(t, sink.pushes[0].RunRows, 1)
}

func TestSyncRunFailedPushKeepsDraft(t *testing.T) {
	store, sink, drafts, sync := newSyncFixture()
	sink.err = errors.New("endpoint unreachable")
	ctx := context.Background()

	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "distance", "5"))
	require.NoError(t, drafts.SaveRunField(ctx, "2024-01-15", "time", "25:00"))

	_, err := sync.SyncRun(ctx)
	require.Error(t, err)

	// Local history is already durable; the draft and the marker are
	// untouched so a retry can rebuild the same row.
	rows, err := store.LoadLog(ctx, domain.LogRuns)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	done, err := drafts.IsRunDone(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.False(t, done)

	draft, err := drafts.RunDraftFor(ctx, "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "5", draft.Distance)
	assert.Equal(t, "25:00", draft.Time)
}

func TestSyncNutritionDefaultsToNoFlags(t *testing.T) {
	store, sink, _, sync := newSyncFixture()
	ctx := context.Background()

	result, err := sync.SyncNutrition(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)

	rows, err := store.LoadLog(ctx, domain.LogNutrition)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alana|NUTRITION|2024-01-15", rows[0].ID())
	assert.Equal(t, "No", rows[0][3])
	assert.Equal(t, "No", rows[0][6])

	require.Len(t, sink.pushes, 1)
}

func TestSyncNutritionSameDayOverwrites(t *testing.T) {
	store, _, drafts, sync := newSyncFixture()
	ctx := context.Background()

	_, err := sync.SyncNutrition(ctx)
	require.NoError(t, err)

	require.NoError(t, drafts.ToggleNutritionFlag(ctx, "2024-01-15", "protein"))
	_, err = sync.SyncNutrition(ctx)
	require.NoError(t, err)

	rows, err := store.LoadLog(ctx, domain.LogNutrition)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Yes", rows[0][3])
}

func TestSyncBodyRefusesEmptyDraft(t *testing.T) {
	_, sink, drafts, sync := newSyncFixture()
	ctx := context.Background()

	_, err := sync.SyncBody(ctx)
	assert.ErrorIs(t, err, domain.ErrBodyDraftEmpty)

	require.NoError(t, drafts.SaveBodyField(ctx, "2024-01-15", "weight", "   "))
	_, err = sync.SyncBody(ctx)
	assert.ErrorIs(t, err, domain.ErrBodyDraftEmpty)

	assert.Empty(t, sink.pushes)
}

func TestSyncBodyWithOneValue(t *testing.T) {
	store, _, drafts, sync := newSyncFixture()
	ctx := context.Background()

	require.NoError(t, drafts.SaveBodyField(ctx, "2024-01-15", "weight", "63.2"))

	result, err := sync.SyncBody(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RowCount)

	rows, err := store.LoadLog(ctx, domain.LogBody)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alana|BODY|2024-01-15", rows[0].ID())
	assert.Equal(t, "63.2", rows[0][3])
}
