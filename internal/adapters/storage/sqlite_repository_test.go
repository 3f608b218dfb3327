package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/ferro/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKVRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Missing key reads as empty, not as an error.
	v, err := store.Get(ctx, "currentTrainingDay")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, store.Set(ctx, "currentTrainingDay", "3"))
	v, err = store.Get(ctx, "currentTrainingDay")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	// Overwrite in place.
	require.NoError(t, store.Set(ctx, "currentTrainingDay", "4"))
	v, err = store.Get(ctx, "currentTrainingDay")
	require.NoError(t, err)
	assert.Equal(t, "4", v)

	require.NoError(t, store.Remove(ctx, "currentTrainingDay"))
	v, err = store.Get(ctx, "currentTrainingDay")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	// Removing a missing key is a no-op.
	require.NoError(t, store.Remove(ctx, "currentTrainingDay"))
}

func TestLoadLogEmpty(t *testing.T) {
	store := newTestStore(t)

	rows, err := store.LoadLog(context.Background(), domain.LogSets)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUpsertAppendsNewRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := domain.HistoryRow{"Alana|2024-01-15|D1|Lower Body Strength|Back Squat|set1", "2024-01-15T10:00:00Z", "Alana"}
	second := domain.HistoryRow{"Alana|2024-01-15|D1|Lower Body Strength|Back Squat|set2", "2024-01-15T10:00:00Z", "Alana"}

	require.NoError(t, store.Upsert(ctx, domain.LogSets, first))
	require.NoError(t, store.Upsert(ctx, domain.LogSets, second))

	rows, err := store.LoadLog(ctx, domain.LogSets)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID(), rows[0].ID())
	assert.Equal(t, second.ID(), rows[1].ID())
}

func TestUpsertReplacesInPlace(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := domain.HistoryRow{"row-a", "t1", "Alana", "old"}
	b := domain.HistoryRow{"row-b", "t1", "Alana"}
	require.NoError(t, store.Upsert(ctx, domain.LogSets, a))
	require.NoError(t, store.Upsert(ctx, domain.LogSets, b))

	// Re-sync row-a with new values. It must keep its original position.
	updated := domain.HistoryRow{"row-a", "t2", "Alana", "new"}
	require.NoError(t, store.Upsert(ctx, domain.LogSets, updated))

	rows, err := store.LoadLog(ctx, domain.LogSets)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "row-a", rows[0].ID())
	assert.Equal(t, "new", rows[0][3])
	assert.Equal(t, "row-b", rows[1].ID())
}

func TestUpsertDropsEmptyRowID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.LogSets, domain.HistoryRow{}))
	require.NoError(t, store.Upsert(ctx, domain.LogSets, domain.HistoryRow{"", "x"}))

	rows, err := store.LoadLog(ctx, domain.LogSets)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestLogsAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.LogSets, domain.HistoryRow{"set-row"}))
	require.NoError(t, store.Upsert(ctx, domain.LogRuns, domain.HistoryRow{"run-row"}))

	sets, err := store.LoadLog(ctx, domain.LogSets)
	require.NoError(t, err)
	runs, err := store.LoadLog(ctx, domain.LogRuns)
	require.NoError(t, err)

	require.Len(t, sets, 1)
	require.Len(t, runs, 1)
	assert.Equal(t, "set-row", sets[0].ID())
	assert.Equal(t, "run-row", runs[0].ID())

	// Same RowID in two domains stays two rows.
	require.NoError(t, store.Upsert(ctx, domain.LogRuns, domain.HistoryRow{"set-row"}))
	runs, err = store.LoadLog(ctx, domain.LogRuns)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestReplaceLog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.LogBody, domain.HistoryRow{"old-1"}))
	require.NoError(t, store.Upsert(ctx, domain.LogBody, domain.HistoryRow{"old-2"}))

	replacement := []domain.HistoryRow{{"new-1"}, {"new-2"}, {"new-3"}}
	require.NoError(t, store.ReplaceLog(ctx, domain.LogBody, replacement))

	rows, err := store.LoadLog(ctx, domain.LogBody)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "new-1", rows[0].ID())
	assert.Equal(t, "new-3", rows[2].ID())
}

func TestCorruptRowsAreSkipped(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, domain.LogSets, domain.HistoryRow{"good-row", "t"}))

	// Corrupt one row's JSON behind the mapper's back.
	require.NoError(t, store.db.Model(&HistoryRowModel{}).
		Where("row_id = ?", "good-row").
		Update("fields", "{not json").Error)
	require.NoError(t, store.Upsert(ctx, domain.LogSets, domain.HistoryRow{"other-row", "t"}))

	rows, err := store.LoadLog(ctx, domain.LogSets)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "other-row", rows[0].ID())
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "state.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "run_date", "2024-01-15"))
	require.NoError(t, store.Upsert(ctx, domain.LogRuns, domain.HistoryRow{"Alana|RUN|2024-01-15T10:00:00Z"}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(ctx, "run_date")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", v)

	rows, err := reopened.LoadLog(ctx, domain.LogRuns)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
