package services

import (
	"context"
	"time"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/ports"
)

// fakeStore is an in-memory ports.Store with the same upsert semantics as
// the SQLite adapter.
type fakeStore struct {
	kv   map[string]string
	logs map[domain.LogDomain][]domain.HistoryRow
}

var _ ports.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		kv:   map[string]string{},
		logs: map[domain.LogDomain][]domain.HistoryRow{},
	}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	return f.kv[key], nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	f.kv[key] = value
	return nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	delete(f.kv, key)
	return nil
}

func (f *fakeStore) LoadLog(_ context.Context, d domain.LogDomain) ([]domain.HistoryRow, error) {
	return f.logs[d], nil
}

func (f *fakeStore) Upsert(_ context.Context, d domain.LogDomain, row domain.HistoryRow) error {
	if row.ID() == "" {
		return nil
	}
	for i, existing := range f.logs[d] {
		if existing.ID() == row.ID() {
			f.logs[d][i] = row
			return nil
		}
	}
	f.logs[d] = append(f.logs[d], row)
	return nil
}

func (f *fakeStore) ReplaceLog(_ context.Context, d domain.LogDomain, rows []domain.HistoryRow) error {
	f.logs[d] = rows
	return nil
}

func (f *fakeStore) Close() error { return nil }

// fakeSink records pushed batches and can be told to fail.
type fakeSink struct {
	pushes []domain.Batch
	err    error
}

var _ ports.CoachSink = (*fakeSink)(nil)

func (f *fakeSink) Push(_ context.Context, batch domain.Batch) error {
	if f.err != nil {
		return f.err
	}
	f.pushes = append(f.pushes, batch)
	return nil
}

func fixedNow(value string) func() time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
