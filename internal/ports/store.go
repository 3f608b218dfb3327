package ports

import (
	"context"

	"github.com/renato0307/ferro/internal/domain"
)

// KVStore is the persistent key-value capability the draft stores and
// pointers are built on. Values are stored verbatim; a missing key reads as
// the empty string. No validation happens at write time.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// HistoryReader reads one domain's full history sequence in stored order.
type HistoryReader interface {
	LoadLog(ctx context.Context, d domain.LogDomain) ([]domain.HistoryRow, error)
}

// HistoryWriter mutates history. Upsert replaces the row with a matching
// RowID in place or appends; a row with an empty RowID is silently dropped.
// ReplaceLog persists a full sequence, overwriting whatever was stored.
type HistoryWriter interface {
	Upsert(ctx context.Context, d domain.LogDomain, row domain.HistoryRow) error
	ReplaceLog(ctx context.Context, d domain.LogDomain, rows []domain.HistoryRow) error
}

// Store is the composite persistence interface.
type Store interface {
	KVStore
	HistoryReader
	HistoryWriter
	Close() error
}
