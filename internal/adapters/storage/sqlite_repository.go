package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/ports"
)

// SQLiteStore implements ports.Store using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.Store = (*SQLiteStore)(nil)

// gormLogger wraps the ferro logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FERRO_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteStore creates a new SQLiteStore
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Open database with WAL mode
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&KVPairModel{}, &HistoryRowModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	// Configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	return &SQLiteStore{db: db}, nil
}

// NewSQLiteStoreForPath creates a new SQLiteStore for a specific FERRO_HOME path
func NewSQLiteStoreForPath(ferroHomePath string) (*SQLiteStore, error) {
	return NewSQLiteStore(filepath.Join(ferroHomePath, "state.db"))
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements ports.KVStore.Get. A missing key reads as "".
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var pair KVPairModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("key = ?", key).First(&pair).Error
	}, 3)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return pair.Value, nil
}

// Set implements ports.KVStore.Set. Values are stored verbatim.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Save(&KVPairModel{Key: key, Value: value}).Error
	}, 3)
}

// Remove implements ports.KVStore.Remove. Removing a missing key is a no-op.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Where("key = ?", key).Delete(&KVPairModel{}).Error
	}, 3)
}

// LoadLog implements ports.HistoryReader.LoadLog. Absent or corrupt rows
// yield an empty (or shortened) sequence, never an error the caller has to
// distinguish from "no history".
func (s *SQLiteStore) LoadLog(ctx context.Context, d domain.LogDomain) ([]domain.HistoryRow, error) {
	var models []HistoryRowModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).
			Where("log_domain = ?", string(d)).
			Order("position ASC").
			Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s history: %w", d, err)
	}

	rows := make([]domain.HistoryRow, 0, len(models))
	for _, m := range models {
		if row, ok := rowModelToDomain(m); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Upsert implements ports.HistoryWriter.Upsert. An existing RowID is updated
// in place (position unchanged); a new one is appended at the end. Rows with
// an empty RowID are dropped so malformed callers cannot corrupt history.
func (s *SQLiteStore) Upsert(ctx context.Context, d domain.LogDomain, row domain.HistoryRow) error {
	rowID := row.ID()
	if rowID == "" {
		logging.Logger.Warn("Dropping history row without RowID", "log_domain", d)
		return nil
	}

	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing HistoryRowModel
			err := tx.Where("log_domain = ? AND row_id = ?", string(d), rowID).
				First(&existing).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				var maxPosition int
				tx.Model(&HistoryRowModel{}).
					Where("log_domain = ?", string(d)).
					Select("COALESCE(MAX(position), -1)").
					Scan(&maxPosition)

				model, err := domainToRowModel(d, row, maxPosition+1)
				if err != nil {
					return fmt.Errorf("failed to encode history row: %w", err)
				}
				return tx.Create(&model).Error
			}
			if err != nil {
				return err
			}

			model, err := domainToRowModel(d, row, existing.Position)
			if err != nil {
				return fmt.Errorf("failed to encode history row: %w", err)
			}
			model.ID = existing.ID
			model.CreatedAt = existing.CreatedAt
			return tx.Save(&model).Error
		})
	}, 3)
}

// ReplaceLog implements ports.HistoryWriter.ReplaceLog.
func (s *SQLiteStore) ReplaceLog(ctx context.Context, d domain.LogDomain, rows []domain.HistoryRow) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("log_domain = ?", string(d)).
				Delete(&HistoryRowModel{}).Error; err != nil {
				return err
			}
			for i, row := range rows {
				if row.ID() == "" {
					continue
				}
				model, err := domainToRowModel(d, row, i)
				if err != nil {
					return fmt.Errorf("failed to encode history row: %w", err)
				}
				if err := tx.Create(&model).Error; err != nil {
					return err
				}
			}
			return nil
		})
	}, 3)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
