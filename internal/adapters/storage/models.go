package storage

import "time"

// KVPairModel is the GORM model for the draft/pointer key-value pairs
type KVPairModel struct {
	CreatedAt time.Time
	Key       string `gorm:"primaryKey;column:key"`
	UpdatedAt time.Time
	Value     string `gorm:"not null;default:''"`
}

// TableName specifies the table name for GORM
func (KVPairModel) TableName() string { return "kv_pairs" }

// HistoryRowModel is the GORM model for history log rows. Each of the four
// log domains is an independent sequence ordered by Position; RowID is
// unique within a domain and is the upsert key.
type HistoryRowModel struct {
	CreatedAt time.Time
	Fields    string `gorm:"not null;default:'[]'"` // JSON array, external wire order
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	LogDomain string `gorm:"not null;index:idx_domain_row,unique;index:idx_domain_position"`
	Position  int    `gorm:"not null;index:idx_domain_position"`
	RowID     string `gorm:"not null;index:idx_domain_row,unique"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (HistoryRowModel) TableName() string { return "history_rows" }
