package storage

import (
	"encoding/json"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/logging"
)

// rowModelToDomain decodes a stored wire tuple. A corrupt Fields payload is
// treated as no data: the row is dropped with a warning instead of failing
// the whole load.
func rowModelToDomain(m HistoryRowModel) (domain.HistoryRow, bool) {
	var row domain.HistoryRow
	if err := json.Unmarshal([]byte(m.Fields), &row); err != nil {
		logging.Logger.Warn("Dropping corrupt history row",
			"log_domain", m.LogDomain,
			"row_id", m.RowID,
			"error", err)
		return nil, false
	}
	return row, true
}

// domainToRowModel encodes a wire tuple for storage. Position is set by the
// caller; the RowID column mirrors the tuple's first element.
func domainToRowModel(d domain.LogDomain, row domain.HistoryRow, position int) (HistoryRowModel, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return HistoryRowModel{}, err
	}
	return HistoryRowModel{
		Fields:    string(data),
		LogDomain: string(d),
		Position:  position,
		RowID:     row.ID(),
	}, nil
}
