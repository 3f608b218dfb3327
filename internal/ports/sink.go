package ports

import (
	"context"

	"github.com/renato0307/ferro/internal/domain"
)

// CoachSink is the remote spreadsheet endpoint. Delivery is unconfirmed:
// the protocol gives no per-row success signal, so a nil error means only
// that the transport call completed.
type CoachSink interface {
	Push(ctx context.Context, batch domain.Batch) error
}
