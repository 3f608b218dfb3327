package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/renato0307/ferro/internal/domain"
	"github.com/renato0307/ferro/internal/logging"
	"github.com/renato0307/ferro/internal/ports"
)

const defaultTimeout = 30 * time.Second

// Client pushes batches to the coach's Google Apps Script endpoint. The
// endpoint gives no machine-readable per-row result, so delivery is
// unconfirmed: a completed request counts as success. A non-2xx status is
// logged for diagnostics but deliberately not interpreted, matching the
// original protocol where the response was unreadable altogether.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Verify interface compliance at compile time
var _ ports.CoachSink = (*Client)(nil)

// NewClient creates a coach sheet client for the given endpoint URL.
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Push implements ports.CoachSink.Push. The batch travels as a single
// form-encoded "payload" field holding the JSON document.
func (c *Client) Push(ctx context.Context, batch domain.Batch) error {
	payload, err := batch.EncodePayload()
	if err != nil {
		return err
	}

	form := url.Values{}
	form.Set("payload", payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build sync request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded;charset=UTF-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sync request failed: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Logger.Warn("Coach sheet returned non-2xx status",
			"status", resp.StatusCode,
			"endpoint", c.endpoint)
	}

	return nil
}
