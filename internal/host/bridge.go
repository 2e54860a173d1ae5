package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/playaxis/internal/shared"
	"golang.org/x/time/rate"
)

// Bridge forwards selection events to a host cross-filter endpoint over HTTP.
//
// Events POST to {url}/select and {url}/clear as JSON. Outgoing calls are
// rate limited so a fast manual stepper cannot flood the host; Select and
// Clear block until the limiter admits the call or the context is done.
type Bridge struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// BridgeOpts contains configuration options for creating a Bridge.
type BridgeOpts struct {
	URL        string
	HTTPClient *http.Client
	Timeout    time.Duration
	RateLimit  int // events per second; <=0 means 10
}

// NewBridge creates a Bridge with the provided configuration.
func NewBridge(opts BridgeOpts) *Bridge {
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	if opts.HTTPClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		opts.HTTPClient = &http.Client{Timeout: timeout}
	}

	return &Bridge{
		url:        opts.URL,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateLimit),
	}
}

// selectionEvent is the wire shape for both selection endpoints.
type selectionEvent struct {
	Event string `json:"event"`
	ID    string `json:"id,omitempty"`
}

// Select marks the row with the given identity as the active filter target.
func (b *Bridge) Select(ctx context.Context, id string) error {
	return b.post(ctx, "/select", selectionEvent{Event: "select", ID: id})
}

// Clear removes the active filter.
func (b *Bridge) Clear(ctx context.Context) error {
	return b.post(ctx, "/clear", selectionEvent{Event: "clear"})
}

func (b *Bridge) Name() string { return "bridge" }

func (b *Bridge) post(ctx context.Context, path string, event selectionEvent) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal selection event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("selection request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s returned %d", shared.ErrHostRejected, path, resp.StatusCode)
	}

	return nil
}
