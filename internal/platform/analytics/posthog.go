// Package analytics forwards POS usage events to PostHog.
package analytics

import (
	"fmt"
	"log/slog"

	"github.com/posthog/posthog-go"
)

// enqueuer is the part of posthog.Client the POS uses.
type enqueuer interface {
	Enqueue(msg posthog.Message) error
	Close() error
}

// Client is a nil-safe PostHog wrapper. A nil *Client drops every event.
type Client struct {
	ph     enqueuer
	logger *slog.Logger
}

// NewPostHog returns nil, nil when apiKey is empty.
func NewPostHog(apiKey, endpoint string, logger *slog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, nil
	}
	ph, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, fmt.Errorf("failed to create posthog client: %w", err)
	}
	return newClient(ph, logger), nil
}

func newClient(ph enqueuer, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{ph: ph, logger: logger}
}

// Enqueue captures event for the operator. Delivery is asynchronous and
// failures are only logged.
func (c *Client) Enqueue(distinctID, event string, properties map[string]any) {
	if c == nil || c.ph == nil {
		return
	}
	err := c.ph.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil {
		c.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (c *Client) Close() {
	if c == nil || c.ph == nil {
		return
	}
	if err := c.ph.Close(); err != nil {
		c.logger.Warn("Failed to close analytics client", slog.String("error", err.Error()))
	}
}
