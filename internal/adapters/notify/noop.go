package notify

import (
	"context"
	"log/slog"
)

// NoopSender is a no-op sender for development and testing. It logs sends
// but does not deliver anywhere.
type NoopSender struct{}

// NewNoopSender creates a new NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the message but does not deliver it.
// POST: Returns nil without actual delivery
func (s *NoopSender) Send(_ context.Context, message string) error {
	slog.Info("noop_notify_send", "len", len(message))
	return nil
}
