// Package notify delivers order and booking notifications to external
// channels. The append-only log in storage/notification is the durable
// record; senders here are the best-effort outbound copy.
package notify

import "context"

// Sender delivers one human-readable notification message to an external
// channel.
type Sender interface {
	Send(ctx context.Context, message string) error
}
