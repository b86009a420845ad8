package notify

import "context"

// Multi fans a message out to every configured sender. Errors are collected
// but delivery to one channel never blocks another.
type Multi struct {
	senders []Sender
}

// NewMulti creates a Multi over the given senders.
func NewMulti(senders ...Sender) *Multi {
	return &Multi{senders: senders}
}

// Send delivers the message to all senders, returning the first error seen.
// POST: Every sender was attempted regardless of earlier failures
func (m *Multi) Send(ctx context.Context, message string) error {
	var firstErr error
	for _, s := range m.senders {
		if err := s.Send(ctx, message); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
