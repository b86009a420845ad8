package notification

import "time"

// timeLayout matches the original log format: RFC 3339 UTC with a literal Z.
const timeLayout = "2006-01-02T15:04:05.999999Z"

// Entry is one outbound message recorded in the append-only notification
// log. Entries are never mutated or deleted.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// NewEntry stamps a message with the current UTC time.
func NewEntry(message string, now time.Time) Entry {
	return Entry{
		Timestamp: now.UTC().Format(timeLayout),
		Message:   message,
	}
}
