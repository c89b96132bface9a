// Package models defines the client-side view of journal data.
package models

import "time"

// TimestampFormat is the sortable, ISO-like form entries are keyed by.
// Timestamps are client-assigned at the moment the user commits input.
const TimestampFormat = "2006-01-02 15:04:05"

// Entry is a single timestamped journal record as the client renders it.
// ServerID is zero until the entry has been persisted by the backend.
type Entry struct {
	ServerID  int64
	Timestamp string
	Text      string
	UserID    int64
}

// NewTimestamp renders t as a sortable UTC timestamp string.
func NewTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
