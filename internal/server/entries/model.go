package entries

// Entry is one durable journal record. CreatedAt is the client-assigned
// timestamp in a sortable "YYYY-MM-DD hh:mm:ss" form; it doubles as the
// dedup key together with UserID. Content is free text and deliberately not
// part of the key.
type Entry struct {
	ID        int64
	CreatedAt string
	Content   string
	UserID    int64
}

// NewEntry is a client-authored entry as received in an upload batch,
// before a server identity has been assigned.
type NewEntry struct {
	Timestamp string
	Text      string
}
