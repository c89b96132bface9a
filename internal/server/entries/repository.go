package entries

import "context"

// Repository is the append-only entry log.
//
// CreateBatch persists the whole batch in a single statement with
// insert-if-absent semantics on (user_id, created_at): rows whose key already
// exists are silently skipped, and only newly inserted rows are returned, in
// store-assigned order. The statement is atomic; a storage fault leaves no
// partial batch behind.
type Repository interface {
	GetAllByUser(ctx context.Context, userID int64) ([]Entry, error)
	CreateBatch(ctx context.Context, userID int64, batch []NewEntry) ([]Entry, error)
}
