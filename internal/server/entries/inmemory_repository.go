package entries

import (
	"context"
	"sort"
	"sync"
)

type entryKey struct {
	userID    int64
	createdAt string
}

// InMemoryRepository is a map-backed Repository used in tests and local runs
// without Postgres. It mirrors the Postgres contract: ascending timestamp
// order on reads and insert-if-absent on (user_id, created_at).
type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int64
	keys   map[entryKey]struct{}
	rows   []Entry
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, keys: make(map[entryKey]struct{})}
}

func (r *InMemoryRepository) GetAllByUser(ctx context.Context, userID int64) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []Entry
	for _, e := range r.rows {
		if e.UserID == userID {
			result = append(result, e)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt < result[j].CreatedAt })

	return result, nil
}

func (r *InMemoryRepository) CreateBatch(ctx context.Context, userID int64, batch []NewEntry) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inserted := make([]Entry, 0, len(batch))
	for _, ne := range batch {
		key := entryKey{userID: userID, createdAt: ne.Timestamp}
		if _, ok := r.keys[key]; ok {
			continue
		}
		r.keys[key] = struct{}{}

		e := Entry{ID: r.nextID, CreatedAt: ne.Timestamp, Content: ne.Text, UserID: userID}
		r.nextID++
		r.rows = append(r.rows, e)
		inserted = append(inserted, e)
	}

	return inserted, nil
}
