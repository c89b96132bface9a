package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/daybook/internal/common"
)

// InMemoryRepository is a map-backed Repository used in tests and local runs
// without Postgres. It enforces the same email uniqueness contract.
type InMemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, byEmail: make(map[string]*User)}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrAlreadyExists
	}

	user.ID = r.nextID
	r.nextID++

	stored := *user
	r.byEmail[user.Email] = &stored

	return user, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}

	user := *stored
	return &user, nil
}
