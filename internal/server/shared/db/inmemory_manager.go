package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/daybook/internal/server/entries"
	"github.com/dmitrijs2005/daybook/internal/server/users"
)

// InMemoryRepositoryManager backs the services with map-based repositories.
// Used by tests and by local runs that do not need durability.
type InMemoryRepositoryManager struct {
	users   users.Repository
	entries entries.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) Close() error {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m InMemoryRepositoryManager) Entries() entries.Repository {
	return m.entries
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{
		users:   users.NewInMemoryRepository(),
		entries: entries.NewInMemoryRepository(),
	}
}
