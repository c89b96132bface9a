// Package db wires repositories to a concrete storage backend.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/daybook/internal/server/entries"
	"github.com/dmitrijs2005/daybook/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Entries() entries.Repository
}
