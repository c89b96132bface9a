// Package api is the client-side transport for the daybook backend.
package api

import (
	"context"

	"github.com/dmitrijs2005/daybook/internal/client/models"
)

// Session is the credential state returned by a successful login.
type Session struct {
	UserID int64
	Token  string
}

// Client is the wire-facing surface the sync engine and CLI depend on.
// ListEntries and AppendBatch require a session token, set by Login or
// SetToken (when restoring a stored session).
type Client interface {
	Register(ctx context.Context, email string, password string) error
	Login(ctx context.Context, email string, password string) (*Session, error)
	SetToken(token string)
	ListEntries(ctx context.Context) ([]models.Entry, error)
	AppendBatch(ctx context.Context, entries []models.Entry) ([]models.Entry, error)
	CreateArchive(ctx context.Context) (string, string, error)
	GetArchiveURL(ctx context.Context, key string) (string, error)
	Close() error
}
