// Package cli implements the interactive daybook client: a small REPL over
// the sync engine, with session state persisted to a local SQLite database.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/daybook/internal/client/api"
	"github.com/dmitrijs2005/daybook/internal/client/config"
	"github.com/dmitrijs2005/daybook/internal/client/journal"
	"github.com/dmitrijs2005/daybook/internal/client/repositories"
	"github.com/dmitrijs2005/daybook/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/daybook/internal/logging"

	_ "modernc.org/sqlite"
)

const tokenKey = "token"

type App struct {
	config       *config.Config
	client       api.Client
	journal      *journal.Service
	metadataRepo metadata.Repository
	db           *sql.DB
	reader       *bufio.Reader
	email        string
	loggedIn     bool
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := api.NewHTTPClient(c.ServerBaseURL)
	js := journal.NewService(apiClient, c.FlushDelay, logger)

	return &App{
		config:       c,
		client:       apiClient,
		journal:      js,
		metadataRepo: metadata.NewSQLiteRepository(db),
		db:           db,
		reader:       bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// restoreSession picks up a previously stored token, the local stand-in for
// browser storage. The token is only decoded, not verified: if it has not
// expired yet it is presented to the server, which remains the authority.
func (a *App) restoreSession(ctx context.Context) {

	token, err := a.metadataRepo.Get(ctx, tokenKey)
	if err != nil || token == nil {
		return
	}

	if !api.TokenValid(string(token)) {
		_ = a.metadataRepo.Delete(ctx, tokenKey)
		return
	}

	claims, err := api.DecodeClaims(string(token))
	if err != nil {
		return
	}

	a.client.SetToken(string(token))
	a.journal.SetSession(claims.UserID)
	a.email = claims.Email
	a.loggedIn = true

	if err := a.journal.Load(ctx); err != nil {
		log.Printf("error loading journal: %v", err)
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	a.restoreSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) status() string {
	if a.loggedIn {
		return a.email
	}
	return "not logged in"
}
