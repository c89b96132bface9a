package cli

import (
	"context"
	"errors"
	"log"

	"github.com/dmitrijs2005/daybook/internal/client/api"
)

// Sync pushes the current journal immediately, skipping the debounce window,
// and then refreshes the in-memory view from the server.
func (a *App) Sync(ctx context.Context) error {

	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	if err := a.journal.Flush(ctx); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Server is unavailable, entries are kept locally.")
		} else {
			log.Printf("sync error: %v", err)
		}
		return err
	}

	if err := a.journal.Load(ctx); err != nil {
		log.Printf("error loading journal: %v", err)
		return err
	}

	printlnFn("Synced,", len(a.journal.Entries()), "entries.")
	return nil
}
