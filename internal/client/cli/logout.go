package cli

import (
	"context"
	"log"
)

// Logout flushes pending entries on a best-effort basis, then clears the
// stored token and all in-memory state. Entries live on the server; nothing
// journal-related is kept locally between sessions.
func (a *App) Logout(ctx context.Context) error {

	if !a.isLoggedIn() {
		return nil
	}

	if err := a.journal.Flush(ctx); err != nil {
		log.Printf("error flushing before logout: %v", err)
	}

	if err := a.metadataRepo.Delete(ctx, tokenKey); err != nil {
		log.Printf("error clearing session: %v", err)
	}

	a.journal.Reset()
	a.client.SetToken("")
	a.email = ""
	a.loggedIn = false

	printlnFn("Logged out.")
	return nil
}
