package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {

	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	list := a.journal.Entries()
	if len(list) == 0 {
		printlnFn("No entries yet.")
		return nil
	}

	for _, e := range list {
		printlnFn(fmt.Sprintf("[%s] %s", e.Timestamp, e.Text))
	}
	return nil
}
