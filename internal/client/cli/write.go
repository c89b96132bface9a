package cli

import (
	"context"
	"log"
	"os"
)

func (a *App) Write(ctx context.Context) error {

	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	text, err := GetSimpleText(a.reader, "Write your entry:", os.Stdout)
	if err != nil {
		log.Printf("error reading entry: %v", err)
		return err
	}
	if text == "" {
		return nil
	}

	e := a.journal.Append(text)
	printlnFn("Saved at", e.Timestamp)
	return nil
}
