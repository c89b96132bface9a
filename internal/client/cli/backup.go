package cli

import (
	"context"
	"encoding/json"
	"log"

	"github.com/dmitrijs2005/daybook/internal/netx"
)

// Backup serializes the current journal to JSON and uploads it to object
// storage through a presigned URL obtained from the server. The server never
// sees the archive body, only the client and the store do.
func (a *App) Backup(ctx context.Context) error {

	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}

	if err := a.journal.Flush(ctx); err != nil {
		log.Printf("error flushing before backup: %v", err)
		return err
	}

	body, err := json.Marshal(a.journal.Entries())
	if err != nil {
		log.Printf("error serializing journal: %v", err)
		return err
	}

	key, uploadURL, err := a.client.CreateArchive(ctx)
	if err != nil {
		log.Printf("error requesting archive upload: %v", err)
		return err
	}

	if err := netx.UploadPresignedURL(ctx, uploadURL, "application/json", body); err != nil {
		log.Printf("error uploading archive: %v", err)
		return err
	}

	downloadURL, err := a.client.GetArchiveURL(ctx, key)
	if err != nil {
		log.Printf("error requesting archive link: %v", err)
		return err
	}

	printlnFn("Backup uploaded. Download link (valid for a limited time):")
	printlnFn(downloadURL)
	return nil
}
