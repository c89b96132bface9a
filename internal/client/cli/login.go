package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/daybook/internal/client/api"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email:", os.Stdout)
	if err != nil {
		log.Printf("error reading email: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error reading password: %v", err)
		return err
	}

	session, err := a.client.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			printlnFn("Invalid credentials.")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server is unavailable, please try again later.")
		default:
			log.Printf("login error: %v", err)
		}
		return err
	}

	if err := a.metadataRepo.Set(ctx, tokenKey, []byte(session.Token)); err != nil {
		log.Printf("error saving session: %v", err)
	}

	a.journal.SetSession(session.UserID)
	a.email = email
	a.loggedIn = true

	if err := a.journal.Load(ctx); err != nil {
		log.Printf("error loading journal: %v", err)
	}

	printlnFn("Logged in as", email)
	return nil
}
