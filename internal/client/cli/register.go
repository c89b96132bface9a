package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/daybook/internal/client/api"
)

func (a *App) Register(ctx context.Context) error {

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

	if err := a.client.Register(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, api.ErrConflict):
			printlnFn("A user with this email already exists.")
		case errors.Is(err, api.ErrValidation):
			printlnFn("Email and password are required.")
		case errors.Is(err, api.ErrUnavailable):
			printlnFn("Server is unavailable, please try again later.")
		default:
			log.Printf("registration error: %v", err)
		}
		return err
	}

	printlnFn("Registered. You can log in now.")
	return nil
}
