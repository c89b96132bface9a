package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/daybook/internal/common"
	"github.com/dmitrijs2005/daybook/internal/server/auth"
	"github.com/dmitrijs2005/daybook/internal/server/config"
)

func newTestService() *Service {
	cfg := &config.Config{
		SecretKey:             "k",
		TokenValidityDuration: time.Hour,
	}
	return NewService(NewInMemoryRepository(), cfg)
}

func TestRegisterAndLogin_RoundTrip(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	user, err := s.Register(ctx, "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID == 0 || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("password stored in plain text")
	}

	result, err := s.Login(ctx, "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if result.UserID != user.ID {
		t.Fatalf("userID mismatch: got %d want %d", result.UserID, user.ID)
	}

	claims, err := auth.ParseToken(result.Token, []byte("k"))
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "alice@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "", "pass"); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected common.ErrValidation for empty email, got %v", err)
	}
	if _, err := s.Register(ctx, "a@b.c", ""); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected common.ErrValidation for empty password, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "dup@example.com", "one"); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	_, err := s.Register(ctx, "dup@example.com", "two")
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected common.ErrAlreadyExists, got %v", err)
	}
}

func TestLogin_WrongPasswordAndUnknownEmail(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "bob@example.com", "right"); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, errWrongPass := s.Login(ctx, "bob@example.com", "wrong")
	_, errNoUser := s.Login(ctx, "ghost@example.com", "whatever")

	// both failure modes collapse into the same error, no enumeration signal
	if !errors.Is(errWrongPass, common.ErrUnauthorized) {
		t.Fatalf("expected common.ErrUnauthorized for wrong password, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, common.ErrUnauthorized) {
		t.Fatalf("expected common.ErrUnauthorized for unknown email, got %v", errNoUser)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	s := newTestService()

	if _, err := s.Login(context.Background(), "", ""); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("expected common.ErrValidation, got %v", err)
	}
}
