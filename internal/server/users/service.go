package users

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/daybook/internal/common"
	"github.com/dmitrijs2005/daybook/internal/server/auth"
	"github.com/dmitrijs2005/daybook/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

// AuthResult is returned by Login: the account identity plus a signed
// session token the client sends back as a Bearer credential.
type AuthResult struct {
	UserID int64
	Token  string
}

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates an account with a bcrypt-hashed password. A duplicate
// email surfaces as common.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, email string, password string) (*User, error) {

	if email == "" || password == "" {
		return nil, common.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrInternal
	}

	user := &User{
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, common.ErrAlreadyExists
		}
		return nil, common.ErrStorage
	}

	return user, nil
}

// Login authenticates email/password and issues a session token. Unknown
// email and wrong password both yield common.ErrUnauthorized, with no signal
// about which factor failed.
func (s *Service) Login(ctx context.Context, email string, password string) (*AuthResult, error) {

	if email == "" || password == "" {
		return nil, common.ErrValidation
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.ErrStorage
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, common.ErrUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, common.ErrInternal
	}

	return &AuthResult{UserID: user.ID, Token: token}, nil
}
