package users

import "context"

// Repository stores accounts. Create must fail with common.ErrAlreadyExists
// on an email uniqueness violation so the caller can distinguish it from
// other storage faults.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}
