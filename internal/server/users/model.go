package users

// User is a registered account. PasswordHash is a bcrypt hash and is never
// returned across the wire.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
}
