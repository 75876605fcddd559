package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrBadCredentials deliberately covers both unknown email and wrong
	// password so login responses do not leak which one failed.
	ErrBadCredentials = errors.New("invalid email or password")

	ErrInactive = errors.New("account is not activated")
)

// Store reads user accounts. Implementations must be safe for concurrent
// use; every request may hit the store.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// Authenticate looks the account up and checks the password against its
// bcrypt hash. Inactive accounts authenticate like wrong credentials would
// not: they fail with ErrInactive so the client can prompt for activation.
func Authenticate(ctx context.Context, store Store, email, password string) (*User, error) {
	u, err := store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	if !u.Active {
		return nil, ErrInactive
	}

	return u, nil
}
