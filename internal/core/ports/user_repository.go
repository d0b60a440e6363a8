package ports

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for login identities.
type UserRepository interface {
	Add(ctx context.Context, user *account.User) error

	// Get returns an ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByUsername resolves a login name to its user.
	// Returns an ObjectNotFoundError when the username is unknown.
	GetByUsername(ctx context.Context, username string) (*account.User, error)
}

// PasswordHasher hashes plaintext passwords for storage. Credential
// verification is handled by the external authentication layer; the core
// only ever stores the hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
