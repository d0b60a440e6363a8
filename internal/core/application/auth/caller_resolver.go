// Package auth resolves authenticated usernames to caller identities.
package auth

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"
)

// CallerResolver maps the username handed over by the authentication layer
// to a Caller capability object. Resolution happens per call and is never
// cached: a role change takes effect on the next request.
type CallerResolver struct {
	users ports.UserRepository
}

// NewCallerResolver creates a resolver over the user repository.
func NewCallerResolver(users ports.UserRepository) CallerResolver {
	return CallerResolver{users: users}
}

// Resolve looks up the username and derives the caller capability.
// Returns an ObjectNotFoundError for unknown usernames.
func (r CallerResolver) Resolve(ctx context.Context, username string) (account.Caller, error) {
	user, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return account.Caller{}, err
	}

	return user.Caller()
}

// ResolveUser looks up the full user record for the username.
// Used by the caller introspection endpoint.
func (r CallerResolver) ResolveUser(ctx context.Context, username string) (*account.User, error) {
	return r.users.GetByUsername(ctx, username)
}
