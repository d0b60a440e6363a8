package commands

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// RegisterUserCommandHandler creates login identities.
//
// The bound client or employee must exist; the check runs inside the same
// transaction as the insert. The password is hashed before the transaction
// opens so the plaintext never outlives the command.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command and returns the stored user.
func (h *RegisterUserCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterUserCommand,
) (*account.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	user, err := account.NewUser(
		kernel.NewUUID(),
		cmd.Username(),
		hash,
		cmd.Role(),
		cmd.ClientID(),
		cmd.EmployeeID(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	switch cmd.Role() {
	case account.RoleClient:
		if _, err = uow.ClientRepository().Get(ctx, *user.ClientID()); err != nil {
			return nil, err
		}
	case account.RoleEmployee:
		if _, err = uow.EmployeeRepository().Get(ctx, *user.EmployeeID()); err != nil {
			return nil, err
		}
	}

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
