package ports

import (
	"context"

	"writedesk/internal/core/domain/model/kernel"
)

// User is the slice of an account the workflow needs: who they are, which
// role they act from, and whether the account is still active. Accounts
// themselves live in the identity service.
type User struct {
	ID       kernel.UUID
	Role     kernel.Role
	Name     string
	IsActive bool
}

// IdentityProvider resolves actor identifiers against the identity service.
// Every command resolves its actor before touching the workflow, so role
// checks always run against the current account state.
type IdentityProvider interface {
	// GetUser resolves a user by identifier.
	// Returns an ObjectNotFoundError when the account does not exist.
	GetUser(ctx context.Context, id kernel.UUID) (User, error)
}
