package kernel

import (
	"fmt"

	"writedesk/internal/pkg/errs"
)

// Role identifies which side of the marketplace an actor acts from.
// The workflow transition rules are keyed by role, so every command carries
// the role of its actor as resolved by the identity service.
type Role string

const (
	// RoleClient is the customer who places and pays for an order.
	RoleClient Role = "client"
	// RoleBDE is the business development executive who prepares quotations.
	RoleBDE Role = "bde"
	// RoleWriter is the specialist who produces the work.
	RoleWriter Role = "writer"
	// RoleAdmin is the operations staff with override powers.
	RoleAdmin Role = "admin"
	// RoleSystem marks actions taken by background jobs rather than a person.
	// No workflow transition is keyed by this role.
	RoleSystem Role = "system"
)

// RoleFromString parses a role from its string representation.
// Returns an error if the string does not name a known role.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the known roles.
func (r Role) Validate() error {
	switch r {
	case RoleClient, RoleBDE, RoleWriter, RoleAdmin, RoleSystem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%s is not a valid role", string(r)))
	}
}

// String returns the role name. This method implements the fmt.Stringer
// interface.
func (r Role) String() string {
	return string(r)
}
