package services

import (
	"errors"

	"github.com/komisi-informasi/case-management-api/internal/models"
)

// ErrPermissionDenied is returned when the actor's role does not allow the
// requested command.
var ErrPermissionDenied = errors.New("actor role does not permit this action")

// Actor is the authenticated identity performing a command, resolved from
// the session by the auth middleware. Commands record it as creator on
// dispute and hearing rows.
type Actor struct {
	ID   uint64
	Role models.UserRole
}

// roleAllowed reports whether role appears in allowed.
func roleAllowed(role models.UserRole, allowed ...models.UserRole) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
