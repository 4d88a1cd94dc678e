package ports

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
)

// SessionContext exposes the identity of the acting user and their current
// company. Used for default field values only; authorization stays with the
// collaborators that enforce it.
type SessionContext interface {
	// CurrentUser returns the acting user.
	CurrentUser(ctx context.Context) (kernel.UUID, error)

	// CurrentCompany returns the acting user's current company.
	CurrentCompany(ctx context.Context) (kernel.UUID, error)
}
