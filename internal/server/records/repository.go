package records

import (
	"context"
)

// Repository persists records. Implementations assign monotonically
// increasing string ids (never reused, even after delete) and stamp
// timestamps: Create sets createdAt = updatedAt = now, Update refreshes
// updatedAt without ever moving it backwards.
//
// Repositories know nothing about ownership checks; the service performs
// them before mutating (see Service).
type Repository interface {
	Create(ctx context.Context, record *Record) (*Record, error)
	GetByID(ctx context.Context, id string) (*Record, error)
	Update(ctx context.Context, id string, patch Patch) (*Record, error)
	Delete(ctx context.Context, id string) (bool, error)
	// ListByOwner returns the owner's records ordered by updatedAt
	// descending, ties broken by id descending.
	ListByOwner(ctx context.Context, ownerID string) ([]*Record, error)
}
