package users

import (
	"context"
)

// Repository persists users. Implementations assign monotonically increasing
// string ids and enforce uniqueness of the (already normalized) email,
// returning common.ErrorEmailExists on a duplicate and common.ErrorNotFound
// from lookups that match nothing.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
