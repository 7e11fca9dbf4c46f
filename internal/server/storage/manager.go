// Package storage wires repositories to a backend. The in-memory manager is
// the reference mode (state lives for the process lifetime); the Postgres
// manager is the durable production mode.
package storage

import (
	"github.com/avelichko/garagevault/internal/server/records"
	"github.com/avelichko/garagevault/internal/server/users"
)

// Manager hands out the repositories for one backing store instance.
type Manager interface {
	Users() users.Repository
	Records() records.Repository
	Close() error
}
