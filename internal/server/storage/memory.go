package storage

import (
	"github.com/avelichko/garagevault/internal/server/records"
	"github.com/avelichko/garagevault/internal/server/users"
)

type MemoryManager struct {
	users   *users.MemoryRepository
	records *records.MemoryRepository
}

// NewMemoryManager returns an isolated in-memory store. Tests create one
// per case; the server creates one when no database DSN is configured.
func NewMemoryManager() *MemoryManager {
	return &MemoryManager{
		users:   users.NewMemoryRepository(),
		records: records.NewMemoryRepository(),
	}
}

func (m *MemoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryManager) Records() records.Repository {
	return m.records
}

func (m *MemoryManager) Close() error {
	return nil
}
