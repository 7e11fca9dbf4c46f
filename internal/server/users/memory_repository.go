package users

import (
	"context"
	"strconv"
	"sync"

	"github.com/avelichko/garagevault/internal/common"
)

// MemoryRepository is the reference in-memory user store. State lives for
// the process lifetime; a single mutex per instance serializes mutations.
type MemoryRepository struct {
	mu      sync.RWMutex
	seq     int64
	byID    map[string]*User
	byEmail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorEmailExists
	}

	r.seq++
	stored := *user
	stored.ID = strconv.FormatInt(r.seq, 10)

	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *r.byID[id]
	return &out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *user
	return &out, nil
}
