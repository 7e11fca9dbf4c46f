package records

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/avelichko/garagevault/internal/common"
)

// MemoryRepository is the reference in-memory record store. One mutex per
// instance serializes id allocation and map mutations.
type MemoryRepository struct {
	mu   sync.RWMutex
	seq  int64
	byID map[string]*Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*Record)}
}

func (r *MemoryRepository) Create(ctx context.Context, record *Record) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	now := time.Now().UTC()

	stored := record.clone()
	stored.ID = strconv.FormatInt(r.seq, 10)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.byID[stored.ID] = stored
	return stored.clone(), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return record.clone(), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch Patch) (*Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	record.applyPatch(patch)

	// updatedAt is non-decreasing even if the wall clock steps back
	now := time.Now().UTC()
	if now.Before(record.UpdatedAt) {
		now = record.UpdatedAt
	}
	record.UpdatedAt = now

	return record.clone(), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]
	delete(r.byID, id)
	return ok, nil
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Record, 0)
	for _, record := range r.byID {
		if record.OwnerID == ownerID {
			out = append(out, record.clone())
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return idLess(out[j].ID, out[i].ID)
	})

	return out, nil
}

// idLess compares two allocated ids numerically.
func idLess(a, b string) bool {
	ai, _ := strconv.ParseInt(a, 10, 64)
	bi, _ := strconv.ParseInt(b, 10, 64)
	return ai < bi
}
