// repository/memory.go
package repository

import (
	"sync"

	"github.com/hisaab-app/hisaab-backend/models"
)

// InMemoryGroupStore implements GroupStore for tests and throwaway runs.
// It round-trips through the snapshot codec so it exercises the same
// serialization path as the real stores.
type InMemoryGroupStore struct {
	mu   sync.Mutex
	data []byte
}

// NewInMemoryGroupStore creates a new InMemoryGroupStore
func NewInMemoryGroupStore() *InMemoryGroupStore {
	return &InMemoryGroupStore{}
}

// Load decodes the held snapshot
func (r *InMemoryGroupStore) Load() []models.Group {
	r.mu.Lock()
	defer r.mu.Unlock()
	return DecodeGroups(r.data)
}

// Save encodes and holds the snapshot
func (r *InMemoryGroupStore) Save(groups []models.Group) error {
	data, err := EncodeGroups(groups)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}
