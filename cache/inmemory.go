package cache

import (
	"sync"

	"github.com/hisaab-app/hisaab-backend/models"
)

// InMemoryCache implements the Cache interface for an in memory cache
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*models.GroupSummary
}

// NewInMemoryCache creates an instance of InMemoryCache
func NewInMemoryCache() Cache {
	return &InMemoryCache{
		entries: make(map[string]*models.GroupSummary),
	}
}

// GetSummary gets the cached summary for a group
func (c *InMemoryCache) GetSummary(groupID string) (*models.GroupSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	summary, ok := c.entries[groupID]
	return summary, ok
}

// SetSummary sets the groupID/summary key/value
func (c *InMemoryCache) SetSummary(groupID string, summary *models.GroupSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[groupID] = summary
}

// Invalidate drops the cached summary for a group
func (c *InMemoryCache) Invalidate(groupID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, groupID)
}
