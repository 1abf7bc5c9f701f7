package cache

import (
	"github.com/hisaab-app/hisaab-backend/models"
)

// Cache stores computed group summaries keyed by group id. Mutating
// operations invalidate the entry; the summary endpoint consults it before
// recomputing. A miss is never an error, just a recompute.
type Cache interface {
	GetSummary(groupID string) (*models.GroupSummary, bool)
	SetSummary(groupID string, summary *models.GroupSummary)
	Invalidate(groupID string)
}
