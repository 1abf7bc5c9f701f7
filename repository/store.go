// repository/store.go
package repository

import (
	"github.com/hisaab-app/hisaab-backend/models"
)

// GroupStore persists the full group list as one serialized snapshot, the
// way the client-side original kept it in a single local-storage key.
//
// Load never fails past this boundary: unreadable or corrupt snapshots fall
// back to an empty group list after logging. Save is best-effort; callers
// log failures and carry on with in-memory state.
type GroupStore interface {
	Load() []models.Group
	Save(groups []models.Group) error
}
