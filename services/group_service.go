package services

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hisaab-app/hisaab-backend/cache"
	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/repository"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// GroupService owns the group collection. It loads the snapshot at startup,
// applies ledger mutations under a lock, saves best-effort after every
// mutation, and invalidates the summary cache for the touched group.
//
// The engine itself is synchronous; the lock only exists because the HTTP
// host serves requests concurrently.
type GroupService struct {
	mu     sync.RWMutex
	groups []models.Group

	store  repository.GroupStore
	ledger *LedgerService
	cache  cache.Cache

	// RejectDuplicateNames controls whether group creation refuses a name
	// already in use (case-insensitive). Enabled by default; duplicate
	// names make for a confusing group list.
	RejectDuplicateNames bool
}

// NewGroupService creates a new group service and loads persisted state.
func NewGroupService(store repository.GroupStore, ledger *LedgerService, c cache.Cache) *GroupService {
	return &GroupService{
		groups:               store.Load(),
		store:                store,
		ledger:               ledger,
		cache:                c,
		RejectDuplicateNames: true,
	}
}

// CreateGroup appends a new empty group.
func (s *GroupService) CreateGroup(name string) (*models.Group, error) {
	trimmed := utils.TrimName(name)
	if err := utils.ValidateRequired(trimmed, "group name"); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.RejectDuplicateNames {
		for _, g := range s.groups {
			if utils.SameName(g.Name, trimmed) {
				return nil, utils.NewValidationError(utils.KindDuplicateName,
					fmt.Sprintf("a group named %q already exists", g.Name))
			}
		}
	}

	group := models.Group{ID: uuid.NewString(), Name: trimmed, Members: []models.Member{}, Expenses: []models.Expense{}}
	s.groups = append(s.groups, group)
	s.persist()

	clone := group.Clone()
	return &clone, nil
}

// ListGroups returns a deep copy of the current group list.
func (s *GroupService) ListGroups() []models.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()

	groups := make([]models.Group, len(s.groups))
	for i := range s.groups {
		groups[i] = s.groups[i].Clone()
	}
	return groups
}

// GetGroup returns a deep copy of one group.
func (s *GroupService) GetGroup(groupID string) (*models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group := s.find(groupID)
	if group == nil {
		return nil, utils.NewNotFoundError("Group")
	}
	clone := group.Clone()
	return &clone, nil
}

// DeleteGroup removes a group along with its members and expenses.
func (s *GroupService) DeleteGroup(groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := s.groups[:0]
	found := false
	for _, g := range s.groups {
		if g.ID == groupID {
			found = true
			continue
		}
		groups = append(groups, g)
	}
	if !found {
		return utils.NewNotFoundError("Group")
	}
	s.groups = groups
	s.afterMutation(groupID)
	return nil
}

// AddMember adds a member to a group via the ledger service.
func (s *GroupService) AddMember(groupID, name string) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := s.find(groupID)
	if group == nil {
		return nil, utils.NewNotFoundError("Group")
	}

	member, err := s.ledger.AddMember(group, name)
	if err != nil {
		return nil, err
	}
	s.afterMutation(groupID)
	return member, nil
}

// RemoveMember removes a member, cascading the delete to any expense that
// references them.
func (s *GroupService) RemoveMember(groupID, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := s.find(groupID)
	if group == nil {
		return utils.NewNotFoundError("Group")
	}

	s.ledger.RemoveMember(group, memberID)
	s.afterMutation(groupID)
	return nil
}

// AddExpense validates and appends an expense to a group.
func (s *GroupService) AddExpense(req *models.AddExpenseRequest) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := s.find(req.GroupID)
	if group == nil {
		return nil, utils.NewNotFoundError("Group")
	}

	expense, err := s.ledger.AddExpense(group, req)
	if err != nil {
		return nil, err
	}
	s.afterMutation(req.GroupID)
	return expense, nil
}

// RemoveExpense removes an expense from a group.
func (s *GroupService) RemoveExpense(groupID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := s.find(groupID)
	if group == nil {
		return utils.NewNotFoundError("Group")
	}

	s.ledger.RemoveExpense(group, expenseID)
	s.afterMutation(groupID)
	return nil
}

// ResetExpenses clears a group's expenses, leaving members in place.
func (s *GroupService) ResetExpenses(groupID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group := s.find(groupID)
	if group == nil {
		return utils.NewNotFoundError("Group")
	}

	s.ledger.ResetExpenses(group)
	s.afterMutation(groupID)
	return nil
}

// find returns the live group record; callers must hold the lock.
func (s *GroupService) find(groupID string) *models.Group {
	for i := range s.groups {
		if s.groups[i].ID == groupID {
			return &s.groups[i]
		}
	}
	return nil
}

// afterMutation persists the collection and drops the group's cached summary.
func (s *GroupService) afterMutation(groupID string) {
	s.persist()
	s.cache.Invalidate(groupID)
}

// persist saves the snapshot best-effort; a failed save is logged and the
// in-memory state stays authoritative.
func (s *GroupService) persist() {
	if err := s.store.Save(s.groups); err != nil {
		log.Error().Err(err).Msg("failed to save group snapshot")
	}
}
