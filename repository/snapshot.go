// repository/snapshot.go
package repository

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// groupRecord mirrors models.Group on the wire but tolerates the gaps older
// snapshots can have: missing id, name, members or expenses.
type groupRecord struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Members  []models.Member `json:"members"`
	Expenses []expenseRecord `json:"expenses"`
}

// expenseRecord tolerates the legacy single-payer layout, where an expense
// carried a paidById field instead of the paidBy array.
type expenseRecord struct {
	ID           string                      `json:"id"`
	Description  string                      `json:"description"`
	Amount       float64                     `json:"amount"`
	PaidBy       []models.ExpensePayer       `json:"paidBy,omitempty"`
	PaidByID     string                      `json:"paidById,omitempty"`
	Participants []models.ExpenseParticipant `json:"participants,omitempty"`
}

// EncodeGroups serializes the group list for storage.
func EncodeGroups(groups []models.Group) ([]byte, error) {
	records := make([]groupRecord, len(groups))
	for i, g := range groups {
		records[i] = groupRecord{
			ID:       g.ID,
			Name:     g.Name,
			Members:  g.Members,
			Expenses: make([]expenseRecord, len(g.Expenses)),
		}
		for j, e := range g.Expenses {
			records[i].Expenses[j] = expenseRecord{
				ID:           e.ID,
				Description:  e.Description,
				Amount:       e.Amount,
				PaidBy:       e.PaidBy,
				Participants: e.Participants,
			}
		}
	}
	return json.Marshal(records)
}

// DecodeGroups deserializes a snapshot, upgrading legacy records and
// defaulting missing fields. It never returns an error: a snapshot that
// cannot be parsed yields an empty group list, so a bad save can never
// brick startup.
func DecodeGroups(data []byte) []models.Group {
	if len(data) == 0 {
		return []models.Group{}
	}

	var records []groupRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.Error().Err(err).Msg("failed to parse group snapshot, starting from empty state")
		return []models.Group{}
	}

	groups := make([]models.Group, len(records))
	for i, r := range records {
		group := models.Group{
			ID:      r.ID,
			Name:    r.Name,
			Members: r.Members,
		}
		if group.ID == "" {
			group.ID = uuid.NewString()
		}
		if group.Name == "" {
			group.Name = utils.UntitledGroupName
		}
		if group.Members == nil {
			group.Members = []models.Member{}
		}

		group.Expenses = make([]models.Expense, len(r.Expenses))
		for j, e := range r.Expenses {
			expense := models.Expense{
				ID:           e.ID,
				Description:  e.Description,
				Amount:       e.Amount,
				PaidBy:       e.PaidBy,
				Participants: e.Participants,
			}
			if expense.ID == "" {
				expense.ID = uuid.NewString()
			}
			// Legacy single-payer expenses: the payer funded the full amount.
			if expense.PaidBy == nil && e.PaidByID != "" {
				expense.PaidBy = []models.ExpensePayer{{MemberID: e.PaidByID, Amount: e.Amount}}
			}
			if expense.PaidBy == nil {
				expense.PaidBy = []models.ExpensePayer{}
			}
			if expense.Participants == nil {
				expense.Participants = []models.ExpenseParticipant{}
			}
			group.Expenses[j] = expense
		}
		groups[i] = group
	}
	return groups
}
