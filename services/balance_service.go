package services

import (
	"github.com/hisaab-app/hisaab-backend/models"
)

// BalanceService folds a group's expense list into per-member net balances.
// It assumes input validated by the ledger service and raises no domain
// errors of its own.
type BalanceService struct{}

// NewBalanceService creates a new balance service
func NewBalanceService() *BalanceService {
	return &BalanceService{}
}

// ComputeBalances returns one entry per member, in member insertion order.
// Each payer contribution adds to the payer's balance and each participant
// share subtracts from the participant's. Balances are left unrounded;
// display rounding happens in the presentation layer.
//
// Returns nil when the group has no members or no expenses, matching the
// "no data yet" state rather than an all-settled summary.
func (s *BalanceService) ComputeBalances(group *models.Group) []models.MemberBalance {
	if len(group.Members) == 0 || len(group.Expenses) == 0 {
		return nil
	}

	balances := make(map[string]float64, len(group.Members))
	for _, m := range group.Members {
		balances[m.ID] = 0
	}

	for _, expense := range group.Expenses {
		for _, payer := range expense.PaidBy {
			balances[payer.MemberID] += payer.Amount
		}
		for _, participant := range expense.Participants {
			balances[participant.MemberID] -= participant.Share
		}
	}

	result := make([]models.MemberBalance, len(group.Members))
	for i, m := range group.Members {
		result[i] = models.MemberBalance{MemberID: m.ID, Name: m.Name, Balance: balances[m.ID]}
	}
	return result
}

// TotalSpent sums the expense face values. This is independent of who paid;
// the payer totals are guaranteed to match each amount by the ledger
// invariant, which is not re-validated here.
func (s *BalanceService) TotalSpent(group *models.Group) float64 {
	var total float64
	for _, expense := range group.Expenses {
		total += expense.Amount
	}
	return total
}
