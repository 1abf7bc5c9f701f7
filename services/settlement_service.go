package services

import (
	"math"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// SettlementService turns per-member balances into an ordered list of
// pairwise transfers that brings every balance to (near-)zero. The matching
// is greedy and deterministic; it is not guaranteed to be globally minimal
// in transaction count, which is acceptable for the group sizes this
// system targets.
type SettlementService struct{}

// NewSettlementService creates a new settlement service
func NewSettlementService() *SettlementService {
	return &SettlementService{}
}

// Plan emits transfers between the current first debtor and first creditor
// until one side is exhausted. The partitions keep the member iteration
// order of the balance slice; they are never sorted by magnitude, so the
// output is stable across recomputes.
//
// The pop conditions are intentionally asymmetric: debtors are popped on an
// absolute-value check, creditors on a one-sided one. A creditor's balance
// can never go below zero inside the loop (each transfer is min-clamped),
// so the two checks are equivalent here; the asymmetry is kept to match the
// observed behavior exactly.
func (s *SettlementService) Plan(balances []models.MemberBalance) []models.Settlement {
	var debtors, creditors []models.MemberBalance
	for _, b := range balances {
		if b.Balance < -utils.Epsilon {
			debtors = append(debtors, b)
		} else if b.Balance > utils.Epsilon {
			creditors = append(creditors, b)
		}
	}

	var settlements []models.Settlement
	for len(debtors) > 0 && len(creditors) > 0 {
		debtor := &debtors[0]
		creditor := &creditors[0]

		amount := utils.Min(-debtor.Balance, creditor.Balance)
		settlements = append(settlements, models.Settlement{
			From:   debtor.Name,
			To:     creditor.Name,
			Amount: amount,
		})

		debtor.Balance += amount
		creditor.Balance -= amount

		if math.Abs(debtor.Balance) < utils.Epsilon {
			debtors = debtors[1:]
		}
		if creditor.Balance < utils.Epsilon {
			creditors = creditors[1:]
		}
	}

	return settlements
}
