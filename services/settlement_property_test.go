package services

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// drawGroup builds a random but invariant-respecting group through the
// ledger service: every expense is funded in full and split equally among a
// non-empty subset of members.
func drawGroup(t *rapid.T) *models.Group {
	ledger := NewLedgerService()
	group := &models.Group{ID: "g", Name: "Random"}

	memberCount := rapid.IntRange(2, 6).Draw(t, "members")
	names := []string{"Alice", "Bob", "Carol", "Dave", "Eve", "Frank"}
	for i := 0; i < memberCount; i++ {
		if _, err := ledger.AddMember(group, names[i]); err != nil {
			t.Fatalf("add member: %v", err)
		}
	}

	expenseCount := rapid.IntRange(1, 8).Draw(t, "expenses")
	for i := 0; i < expenseCount; i++ {
		cents := rapid.Int64Range(1, 1_000_000).Draw(t, "cents")
		amount := float64(cents) / 100

		payerIdx := rapid.IntRange(0, memberCount-1).Draw(t, "payer")

		mask := rapid.IntRange(1, (1<<memberCount)-1).Draw(t, "participants")
		var participants []string
		for j := 0; j < memberCount; j++ {
			if mask&(1<<j) != 0 {
				participants = append(participants, group.Members[j].ID)
			}
		}

		_, err := ledger.AddExpense(group, &models.AddExpenseRequest{
			GroupID:      group.ID,
			Description:  "expense",
			Amount:       amount,
			PaidBy:       []models.ExpensePayer{{MemberID: group.Members[payerIdx].ID, Amount: amount}},
			SplitMethod:  utils.SplitMethodEqual,
			Participants: participants,
		})
		if err != nil {
			t.Fatalf("add expense: %v", err)
		}
	}

	return group
}

func TestProperty_BalancesSumToZero(t *testing.T) {
	balanceService := NewBalanceService()

	rapid.Check(t, func(t *rapid.T) {
		group := drawGroup(t)

		var sum float64
		for _, b := range balanceService.ComputeBalances(group) {
			sum += b.Balance
		}
		if math.Abs(sum) > 1e-6 {
			t.Fatalf("balances sum to %v, want ~0", sum)
		}
	})
}

func TestProperty_SettlementsZeroAllBalances(t *testing.T) {
	balanceService := NewBalanceService()
	settlementService := NewSettlementService()

	rapid.Check(t, func(t *rapid.T) {
		group := drawGroup(t)

		balances := balanceService.ComputeBalances(group)
		working := make(map[string]float64, len(balances))
		for _, b := range balances {
			working[b.Name] = b.Balance
		}

		clone := append([]models.MemberBalance(nil), balances...)
		for _, s := range settlementService.Plan(clone) {
			if s.Amount <= 0 {
				t.Fatalf("emitted non-positive transfer %+v", s)
			}
			working[s.From] += s.Amount
			working[s.To] -= s.Amount
		}

		// Members inside the Epsilon band are never matched, so the residual
		// tolerance is Epsilon itself.
		for name, balance := range working {
			if math.Abs(balance) > utils.Epsilon+1e-9 {
				t.Fatalf("residual balance %v for %s after settling", balance, name)
			}
		}
	})
}

func TestProperty_SettlementStepBound(t *testing.T) {
	balanceService := NewBalanceService()
	settlementService := NewSettlementService()

	rapid.Check(t, func(t *rapid.T) {
		group := drawGroup(t)

		balances := balanceService.ComputeBalances(group)
		debtors, creditors := 0, 0
		for _, b := range balances {
			if b.Balance < -utils.Epsilon {
				debtors++
			} else if b.Balance > utils.Epsilon {
				creditors++
			}
		}

		steps := settlementService.Plan(append([]models.MemberBalance(nil), balances...))
		if debtors == 0 || creditors == 0 {
			if len(steps) != 0 {
				t.Fatalf("one-sided partition must produce no steps, got %d", len(steps))
			}
			return
		}
		if len(steps) > debtors+creditors-1 {
			t.Fatalf("emitted %d steps for %d debtors and %d creditors", len(steps), debtors, creditors)
		}
	})
}

func TestProperty_RecomputeDeterministic(t *testing.T) {
	summaryService := newSummaryService()

	rapid.Check(t, func(t *rapid.T) {
		group := drawGroup(t)

		first := summaryService.Recompute(group)
		second := summaryService.Recompute(group)
		if first == nil || second == nil {
			t.Fatalf("summary unexpectedly nil for populated group")
		}
		if len(first.Settlements) != len(second.Settlements) {
			t.Fatalf("settlement counts differ between recomputes")
		}
		for i := range first.Settlements {
			if first.Settlements[i] != second.Settlements[i] {
				t.Fatalf("settlement %d differs between recomputes", i)
			}
		}
	})
}
