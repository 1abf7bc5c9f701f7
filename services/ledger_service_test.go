package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// newTestGroup builds a group with the given member names via the ledger
// service so ids are assigned the same way production code assigns them.
func newTestGroup(t *testing.T, names ...string) (*models.Group, *LedgerService) {
	t.Helper()
	ledger := NewLedgerService()
	group := &models.Group{ID: "g1", Name: "Trip"}
	for _, name := range names {
		_, err := ledger.AddMember(group, name)
		require.NoError(t, err)
	}
	return group, ledger
}

func equalSplitRequest(group *models.Group, description string, amount float64, payerIdx int) *models.AddExpenseRequest {
	participants := make([]string, len(group.Members))
	for i, m := range group.Members {
		participants[i] = m.ID
	}
	return &models.AddExpenseRequest{
		GroupID:      group.ID,
		Description:  description,
		Amount:       amount,
		PaidBy:       []models.ExpensePayer{{MemberID: group.Members[payerIdx].ID, Amount: amount}},
		SplitMethod:  utils.SplitMethodEqual,
		Participants: participants,
	}
}

func TestLedgerService_AddMember(t *testing.T) {
	group, ledger := newTestGroup(t)

	member, err := ledger.AddMember(group, "  Alice  ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", member.Name, "name should be trimmed")
	assert.NotEmpty(t, member.ID)

	_, err = ledger.AddMember(group, "alice")
	require.Error(t, err)
	assert.Equal(t, utils.KindDuplicateName, utils.ErrorKind(err), "duplicate check is case-insensitive")
	assert.Len(t, group.Members, 1, "failed add must not change the group")

	_, err = ledger.AddMember(group, "   ")
	require.Error(t, err)
	assert.Equal(t, utils.KindEmptyInput, utils.ErrorKind(err))
}

func TestLedgerService_AddMember_InsertionOrder(t *testing.T) {
	group, _ := newTestGroup(t, "Alice", "Bob", "Carol")

	names := make([]string, len(group.Members))
	for i, m := range group.Members {
		names[i] = m.Name
	}
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, names)
}

func TestLedgerService_RemoveMember_CascadesExpenses(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice", "Bob", "Carol")
	alice, bob, carol := group.Members[0], group.Members[1], group.Members[2]

	// Dinner involves everyone, taxi only Alice and Bob.
	_, err := ledger.AddExpense(group, equalSplitRequest(group, "Dinner", 300, 0))
	require.NoError(t, err)
	_, err = ledger.AddExpense(group, &models.AddExpenseRequest{
		GroupID:      group.ID,
		Description:  "Taxi",
		Amount:       50,
		PaidBy:       []models.ExpensePayer{{MemberID: bob.ID, Amount: 50}},
		SplitMethod:  utils.SplitMethodEqual,
		Participants: []string{alice.ID, bob.ID},
	})
	require.NoError(t, err)

	ledger.RemoveMember(group, carol.ID)

	assert.Len(t, group.Members, 2)
	require.Len(t, group.Expenses, 1, "the expense referencing Carol is deleted whole, the other survives")
	assert.Equal(t, "Taxi", group.Expenses[0].Description)

	// Removing an unknown id is a no-op.
	ledger.RemoveMember(group, "nope")
	assert.Len(t, group.Members, 2)
	assert.Len(t, group.Expenses, 1)
}

func TestLedgerService_RemoveMember_CascadesOnPayerReference(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice", "Bob", "Carol")
	alice, bob, carol := group.Members[0], group.Members[1], group.Members[2]

	// Carol pays but does not participate.
	_, err := ledger.AddExpense(group, &models.AddExpenseRequest{
		GroupID:      group.ID,
		Description:  "Snacks",
		Amount:       30,
		PaidBy:       []models.ExpensePayer{{MemberID: carol.ID, Amount: 30}},
		SplitMethod:  utils.SplitMethodEqual,
		Participants: []string{alice.ID, bob.ID},
	})
	require.NoError(t, err)

	ledger.RemoveMember(group, carol.ID)
	assert.Empty(t, group.Expenses, "payer references cascade the same as participant references")
}

func TestLedgerService_AddExpense_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(req *models.AddExpenseRequest, group *models.Group)
		wantKind string
	}{
		{
			name:     "empty description",
			mutate:   func(req *models.AddExpenseRequest, _ *models.Group) { req.Description = "   " },
			wantKind: utils.KindEmptyDescription,
		},
		{
			name:     "zero amount",
			mutate:   func(req *models.AddExpenseRequest, _ *models.Group) { req.Amount = 0 },
			wantKind: utils.KindNonPositiveAmount,
		},
		{
			name:     "negative amount",
			mutate:   func(req *models.AddExpenseRequest, _ *models.Group) { req.Amount = -10 },
			wantKind: utils.KindNonPositiveAmount,
		},
		{
			name: "payers sum short of amount",
			mutate: func(req *models.AddExpenseRequest, _ *models.Group) {
				req.PaidBy[0].Amount = 99.00
			},
			wantKind: utils.KindPayersAmountMismatch,
		},
		{
			name: "no payers",
			mutate: func(req *models.AddExpenseRequest, _ *models.Group) {
				req.PaidBy = nil
			},
			wantKind: utils.KindPayersAmountMismatch,
		},
		{
			name: "payer not in group",
			mutate: func(req *models.AddExpenseRequest, _ *models.Group) {
				req.PaidBy[0].MemberID = "stranger"
			},
			wantKind: utils.KindUnknownMember,
		},
		{
			name: "no participants selected",
			mutate: func(req *models.AddExpenseRequest, _ *models.Group) {
				req.Participants = nil
			},
			wantKind: utils.KindNoParticipantsSelected,
		},
		{
			name: "participant not in group",
			mutate: func(req *models.AddExpenseRequest, _ *models.Group) {
				req.Participants = append(req.Participants, "stranger")
			},
			wantKind: utils.KindUnknownMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, ledger := newTestGroup(t, "Alice", "Bob")
			req := equalSplitRequest(group, "Dinner", 100.00, 0)
			tt.mutate(req, group)

			_, err := ledger.AddExpense(group, req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, utils.ErrorKind(err))
			assert.Empty(t, group.Expenses, "rejected expense must leave the group unchanged")
		})
	}
}

func TestLedgerService_AddExpense_EqualSplitShares(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice", "Bob", "Carol")

	expense, err := ledger.AddExpense(group, equalSplitRequest(group, "Dinner", 100, 0))
	require.NoError(t, err)

	// 100/3 does not sum back to 100 exactly; the sub-cent residue is
	// accepted for equal splits.
	require.Len(t, expense.Participants, 3)
	var sum float64
	for _, p := range expense.Participants {
		assert.InDelta(t, 100.0/3.0, p.Share, 1e-9)
		sum += p.Share
	}
	assert.InDelta(t, 100, sum, 1e-9)
}

func TestLedgerService_AddExpense_MultiplePayers(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice", "Bob")
	alice, bob := group.Members[0], group.Members[1]

	expense, err := ledger.AddExpense(group, &models.AddExpenseRequest{
		GroupID:      group.ID,
		Description:  "Groceries",
		Amount:       100.00,
		PaidBy:       []models.ExpensePayer{{MemberID: alice.ID, Amount: 40}, {MemberID: bob.ID, Amount: 60}},
		SplitMethod:  utils.SplitMethodEqual,
		Participants: []string{alice.ID, bob.ID},
	})
	require.NoError(t, err)
	assert.Len(t, expense.PaidBy, 2)
}

func TestLedgerService_AddExpense_CustomSplit(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice", "Bob", "Carol")
	alice, bob, carol := group.Members[0], group.Members[1], group.Members[2]

	expense, err := ledger.AddExpense(group, &models.AddExpenseRequest{
		GroupID:     group.ID,
		Description: "Hotel",
		Amount:      100.00,
		PaidBy:      []models.ExpensePayer{{MemberID: alice.ID, Amount: 100}},
		SplitMethod: utils.SplitMethodAmount,
		Shares:      map[string]string{alice.ID: "70", bob.ID: "30", carol.ID: ""},
	})
	require.NoError(t, err)

	// Blank and zero shares are dropped after the sum check.
	require.Len(t, expense.Participants, 2)
	assert.Equal(t, alice.ID, expense.Participants[0].MemberID)
	assert.Equal(t, 70.0, expense.Participants[0].Share)
	assert.Equal(t, bob.ID, expense.Participants[1].MemberID)
	assert.Equal(t, 30.0, expense.Participants[1].Share)
}

func TestLedgerService_AddExpense_CustomSplitValidatesRawTotal(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice", "Bob")
	alice, bob := group.Members[0], group.Members[1]

	// 60 + 30 != 100: rejected against the raw entered total.
	_, err := ledger.AddExpense(group, &models.AddExpenseRequest{
		GroupID:     group.ID,
		Description: "Hotel",
		Amount:      100.00,
		PaidBy:      []models.ExpensePayer{{MemberID: alice.ID, Amount: 100}},
		SplitMethod: utils.SplitMethodAmount,
		Shares:      map[string]string{alice.ID: "60", bob.ID: "30"},
	})
	require.Error(t, err)
	assert.Equal(t, utils.KindSharesAmountMismatch, utils.ErrorKind(err))
	assert.Empty(t, group.Expenses)
}

func TestLedgerService_AddExpense_CustomSplitNoPositiveShares(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice", "Bob")
	alice, bob := group.Members[0], group.Members[1]

	// A sub-epsilon amount slips past the raw-total check with all-zero
	// shares; the filter then leaves nobody and the expense is rejected.
	_, err := ledger.AddExpense(group, &models.AddExpenseRequest{
		GroupID:     group.ID,
		Description: "Rounding dust",
		Amount:      0.005,
		PaidBy:      []models.ExpensePayer{{MemberID: alice.ID, Amount: 0.005}},
		SplitMethod: utils.SplitMethodAmount,
		Shares:      map[string]string{alice.ID: "0", bob.ID: ""},
	})
	require.Error(t, err)
	assert.Equal(t, utils.KindNoPositiveShares, utils.ErrorKind(err))
}

func TestLedgerService_AddExpense_CustomSplitRejectsMalformedShare(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice")
	alice := group.Members[0]

	_, err := ledger.AddExpense(group, &models.AddExpenseRequest{
		GroupID:     group.ID,
		Description: "Hotel",
		Amount:      100.00,
		PaidBy:      []models.ExpensePayer{{MemberID: alice.ID, Amount: 100}},
		SplitMethod: utils.SplitMethodAmount,
		Shares:      map[string]string{alice.ID: "ten"},
	})
	require.Error(t, err)
	assert.Equal(t, utils.KindInvalidRequest, utils.ErrorKind(err))
}

func TestLedgerService_RemoveAndResetExpenses(t *testing.T) {
	group, ledger := newTestGroup(t, "Alice", "Bob")

	first, err := ledger.AddExpense(group, equalSplitRequest(group, "Dinner", 100, 0))
	require.NoError(t, err)
	_, err = ledger.AddExpense(group, equalSplitRequest(group, "Taxi", 40, 1))
	require.NoError(t, err)

	ledger.RemoveExpense(group, first.ID)
	require.Len(t, group.Expenses, 1)
	assert.Equal(t, "Taxi", group.Expenses[0].Description)

	// Removing a missing id is a no-op.
	ledger.RemoveExpense(group, "nope")
	assert.Len(t, group.Expenses, 1)

	ledger.ResetExpenses(group)
	assert.Empty(t, group.Expenses)
	assert.Len(t, group.Members, 2, "reset leaves members in place")
}
