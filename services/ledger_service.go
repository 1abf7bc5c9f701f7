package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// LedgerService performs the validated mutations on a group's members and
// expenses. Every operation either fully applies or returns an error with
// the group untouched; invariants are enforced here, at the mutation
// boundary, so the balance and settlement services can trust their input.
type LedgerService struct{}

// NewLedgerService creates a new ledger service
func NewLedgerService() *LedgerService {
	return &LedgerService{}
}

// AddMember appends a new member with a fresh id. The name is trimmed and
// rejected if empty or a case-insensitive duplicate of an existing member.
func (s *LedgerService) AddMember(group *models.Group, name string) (*models.Member, error) {
	trimmed := utils.TrimName(name)
	if err := utils.ValidateRequired(trimmed, "member name"); err != nil {
		return nil, err
	}

	for _, m := range group.Members {
		if utils.SameName(m.Name, trimmed) {
			return nil, utils.NewValidationError(utils.KindDuplicateName,
				fmt.Sprintf("a member named %q already exists", m.Name))
		}
	}

	member := models.Member{ID: uuid.NewString(), Name: trimmed}
	group.Members = append(group.Members, member)
	return &member, nil
}

// RemoveMember removes the member and cascades: every expense referencing the
// member as payer or participant is deleted whole. Redistributing a removed
// member's share or payment is ambiguous, so nothing is repaired in place.
// Missing ids are a no-op.
func (s *LedgerService) RemoveMember(group *models.Group, memberID string) {
	members := group.Members[:0]
	for _, m := range group.Members {
		if m.ID != memberID {
			members = append(members, m)
		}
	}
	group.Members = members

	expenses := group.Expenses[:0]
	for _, e := range group.Expenses {
		if !e.References(memberID) {
			expenses = append(expenses, e)
		}
	}
	group.Expenses = expenses
}

// AddExpense validates the request and appends a new expense. Validation
// happens entirely before the group is touched.
func (s *LedgerService) AddExpense(group *models.Group, req *models.AddExpenseRequest) (*models.Expense, error) {
	description := utils.TrimName(req.Description)
	if description == "" {
		return nil, utils.NewValidationError(utils.KindEmptyDescription, "expense description is required")
	}
	if err := utils.ValidatePositive(req.Amount, "expense amount"); err != nil {
		return nil, err
	}

	if err := s.validatePayers(group, req.PaidBy, req.Amount); err != nil {
		return nil, err
	}

	var participants []models.ExpenseParticipant
	var err error
	switch req.SplitMethod {
	case utils.SplitMethodEqual:
		participants, err = s.equalParticipants(group, req.Participants, req.Amount)
	case utils.SplitMethodAmount:
		participants, err = s.customParticipants(group, req.Shares, req.Amount)
	default:
		err = utils.NewBadRequestError(fmt.Sprintf("unknown split method %q", req.SplitMethod))
	}
	if err != nil {
		return nil, err
	}

	expense := models.Expense{
		ID:           uuid.NewString(),
		Description:  description,
		Amount:       req.Amount,
		PaidBy:       append([]models.ExpensePayer(nil), req.PaidBy...),
		Participants: participants,
	}
	group.Expenses = append(group.Expenses, expense)
	return &expense, nil
}

// RemoveExpense removes an expense by id; a no-op if absent.
func (s *LedgerService) RemoveExpense(group *models.Group, expenseID string) {
	expenses := group.Expenses[:0]
	for _, e := range group.Expenses {
		if e.ID != expenseID {
			expenses = append(expenses, e)
		}
	}
	group.Expenses = expenses
}

// ResetExpenses clears all expenses; members are unchanged.
func (s *LedgerService) ResetExpenses(group *models.Group) {
	group.Expenses = nil
}

// validatePayers checks that every payer references an existing member and
// that the payer amounts account for the full expense amount within Epsilon.
func (s *LedgerService) validatePayers(group *models.Group, payers []models.ExpensePayer, amount float64) error {
	var totalPaid float64
	for _, p := range payers {
		if !group.HasMember(p.MemberID) {
			return utils.NewValidationError(utils.KindUnknownMember,
				fmt.Sprintf("payer %s is not a member of this group", p.MemberID))
		}
		if p.Amount < 0 {
			return utils.NewValidationError(utils.KindPayersAmountMismatch, "payer amounts cannot be negative")
		}
		totalPaid += p.Amount
	}

	if len(payers) == 0 || !utils.WithinEpsilon(totalPaid, amount) {
		return utils.NewValidationError(utils.KindPayersAmountMismatch,
			"the total paid amount must match the expense amount")
	}
	return nil
}

// equalParticipants builds the participant list for an equal split. Each
// selected member gets amount/count; the floating-point sum may differ from
// the amount by a sub-cent residue, which Epsilon absorbs downstream.
func (s *LedgerService) equalParticipants(group *models.Group, selected []string, amount float64) ([]models.ExpenseParticipant, error) {
	if len(selected) == 0 {
		return nil, utils.NewValidationError(utils.KindNoParticipantsSelected,
			"select at least one participant for an equal split")
	}

	for _, id := range selected {
		if !group.HasMember(id) {
			return nil, utils.NewValidationError(utils.KindUnknownMember,
				fmt.Sprintf("participant %s is not a member of this group", id))
		}
	}

	share := amount / float64(len(selected))
	participants := make([]models.ExpenseParticipant, len(selected))
	for i, id := range selected {
		participants[i] = models.ExpenseParticipant{MemberID: id, Share: share}
	}
	return participants, nil
}

// customParticipants builds the participant list for a by-amount split from
// the entered share strings. The sum of all entered shares, zeros included,
// is validated against the amount BEFORE filtering; only positive shares are
// retained as participants.
func (s *LedgerService) customParticipants(group *models.Group, entered map[string]string, amount float64) ([]models.ExpenseParticipant, error) {
	shares := make(map[string]float64, len(entered))
	total := decimal.Zero
	for memberID, raw := range entered {
		if !group.HasMember(memberID) {
			return nil, utils.NewValidationError(utils.KindUnknownMember,
				fmt.Sprintf("participant %s is not a member of this group", memberID))
		}

		raw = utils.TrimName(raw)
		if raw == "" {
			shares[memberID] = 0
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return nil, utils.NewBadRequestError(fmt.Sprintf("invalid share amount %q", raw))
		}
		shares[memberID] = d.InexactFloat64()
		total = total.Add(d)
	}

	if !utils.WithinEpsilon(total.InexactFloat64(), amount) {
		return nil, utils.NewValidationError(utils.KindSharesAmountMismatch,
			"the sum of individual shares must match the total expense amount")
	}

	// Keep the group's member order so recomputation stays deterministic.
	var participants []models.ExpenseParticipant
	for _, m := range group.Members {
		share, ok := shares[m.ID]
		if !ok || share <= 0 {
			continue
		}
		participants = append(participants, models.ExpenseParticipant{MemberID: m.ID, Share: share})
	}
	if len(participants) == 0 {
		return nil, utils.NewValidationError(utils.KindNoPositiveShares,
			"specify a share for at least one participant")
	}
	return participants, nil
}
