// models/models.go
package models

// Member is a named participant within a group. Identity is by ID;
// name uniqueness is enforced by the ledger service, not here.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExpensePayer is one contribution toward funding an expense. An expense
// may be funded by several payers, distinct from the split among consumers.
type ExpensePayer struct {
	MemberID string  `json:"memberId"`
	Amount   float64 `json:"amount"`
}

// ExpenseParticipant is one member's portion of liability for an expense.
type ExpenseParticipant struct {
	MemberID string  `json:"memberId"`
	Share    float64 `json:"share"`
}

// Expense is a recorded cost with one or more payers and one or more
// participants with assigned shares.
type Expense struct {
	ID           string               `json:"id"`
	Description  string               `json:"description"`
	Amount       float64              `json:"amount"`
	PaidBy       []ExpensePayer       `json:"paidBy"`
	Participants []ExpenseParticipant `json:"participants"`
}

// Group owns its members and expenses. Slice order is insertion order and
// doubles as display order.
type Group struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Members  []Member  `json:"members"`
	Expenses []Expense `json:"expenses"`
}

// HasMember reports whether memberID currently exists in the group.
func (g *Group) HasMember(memberID string) bool {
	for _, m := range g.Members {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// MemberName returns the display name for memberID, or "" if absent.
func (g *Group) MemberName(memberID string) string {
	for _, m := range g.Members {
		if m.ID == memberID {
			return m.Name
		}
	}
	return ""
}

// References reports whether the expense names memberID as a payer or participant.
func (e *Expense) References(memberID string) bool {
	for _, p := range e.PaidBy {
		if p.MemberID == memberID {
			return true
		}
	}
	for _, p := range e.Participants {
		if p.MemberID == memberID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the group so callers can read or recompute
// without holding the collection lock.
func (g *Group) Clone() Group {
	clone := Group{ID: g.ID, Name: g.Name}
	clone.Members = append([]Member(nil), g.Members...)
	clone.Expenses = make([]Expense, len(g.Expenses))
	for i, e := range g.Expenses {
		clone.Expenses[i] = Expense{
			ID:           e.ID,
			Description:  e.Description,
			Amount:       e.Amount,
			PaidBy:       append([]ExpensePayer(nil), e.PaidBy...),
			Participants: append([]ExpenseParticipant(nil), e.Participants...),
		}
	}
	return clone
}

// MemberBalance is a member's net position: positive means owed money,
// negative means owes money.
type MemberBalance struct {
	MemberID string  `json:"memberId"`
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
}

// Settlement is a suggested transfer from one member to another.
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// GroupSummary is the result of a full recompute over a group's expenses.
type GroupSummary struct {
	TotalSpent  float64         `json:"totalSpent"`
	Balances    []MemberBalance `json:"balances"`
	Settlements []Settlement    `json:"settlements"`
}

// CreateGroupRequest request model
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// GroupIDRequest request model for endpoints keyed by group id
type GroupIDRequest struct {
	GroupID string `json:"groupId" binding:"required"`
}

// AddMemberRequest request model
type AddMemberRequest struct {
	GroupID string `json:"groupId" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// RemoveMemberRequest request model
type RemoveMemberRequest struct {
	GroupID  string `json:"groupId" binding:"required"`
	MemberID string `json:"memberId" binding:"required"`
}

// AddExpenseRequest request model. SplitMethod is "equal" or "amount".
// Participants carries the selected member ids for equal splits; Shares maps
// member id to the entered decimal string for custom-amount splits.
type AddExpenseRequest struct {
	GroupID      string            `json:"groupId" binding:"required"`
	Description  string            `json:"description"`
	Amount       float64           `json:"amount"`
	PaidBy       []ExpensePayer    `json:"paidBy"`
	SplitMethod  string            `json:"splitMethod" binding:"required"`
	Participants []string          `json:"participants,omitempty"`
	Shares       map[string]string `json:"shares,omitempty"`
}

// RemoveExpenseRequest request model
type RemoveExpenseRequest struct {
	GroupID   string `json:"groupId" binding:"required"`
	ExpenseID string `json:"expenseId" binding:"required"`
}

// CreateGroupResponse response model
type CreateGroupResponse struct {
	GroupID string `json:"groupId"`
}

// SummaryResponse response model for the summary endpoint. Lines carries the
// per-member display strings; Summary is null when the group has no data yet.
type SummaryResponse struct {
	Summary *GroupSummary `json:"summary"`
	Lines   []string      `json:"lines,omitempty"`
}
