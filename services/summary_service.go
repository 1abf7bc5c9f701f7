package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/hisaab-app/hisaab-backend/cache"
	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// SummaryService runs the recompute pipeline: balance calculation followed
// by settlement planning. Recompute is a pure function of the group's
// current members and expenses; the cache only short-circuits repeat reads
// between mutations.
type SummaryService struct {
	balanceService    *BalanceService
	settlementService *SettlementService
	cache             cache.Cache
}

// NewSummaryService creates a new summary service
func NewSummaryService(balanceService *BalanceService, settlementService *SettlementService, c cache.Cache) *SummaryService {
	return &SummaryService{
		balanceService:    balanceService,
		settlementService: settlementService,
		cache:             c,
	}
}

// Recompute produces the full summary for a group: total spent, per-member
// balances in insertion order, and the greedy settlement plan. Returns nil
// when the group has no members or no expenses.
func (s *SummaryService) Recompute(group *models.Group) *models.GroupSummary {
	balances := s.balanceService.ComputeBalances(group)
	if balances == nil {
		return nil
	}

	// Plan mutates its working copy of the balances, so hand it a clone.
	working := make([]models.MemberBalance, len(balances))
	copy(working, balances)
	settlements := s.settlementService.Plan(working)
	if settlements == nil {
		settlements = []models.Settlement{}
	}

	return &models.GroupSummary{
		TotalSpent:  s.balanceService.TotalSpent(group),
		Balances:    balances,
		Settlements: settlements,
	}
}

// GetSummary returns the cached summary for the group, recomputing on a miss.
func (s *SummaryService) GetSummary(group *models.Group) *models.GroupSummary {
	if summary, ok := s.cache.GetSummary(group.ID); ok {
		return summary
	}

	summary := s.Recompute(group)
	if summary != nil {
		s.cache.SetSummary(group.ID, summary)
	}
	return summary
}

// Invalidate drops the cached summary after a mutation
func (s *SummaryService) Invalidate(groupID string) {
	s.cache.Invalidate(groupID)
}

// BalanceLines renders one display line per member: owed, owes, or settled.
// A balance within Epsilon of zero counts as settled.
func (s *SummaryService) BalanceLines(summary *models.GroupSummary) []string {
	if summary == nil {
		return nil
	}

	lines := make([]string, len(summary.Balances))
	for i, b := range summary.Balances {
		switch {
		case b.Balance > utils.Epsilon:
			lines[i] = fmt.Sprintf("%s is owed %s%.2f", b.Name, utils.CurrencySymbol, b.Balance)
		case b.Balance < -utils.Epsilon:
			lines[i] = fmt.Sprintf("%s owes %s%.2f", b.Name, utils.CurrencySymbol, math.Abs(b.Balance))
		default:
			lines[i] = fmt.Sprintf("%s is settled", b.Name)
		}
	}
	return lines
}

// SettlementLines renders the settlement steps as display strings.
func (s *SummaryService) SettlementLines(summary *models.GroupSummary) []string {
	if summary == nil {
		return nil
	}

	lines := make([]string, len(summary.Settlements))
	for i, step := range summary.Settlements {
		lines[i] = fmt.Sprintf("%s pays %s %s%.2f", step.From, step.To, utils.CurrencySymbol, step.Amount)
	}
	return lines
}

// BuildReport renders the shareable text report for a group's summary.
func (s *SummaryService) BuildReport(group *models.Group, summary *models.GroupSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s - Summary*\n\n", group.Name)

	if summary == nil {
		b.WriteString("No expenses yet.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Total Spent: %s%.2f\n\n", utils.CurrencySymbol, summary.TotalSpent)
	b.WriteString("*Settlements:*\n")
	for _, line := range s.SettlementLines(summary) {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	return b.String()
}
