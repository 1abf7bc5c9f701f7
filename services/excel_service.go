package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hisaab-app/hisaab-backend/models"
	"github.com/hisaab-app/hisaab-backend/utils"
)

// ExcelService exports a group's ledger and summary to a spreadsheet.
type ExcelService struct {
	summaryService *SummaryService
}

// NewExcelService creates a new Excel service
func NewExcelService(summaryService *SummaryService) *ExcelService {
	return &ExcelService{
		summaryService: summaryService,
	}
}

// ExportGroupToExcel generates an Excel file with a summary sheet and an
// expense matrix sheet for the group.
func (s *ExcelService) ExportGroupToExcel(group *models.Group) (*excelize.File, string, error) {
	summary := s.summaryService.Recompute(group)

	f := excelize.NewFile()

	if err := s.createSummarySheet(f, group, summary); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}
	if err := s.createExpenseSheet(f, group); err != nil {
		return nil, "", fmt.Errorf("failed to create expenses sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		utils.CleanFileName(group.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createSummarySheet creates Sheet 1: total spent, balances and settlements
func (s *ExcelService) createSummarySheet(f *excelize.File, group *models.Group, summary *models.GroupSummary) error {
	sheetName := "Summary"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	f.SetCellValue(sheetName, "A1", group.Name)
	if summary == nil {
		f.SetCellValue(sheetName, "A3", "No expenses yet")
		return nil
	}

	f.SetCellValue(sheetName, "A3", "Total Spent")
	f.SetCellValue(sheetName, "B3", utils.Round(summary.TotalSpent))

	row := 5
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Member")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Balance")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), "Status")
	row++
	for i, b := range summary.Balances {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), b.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), utils.Round(b.Balance))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), s.summaryService.BalanceLines(summary)[i])
		row++
	}

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "From")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "To")
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), "Amount")
	row++
	for _, step := range summary.Settlements {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), step.From)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), step.To)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), utils.Round(step.Amount))
		row++
	}

	return nil
}

// createExpenseSheet creates Sheet 2: one row per expense with payers and a
// per-member share column for each member.
func (s *ExcelService) createExpenseSheet(f *excelize.File, group *models.Group) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	headers := []string{"Description", "Amount", "Paid By"}
	for _, m := range group.Members {
		headers = append(headers, m.Name)
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, header)
	}

	for i, expense := range group.Expenses {
		rowNum := i + 2

		paidBy := ""
		for j, payer := range expense.PaidBy {
			if j > 0 {
				paidBy += ", "
			}
			paidBy += fmt.Sprintf("%s (%.2f)", group.MemberName(payer.MemberID), payer.Amount)
		}

		shares := make(map[string]float64, len(expense.Participants))
		for _, p := range expense.Participants {
			shares[p.MemberID] = p.Share
		}

		values := []interface{}{expense.Description, utils.Round(expense.Amount), paidBy}
		for _, m := range group.Members {
			if share, ok := shares[m.ID]; ok {
				values = append(values, utils.Round(share))
			} else {
				values = append(values, "")
			}
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return nil
}
