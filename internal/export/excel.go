package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/centsible/backend/internal/report"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Financial Summary"

// Excel renders the report as an xlsx workbook with a single summary
// sheet. The returned Result tells the client whether the export
// succeeded; the byte slice is only valid on success.
func Excel(r report.Report, opts Options) (data []byte, result Result) {
	defer capturePanic(&data, &result, "Error exporting Excel file: %v")

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errorResult("Error exporting Excel file: %s", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "000000"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDDDDD"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, errorResult("Error exporting Excel file: %s", err)
	}

	row := 1
	write := func(cells ...any) {
		if err != nil {
			return
		}
		err = f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &cells)
		row++
	}

	write("Comprehensive Financial Summary")
	write("Date Range: "+opts.dateRange(), "Currency: "+opts.Currency, opts.PeriodLabel)
	write()
	write("Financial Overview")
	write("Total Expenses", toFloat(r.TotalExpenses))
	write("Total Income", toFloat(r.TotalIncome))
	write("Total Budget", toFloat(r.TotalBudget))
	write("Budget Performance", toFloat(r.TotalBudget.Sub(r.TotalExpenses)))
	write("Savings Rate", toFloat(r.SavingsRate.Div(decimal.NewFromInt(100))))
	write()

	write("Expense Categories and Budgets")
	write("Category", "Actual Expense", "% of Total", "Budget", "Difference")

	budgeted := make(map[string]decimal.Decimal, len(r.BudgetAdherence))
	for _, a := range r.BudgetAdherence {
		budgeted[a.Category] = a.Budgeted
	}

	categories := make([]string, 0, len(r.ExpensesByCategory))
	for category := range r.ExpensesByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		spent := r.ExpensesByCategory[category]
		budget := budgeted[category]
		write(
			category,
			toFloat(spent),
			toFloat(share(spent, r.TotalExpenses).Div(decimal.NewFromInt(100))),
			toFloat(budget),
			toFloat(spent.Sub(budget)),
		)
	}
	write()

	write("Savings Goals")
	write("Goal", "Current Amount", "Target Amount", "Progress", "Due Date")
	for _, goal := range r.GoalProgress {
		write(
			goal.Name,
			toFloat(goal.CurrentAmount),
			toFloat(goal.TargetAmount),
			toFloat(goal.ProgressPercentage.Div(decimal.NewFromInt(100))),
			goal.DueDate.Format("Jan 2, 2006"),
		)
	}
	write()

	write("Insights and Recommendations")
	write("Insights", strings.Join(r.Insights, "\n"))
	write("Recommendations", strings.Join(r.Recommendations, "\n"))

	if err != nil {
		return nil, errorResult("Error exporting Excel file: %s", err)
	}

	if err := f.SetCellStyle(sheetName, "A1", "E1", headerStyle); err != nil {
		return nil, errorResult("Error exporting Excel file: %s", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 20); err != nil {
		return nil, errorResult("Error exporting Excel file: %s", err)
	}
	if err := f.SetColWidth(sheetName, "B", "E", 15); err != nil {
		return nil, errorResult("Error exporting Excel file: %s", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errorResult("Error exporting Excel file: %s", err)
	}

	return buf.Bytes(), Result{Type: Success, Message: "Comprehensive Excel summary exported successfully!"}
}

func toFloat(d decimal.Decimal) float64 {
	value, _ := d.Float64()
	return value
}
