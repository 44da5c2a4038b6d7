package export

import (
	"bytes"
	"sort"

	"github.com/centsible/backend/internal/report"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	pageWidth  = 210.0
	leftMargin = 10.0
)

// PDF renders the report as a PDF document. The returned Result tells
// the client whether the export succeeded; the byte slice is only valid
// on success.
func PDF(r report.Report, opts Options) (data []byte, result Result) {
	defer capturePanic(&data, &result, "Error exporting PDF: %v")

	doc := fpdf.New("P", "mm", "A4", "")
	translate := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	// Header band
	doc.SetFillColor(41, 128, 185)
	doc.Rect(0, 0, pageWidth, 30, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 18)
	doc.SetXY(0, 12)
	doc.CellFormat(pageWidth, 8, "Comprehensive Financial Summary", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	subtitle := "Date Range: " + opts.dateRange() + " | Currency: " + opts.Currency + " | " + opts.PeriodLabel
	doc.CellFormat(pageWidth, 5, subtitle, "", 1, "C", false, 0, "")

	doc.SetY(40)
	doc.SetTextColor(0, 0, 0)

	sectionTitle(doc, "Financial Overview")
	table(doc, translate,
		[]string{"Metric", "Value"},
		[][]string{
			{"Total Expenses", money(r.TotalExpenses, opts.Currency)},
			{"Total Income", money(r.TotalIncome, opts.Currency)},
			{"Total Budget", money(r.TotalBudget, opts.Currency)},
			{"Budget Performance", money(r.TotalBudget.Sub(r.TotalExpenses), opts.Currency)},
			{"Savings Rate", percent(r.SavingsRate)},
		},
		[]float64{60, 60},
	)

	sectionTitle(doc, "Expense Categories and Budgets")
	if rows := categoryRows(r, opts.Currency); len(rows) > 0 {
		table(doc, translate,
			[]string{"Category", "Actual Expense", "% of Total", "Budget", "Difference"},
			rows,
			[]float64{50, 35, 25, 35, 35},
		)
	} else {
		emptyNote(doc, "No expense data available for the selected date range")
	}

	sectionTitle(doc, "Savings Goals")
	if rows := goalRows(r, opts.Currency); len(rows) > 0 {
		table(doc, translate,
			[]string{"Goal", "Current Amount", "Target Amount", "Progress", "Due Date"},
			rows,
			[]float64{50, 35, 35, 25, 35},
		)
	} else {
		emptyNote(doc, "No savings goals data available for the selected date range")
	}

	sectionTitle(doc, "Insights and Recommendations")
	bulletList(doc, translate, "Insights:", r.Insights)
	bulletList(doc, translate, "Recommendations:", r.Recommendations)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errorResult("Error exporting PDF: %s", err)
	}

	return buf.Bytes(), Result{Type: Success, Message: "Comprehensive PDF summary exported successfully!"}
}

func sectionTitle(doc *fpdf.Fpdf, title string) {
	doc.SetX(leftMargin)
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	doc.Ln(2)
}

func emptyNote(doc *fpdf.Fpdf, note string) {
	doc.SetX(leftMargin)
	doc.SetFont("Helvetica", "I", 10)
	doc.CellFormat(0, 6, note, "", 1, "L", false, 0, "")
	doc.Ln(4)
}

// table renders a striped table with the blue header band.
func table(doc *fpdf.Fpdf, translate func(string) string, head []string, rows [][]string, widths []float64) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(41, 128, 185)
	doc.SetTextColor(255, 255, 255)

	doc.SetX(leftMargin)
	for i, cell := range head {
		doc.CellFormat(widths[i], 7, translate(cell), "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(60, 60, 60)

	for n, row := range rows {
		fill := n%2 == 1
		doc.SetFillColor(240, 240, 240)

		doc.SetX(leftMargin)
		for i, cell := range row {
			doc.CellFormat(widths[i], 6, translate(cell), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
	}

	doc.SetTextColor(0, 0, 0)
	doc.Ln(6)
}

func bulletList(doc *fpdf.Fpdf, translate func(string) string, title string, items []string) {
	doc.SetX(leftMargin)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 6, title, "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, item := range items {
		doc.SetX(leftMargin + 5)
		doc.MultiCell(pageWidth-2*leftMargin-10, 5, translate("- "+item), "", "L", false)
		doc.Ln(1)
	}
	doc.Ln(3)
}

// categoryRows builds the expense table, one row per category sorted by
// name, with the matching budget looked up from the adherence data.
func categoryRows(r report.Report, code string) [][]string {
	categories := make([]string, 0, len(r.ExpensesByCategory))
	for category := range r.ExpensesByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	budgeted := make(map[string]decimal.Decimal, len(r.BudgetAdherence))
	for _, a := range r.BudgetAdherence {
		budgeted[a.Category] = a.Budgeted
	}

	rows := make([][]string, 0, len(categories))
	for _, category := range categories {
		spent := r.ExpensesByCategory[category]
		budget := budgeted[category]

		rows = append(rows, []string{
			category,
			money(spent, code),
			percent(share(spent, r.TotalExpenses)),
			money(budget, code),
			money(spent.Sub(budget), code),
		})
	}

	return rows
}

func goalRows(r report.Report, code string) [][]string {
	rows := make([][]string, 0, len(r.GoalProgress))
	for _, goal := range r.GoalProgress {
		rows = append(rows, []string{
			goal.Name,
			money(goal.CurrentAmount, code),
			money(goal.TargetAmount, code),
			percent(goal.ProgressPercentage),
			goal.DueDate.Format("Jan 2, 2006"),
		})
	}

	return rows
}
