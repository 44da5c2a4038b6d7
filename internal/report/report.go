package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the full financial summary for a snapshot, with every
// monetary value converted to a single currency.
type Report struct {
	Currency           string                     `json:"currency" example:"EUR"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses" example:"1823.07"`
	TotalIncome        decimal.Decimal            `json:"totalIncome" example:"3200.00"`
	TotalBudget        decimal.Decimal            `json:"totalBudget" example:"2100.00"`
	SavingsRate        decimal.Decimal            `json:"savingsRate" example:"43.03"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
	ExpensesByMonth    map[string]decimal.Decimal `json:"expensesByMonth"`
	BudgetAdherence    []Adherence                `json:"budgetAdherence"`
	GoalProgress       []GoalProgress             `json:"goalProgress"`
	Insights           []string                   `json:"insights"`
	Recommendations    []string                   `json:"recommendations"`
	Health             Health                     `json:"health"`
	ForecastedExpenses []MonthAmount              `json:"forecastedExpenses"`
	PredictedIncome    decimal.Decimal            `json:"predictedIncome" example:"3150.00"`
}

// Build computes the complete report for a snapshot. The snapshot is
// expected to be filtered to the requested date range already; the
// expense forecast looks at the snapshot's trailing 90 days relative
// to now.
func Build(s Snapshot, target string, now time.Time) (Report, error) {
	totalExpenses, err := TotalExpenses(s.Expenses, target)
	if err != nil {
		return Report{}, err
	}

	totalIncome, err := TotalIncome(s.Income, target)
	if err != nil {
		return Report{}, err
	}

	totalBudget, err := TotalBudget(s.Budgets, target)
	if err != nil {
		return Report{}, err
	}

	byCategory, err := ExpensesByCategory(s.Expenses, target)
	if err != nil {
		return Report{}, err
	}

	byMonth, err := ExpensesByMonth(s.Expenses, target)
	if err != nil {
		return Report{}, err
	}

	adherence, err := BudgetAdherence(s.Budgets, byCategory, target)
	if err != nil {
		return Report{}, err
	}

	goals := Progress(s.Goals, now)

	forecast, err := ForecastExpenses(s.Expenses, target, now)
	if err != nil {
		return Report{}, err
	}

	predictedIncome, err := PredictIncome(s.Income, target)
	if err != nil {
		return Report{}, err
	}

	figures := Figures{
		TotalExpenses:      totalExpenses,
		TotalIncome:        totalIncome,
		TotalBudget:        totalBudget,
		SavingsRate:        SavingsRate(totalIncome, totalExpenses),
		ExpensesByCategory: byCategory,
		Adherence:          adherence,
		Goals:              goals,
		IncomeCount:        len(s.Income),
	}

	return Report{
		Currency:           target,
		TotalExpenses:      totalExpenses,
		TotalIncome:        totalIncome,
		TotalBudget:        totalBudget,
		SavingsRate:        figures.SavingsRate,
		ExpensesByCategory: byCategory,
		ExpensesByMonth:    byMonth,
		BudgetAdherence:    adherence,
		GoalProgress:       goals,
		Insights:           Insights(figures),
		Recommendations:    Recommendations(figures),
		Health:             HealthScore(figures),
		ForecastedExpenses: forecast,
		PredictedIncome:    predictedIncome,
	}, nil
}
