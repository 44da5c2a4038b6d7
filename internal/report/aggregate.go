package report

import (
	"time"

	"github.com/centsible/backend/internal/currency"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalExpenses sums all expenses, converted into the target currency.
// It returns zero for an empty snapshot.
func TotalExpenses(expenses []models.Expense, target string) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, expense := range expenses {
		converted, err := currency.Convert(expense.Amount, expense.Currency, target)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(converted)
	}

	return total, nil
}

// TotalBudget sums all budget amounts, converted into the target currency.
func TotalBudget(budgets []models.Budget, target string) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, budget := range budgets {
		converted, err := currency.Convert(budget.Amount, budget.Currency, target)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(converted)
	}

	return total, nil
}

// TotalIncome sums all income sources, converted into the target currency.
func TotalIncome(income []models.IncomeSource, target string) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, source := range income {
		converted, err := currency.Convert(source.Amount, source.Currency, target)
		if err != nil {
			return decimal.Zero, err
		}

		total = total.Add(converted)
	}

	return total, nil
}

// ExpensesByCategory groups expenses by their category, summing the
// converted amounts per group.
func ExpensesByCategory(expenses []models.Expense, target string) (map[string]decimal.Decimal, error) {
	result := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		converted, err := currency.Convert(expense.Amount, expense.Currency, target)
		if err != nil {
			return nil, err
		}

		result[expense.Category] = result[expense.Category].Add(converted)
	}

	return result, nil
}

// ExpensesByMonth groups expenses by the short month name of their
// date, evaluated in UTC, summing the converted amounts per group.
func ExpensesByMonth(expenses []models.Expense, target string) (map[string]decimal.Decimal, error) {
	result := make(map[string]decimal.Decimal)

	for _, expense := range expenses {
		converted, err := currency.Convert(expense.Amount, expense.Currency, target)
		if err != nil {
			return nil, err
		}

		month := types.MonthOf(expense.Date).ShortName()
		result[month] = result[month].Add(converted)
	}

	return result, nil
}

// Adherence describes how actual spending compares to a budget.
type Adherence struct {
	Category            string          `json:"category" example:"Food"`
	Budgeted            decimal.Decimal `json:"budgeted" example:"100"`
	Spent               decimal.Decimal `json:"spent" example:"120"`
	AdherencePercentage decimal.Decimal `json:"adherencePercentage" example:"120"` // Spent as a percentage of the budgeted amount
	Remaining           decimal.Decimal `json:"remaining" example:"-20"`
}

// BudgetAdherence computes per-budget adherence against the spending in
// expensesByCategory.
//
// Budget amounts are converted into the target currency before they are
// compared, so expensesByCategory must be computed in that currency.
// A budget with a zero converted amount yields an adherence of zero
// instead of a division by zero.
func BudgetAdherence(budgets []models.Budget, expensesByCategory map[string]decimal.Decimal, target string) ([]Adherence, error) {
	var result []Adherence

	for _, budget := range budgets {
		budgeted, err := currency.Convert(budget.Amount, budget.Currency, target)
		if err != nil {
			return nil, err
		}

		spent := expensesByCategory[budget.Category]

		percentage := decimal.Zero
		if !budgeted.IsZero() {
			percentage = spent.Div(budgeted).Mul(hundred)
		}

		result = append(result, Adherence{
			Category:            budget.Category,
			Budgeted:            budgeted,
			Spent:               spent,
			AdherencePercentage: percentage,
			Remaining:           budgeted.Sub(spent),
		})
	}

	return result, nil
}

// GoalProgress describes how far along a goal is compared to where it
// should be.
type GoalProgress struct {
	Name               string          `json:"name" example:"New car"`
	CurrentAmount      decimal.Decimal `json:"currentAmount" example:"2500"`
	TargetAmount       decimal.Decimal `json:"targetAmount" example:"10000"`
	Currency           string          `json:"currency" example:"USD"`
	ExpectedProgress   decimal.Decimal `json:"expectedProgress" example:"3000"` // Amount that should be saved by now for linear progress
	ProgressPercentage decimal.Decimal `json:"progressPercentage" example:"25"`
	IsOnTrack          bool            `json:"isOnTrack" example:"false"`
	DueDate            time.Time       `json:"dueDate" example:"2026-01-01T00:00:00Z"`
}

// Progress computes the progress of each goal at the given instant.
//
// Expected progress interpolates linearly between the goal's creation
// and its due date. A zero-length or already-expired window does not
// divide by zero: the goal is then on track exactly when the target is
// met.
func Progress(goals []models.Goal, now time.Time) []GoalProgress {
	var result []GoalProgress

	for _, goal := range goals {
		totalDays := goal.DueDate.Sub(goal.CreatedAt).Hours() / 24
		daysPassed := now.Sub(goal.CreatedAt).Hours() / 24

		expected := goal.TargetAmount
		if totalDays > 0 {
			// Clamp to the window so goals checked before creation or
			// after expiry do not extrapolate.
			if daysPassed < 0 {
				daysPassed = 0
			}
			if daysPassed > totalDays {
				daysPassed = totalDays
			}

			expected = goal.TargetAmount.
				Mul(decimal.NewFromFloat(daysPassed)).
				Div(decimal.NewFromFloat(totalDays))
		}

		percentage := decimal.Zero
		if goal.TargetAmount.IsPositive() {
			percentage = goal.CurrentAmount.Div(goal.TargetAmount).Mul(hundred)

			if percentage.GreaterThan(hundred) {
				percentage = hundred
			}
		} else if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
			percentage = hundred
		}

		result = append(result, GoalProgress{
			Name:               goal.Name,
			CurrentAmount:      goal.CurrentAmount,
			TargetAmount:       goal.TargetAmount,
			Currency:           goal.Currency,
			ExpectedProgress:   expected,
			ProgressPercentage: percentage,
			IsOnTrack:          goal.CurrentAmount.GreaterThanOrEqual(expected),
			DueDate:            goal.DueDate,
		})
	}

	return result
}

// SavingsRate returns the percentage of income that is not spent.
// It is defined as zero when there is no income.
func SavingsRate(totalIncome, totalExpenses decimal.Decimal) decimal.Decimal {
	if !totalIncome.IsPositive() {
		return decimal.Zero
	}

	return totalIncome.Sub(totalExpenses).Div(totalIncome).Mul(hundred)
}
