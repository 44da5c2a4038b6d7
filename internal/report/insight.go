package report

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Figures bundles the aggregate values the insight and recommendation
// rules are evaluated against.
type Figures struct {
	TotalExpenses      decimal.Decimal
	TotalIncome        decimal.Decimal
	TotalBudget        decimal.Decimal
	SavingsRate        decimal.Decimal // percent
	ExpensesByCategory map[string]decimal.Decimal
	Adherence          []Adherence
	Goals              []GoalProgress
	IncomeCount        int
}

// rule is one entry of a decision table. Rules are evaluated in order
// and every message whose predicate matches is included.
type rule struct {
	applies func(Figures) bool
	message func(Figures) string
}

var (
	twenty    = decimal.NewFromInt(20)
	thirty    = decimal.NewFromInt(30)
	ninetyPct = decimal.RequireFromString("0.9")
)

var insightRules = []rule{
	{
		applies: func(f Figures) bool { return f.TotalExpenses.GreaterThan(f.TotalBudget) },
		message: func(Figures) string {
			return "Your total expenses exceed your budget. It's recommended to review your spending habits and identify areas where you can cut back."
		},
	},
	{
		applies: func(f Figures) bool { return !f.TotalExpenses.GreaterThan(f.TotalBudget) },
		message: func(Figures) string {
			return "You're staying within your budget, which is excellent financial management. Keep up the good work!"
		},
	},
	{
		applies: func(f Figures) bool { return f.SavingsRate.IsNegative() },
		message: func(Figures) string {
			return "You're currently spending more than you're earning. Consider reviewing your expenses to find areas where you can cut back."
		},
	},
	{
		applies: func(f Figures) bool {
			return !f.SavingsRate.IsNegative() && f.SavingsRate.LessThan(twenty)
		},
		message: func(Figures) string {
			return "Your current savings rate is below 20%. Try to increase your savings to build a stronger financial foundation."
		},
	},
	{
		applies: func(f Figures) bool { return f.SavingsRate.GreaterThanOrEqual(thirty) },
		message: func(Figures) string {
			return "Your savings rate is over 30%, which is a strong financial position. Consider investing some of these savings for long-term growth."
		},
	},
	{
		applies: func(f Figures) bool {
			return f.SavingsRate.GreaterThanOrEqual(twenty) && f.SavingsRate.LessThan(thirty)
		},
		message: func(Figures) string {
			return "Great job! You're saving more than 20% of your income."
		},
	},
	{
		applies: func(f Figures) bool {
			_, _, ok := topCategory(f.ExpensesByCategory)
			return ok && f.TotalExpenses.IsPositive()
		},
		message: func(f Figures) string {
			name, amount, _ := topCategory(f.ExpensesByCategory)
			share := amount.Div(f.TotalExpenses).Mul(hundred)
			return fmt.Sprintf("Your highest expense category is %s, accounting for %s%% of your total expenses.", name, share.StringFixed(2))
		},
	},
	{
		applies: func(f Figures) bool { return len(f.Goals) > 0 },
		message: func(f Figures) string {
			next := nextDueGoal(f.Goals)
			return fmt.Sprintf("Your next financial goal %q is due on %s.", next.Name, next.DueDate.Format("January 2, 2006"))
		},
	},
}

var recommendationRules = []rule{
	{
		applies: func(f Figures) bool {
			return f.TotalBudget.IsPositive() && f.TotalExpenses.GreaterThan(f.TotalBudget.Mul(ninetyPct))
		},
		message: func(Figures) string {
			return "You're close to exceeding your budget. It's advisable to review your non-essential expenses and consider reducing them."
		},
	},
	{
		applies: func(f Figures) bool { return f.SavingsRate.LessThan(twenty) },
		message: func(Figures) string {
			return "Aim to save at least 20% of your income. Look for areas where you can reduce expenses."
		},
	},
	{
		applies: func(f Figures) bool {
			_, _, ok := topCategory(f.ExpensesByCategory)
			return ok
		},
		message: func(f Figures) string {
			name, _, _ := topCategory(f.ExpensesByCategory)
			return fmt.Sprintf("Consider ways to reduce spending in your highest expense category: %s.", name)
		},
	},
	{
		applies: func(f Figures) bool { return unmetGoals(f.Goals) > 0 },
		message: func(f Figures) string {
			return fmt.Sprintf("You have %d savings goals that are not yet met. Consider allocating more funds to these goals if possible.", unmetGoals(f.Goals))
		},
	},
	{
		applies: func(f Figures) bool {
			return len(f.ExpensesByCategory) > 0 && len(f.ExpensesByCategory) < 5
		},
		message: func(Figures) string {
			return "Your expenses are categorized into only a few categories. For better financial management, consider breaking down your expenses into more detailed categories."
		},
	},
	{
		applies: func(f Figures) bool { return len(f.Adherence) == 0 },
		message: func(Figures) string {
			return "Set up budgets for your main expense categories to better track and control your spending."
		},
	},
	{
		applies: func(f Figures) bool { return len(f.Goals) == 0 },
		message: func(Figures) string {
			return "Set some financial goals to give direction to your saving and spending habits."
		},
	},
	{
		applies: func(f Figures) bool { return f.IncomeCount == 0 },
		message: func(Figures) string {
			return "Make sure to track all your income sources for a complete financial picture."
		},
	},
}

// Insights returns the matching insight messages in rule order.
func Insights(f Figures) []string {
	return evaluate(insightRules, f)
}

// Recommendations returns the matching recommendation messages in rule order.
func Recommendations(f Figures) []string {
	return evaluate(recommendationRules, f)
}

func evaluate(rules []rule, f Figures) []string {
	var messages []string
	for _, r := range rules {
		if r.applies(f) {
			messages = append(messages, r.message(f))
		}
	}

	return messages
}

// topCategory returns the category with the highest spending. Ties are
// broken by name so the result is deterministic.
func topCategory(byCategory map[string]decimal.Decimal) (string, decimal.Decimal, bool) {
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	var top string
	var topAmount decimal.Decimal
	found := false

	for _, name := range names {
		if !found || byCategory[name].GreaterThan(topAmount) {
			top = name
			topAmount = byCategory[name]
			found = true
		}
	}

	return top, topAmount, found
}

// nextDueGoal returns the goal with the earliest due date.
func nextDueGoal(goals []GoalProgress) GoalProgress {
	next := goals[0]
	for _, goal := range goals[1:] {
		if goal.DueDate.Before(next.DueDate) {
			next = goal
		}
	}

	return next
}

// unmetGoals counts the goals that have not reached their target yet.
func unmetGoals(goals []GoalProgress) int {
	count := 0
	for _, goal := range goals {
		if goal.CurrentAmount.LessThan(goal.TargetAmount) {
			count++
		}
	}

	return count
}
