package report

import "github.com/shopspring/decimal"

// Health is the composite financial health assessment, scored 0-100.
type Health struct {
	Score decimal.Decimal `json:"score" example:"72.5"`
	Tips  []string        `json:"tips"`
}

// Component weights. They sum to 100.
var (
	weightSavings   = decimal.NewFromInt(30)
	weightRatio     = decimal.NewFromInt(20)
	weightAdherence = decimal.NewFromInt(25)
	weightGoals     = decimal.NewFromInt(25)
)

// HealthScore scores the overall financial situation by combining the
// savings rate, the income to expense ratio, budget adherence and goal
// progress into a single weighted number between 0 and 100.
func HealthScore(f Figures) Health {
	score := decimal.Zero
	var tips []string

	// Savings rate: full weight at a 30% rate, proportional below.
	if f.SavingsRate.GreaterThanOrEqual(thirty) {
		score = score.Add(weightSavings)
	} else if f.SavingsRate.IsPositive() {
		score = score.Add(weightSavings.Mul(f.SavingsRate).Div(thirty))
		tips = append(tips, "Increase your savings rate towards 30% of your income.")
	} else {
		tips = append(tips, "Your expenses exceed your income. Focus on reducing spending or increasing income.")
	}

	// Income to expense ratio: full weight when income covers expenses
	// at least 1.5 times over.
	ratioTarget := decimal.RequireFromString("1.5")
	if f.TotalExpenses.IsPositive() {
		ratio := f.TotalIncome.Div(f.TotalExpenses)
		if ratio.GreaterThanOrEqual(ratioTarget) {
			score = score.Add(weightRatio)
		} else if ratio.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			score = score.Add(weightRatio.Mul(ratio).Div(ratioTarget))
			tips = append(tips, "Work towards earning at least 1.5 times what you spend.")
		} else {
			tips = append(tips, "Your income does not cover your expenses. Review your budget urgently.")
		}
	} else if f.TotalIncome.IsPositive() {
		score = score.Add(weightRatio)
	}

	// Budget adherence: the share of budgets that were not overspent.
	if len(f.Adherence) > 0 {
		within := 0
		for _, a := range f.Adherence {
			if !a.Spent.GreaterThan(a.Budgeted) {
				within++
			}
		}
		share := decimal.NewFromInt(int64(within)).Div(decimal.NewFromInt(int64(len(f.Adherence))))
		score = score.Add(weightAdherence.Mul(share))
		if within < len(f.Adherence) {
			tips = append(tips, "Some of your budgets are overspent. Adjust your spending or your budget amounts.")
		}
	} else {
		tips = append(tips, "Create budgets for your spending categories to improve your financial health score.")
	}

	// Goal progress: average progress percentage across all goals.
	if len(f.Goals) > 0 {
		sum := decimal.Zero
		for _, g := range f.Goals {
			sum = sum.Add(g.ProgressPercentage)
		}
		average := sum.Div(decimal.NewFromInt(int64(len(f.Goals))))
		score = score.Add(weightGoals.Mul(average).Div(hundred))
		if average.LessThan(decimal.NewFromInt(50)) {
			tips = append(tips, "Your goals are less than halfway funded on average. Consider increasing contributions.")
		}
	} else {
		tips = append(tips, "Set financial goals to track your long-term progress.")
	}

	return Health{Score: score.Round(2), Tips: tips}
}
