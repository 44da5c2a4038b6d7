package report

import (
	"time"

	"github.com/centsible/backend/internal/currency"
	"github.com/centsible/backend/internal/models"
	"github.com/shopspring/decimal"
)

// MonthAmount is one projected month of a forecast.
type MonthAmount struct {
	Month  string          `json:"month" example:"October"`
	Amount decimal.Decimal `json:"amount" example:"1210.50"`
}

var (
	three        = decimal.NewFromInt(3)
	growthFactor = decimal.RequireFromString("1.1")
	twelve       = decimal.NewFromInt(12)
)

// lookback is the trailing window spending is averaged over.
const lookback = 90 * 24 * time.Hour

// ForecastExpenses projects spending for the next three months. The
// projection is the monthly average over the trailing 90 days with a
// 10% buffer applied, converted to the target currency.
func ForecastExpenses(expenses []models.Expense, target string, now time.Time) ([]MonthAmount, error) {
	cutoff := now.Add(-lookback)

	recent := decimal.Zero
	for _, expense := range expenses {
		if expense.Date.Before(cutoff) || expense.Date.After(now) {
			continue
		}
		converted, err := currency.Convert(expense.Amount, expense.Currency, target)
		if err != nil {
			return nil, err
		}
		recent = recent.Add(converted)
	}

	projected := recent.Div(three).Mul(growthFactor)

	forecast := make([]MonthAmount, 0, 3)
	for i := 1; i <= 3; i++ {
		month := now.UTC().AddDate(0, i, 0)
		forecast = append(forecast, MonthAmount{
			Month:  month.Format("January"),
			Amount: projected.Round(2),
		})
	}

	return forecast, nil
}

// PredictIncome estimates the expected monthly income from all recurring
// income sources, converted to the target currency. One-off income does
// not contribute.
func PredictIncome(income []models.IncomeSource, target string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, source := range income {
		var monthly decimal.Decimal
		switch source.Frequency {
		case models.FrequencyMonthly:
			monthly = source.Amount
		case models.FrequencyAnnually:
			monthly = source.Amount.Div(twelve)
		case models.FrequencyWeekly:
			monthly = source.Amount.Mul(decimal.NewFromInt(52)).Div(twelve)
		default:
			continue
		}

		converted, err := currency.Convert(monthly, source.Currency, target)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(converted)
	}

	return total.Round(2), nil
}
