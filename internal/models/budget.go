package models

import (
	"errors"
	"strings"
	"time"

	"github.com/centsible/backend/internal/currency"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetPeriod is the recurrence of a budget.
type BudgetPeriod string

const (
	PeriodDaily   BudgetPeriod = "daily"
	PeriodWeekly  BudgetPeriod = "weekly"
	PeriodMonthly BudgetPeriod = "monthly"
	PeriodYearly  BudgetPeriod = "yearly"
)

// Budget represents a spending limit for a category over a period.
type Budget struct {
	DefaultModel
	Category    string
	SubCategory string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency    string
	Period      BudgetPeriod
	StartDate   time.Time
	EndDate     time.Time
}

var (
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrBudgetPeriodInvalid     = errors.New("the budget period must be one of: daily, weekly, monthly, yearly")
	ErrBudgetDatesInvalid      = errors.New("the budget start date must not be after its end date")
)

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)
	b.SubCategory = strings.TrimSpace(b.SubCategory)

	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)

	return nil
}

func (b *Budget) AfterSave(_ *gorm.DB) error {
	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	switch b.Period {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
	default:
		return ErrBudgetPeriodInvalid
	}

	if b.StartDate.After(b.EndDate) {
		return ErrBudgetDatesInvalid
	}

	return currency.Validate(b.Currency)
}

// AfterFind normalizes the dates to UTC, see DefaultModel.AfterFind.
func (b *Budget) AfterFind(tx *gorm.DB) error {
	_ = b.DefaultModel.AfterFind(tx)

	b.StartDate = b.StartDate.In(time.UTC)
	b.EndDate = b.EndDate.In(time.UTC)
	return nil
}

// ReportDate returns the date used for report date-range filtering.
// Budgets are filtered by their start date.
func (b Budget) ReportDate() time.Time {
	return b.StartDate
}
