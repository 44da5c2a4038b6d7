package models

import (
	"errors"
	"strings"
	"time"

	"github.com/centsible/backend/internal/currency"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeFrequency is how often an income source pays out.
type IncomeFrequency string

const (
	FrequencyOnce     IncomeFrequency = "once"
	FrequencyWeekly   IncomeFrequency = "weekly"
	FrequencyMonthly  IncomeFrequency = "monthly"
	FrequencyAnnually IncomeFrequency = "annually"
)

// IncomeSource represents a source of income, one-off or recurring.
type IncomeSource struct {
	DefaultModel
	Source            string
	Amount            decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency          string
	Frequency         IncomeFrequency
	Category          string
	Date              time.Time
	IsRecurring       bool
	RecurringInterval string
}

var (
	ErrIncomeAmountNegative   = errors.New("income amounts must not be negative")
	ErrIncomeFrequencyInvalid = errors.New("the income frequency must be one of: once, weekly, monthly, annually")
)

func (i *IncomeSource) BeforeSave(_ *gorm.DB) error {
	i.Source = strings.TrimSpace(i.Source)
	i.Category = strings.TrimSpace(i.Category)
	i.RecurringInterval = strings.TrimSpace(i.RecurringInterval)

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	return nil
}

func (i *IncomeSource) AfterSave(_ *gorm.DB) error {
	if i.Amount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	switch i.Frequency {
	case FrequencyOnce, FrequencyWeekly, FrequencyMonthly, FrequencyAnnually:
	default:
		return ErrIncomeFrequencyInvalid
	}

	return currency.Validate(i.Currency)
}

// AfterFind normalizes the date to UTC, see DefaultModel.AfterFind.
func (i *IncomeSource) AfterFind(tx *gorm.DB) error {
	_ = i.DefaultModel.AfterFind(tx)

	i.Date = i.Date.In(time.UTC)
	return nil
}

// ReportDate returns the date used for report date-range filtering.
func (i IncomeSource) ReportDate() time.Time {
	return i.Date
}
