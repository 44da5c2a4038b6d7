package models

import (
	"errors"
	"strings"
	"time"

	"github.com/centsible/backend/internal/currency"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single expense record.
type Expense struct {
	DefaultModel
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency    string
	Category    string
	SubCategory string
	Date        time.Time
	PaidTo      string
	Notes       string
}

var ErrExpenseAmountNegative = errors.New("expense amounts must not be negative")

// BeforeSave trims whitespace and normalizes the date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	e.SubCategory = strings.TrimSpace(e.SubCategory)
	e.PaidTo = strings.TrimSpace(e.PaidTo)
	e.Notes = strings.TrimSpace(e.Notes)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

func (e *Expense) AfterSave(_ *gorm.DB) error {
	if e.Amount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	return currency.Validate(e.Currency)
}

// AfterFind normalizes the date to UTC, see DefaultModel.AfterFind.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	_ = e.DefaultModel.AfterFind(tx)

	e.Date = e.Date.In(time.UTC)
	return nil
}

// ReportDate returns the date used for report date-range filtering.
func (e Expense) ReportDate() time.Time {
	return e.Date
}
