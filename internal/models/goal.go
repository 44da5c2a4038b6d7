package models

import (
	"errors"
	"strings"
	"time"

	"github.com/centsible/backend/internal/currency"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Milestone is an intermediate target on the way to a goal.
type Milestone struct {
	Name   string          `json:"name" example:"Half-way there"`
	Amount decimal.Decimal `json:"amount" example:"500"`
}

// Goal represents a savings goal.
type Goal struct {
	DefaultModel
	Name                string
	TargetAmount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CurrentAmount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency            string
	DueDate             time.Time
	MonthlyContribution decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InterestRate        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Milestones          []Milestone     `gorm:"serializer:json"`
}

var (
	ErrGoalAmountNotPositive = errors.New("goal target amounts must be larger than zero")
	ErrGoalCurrentNegative   = errors.New("the current amount of a goal must not be negative")
	ErrGoalDueDateNotSet     = errors.New("goals must have a due date")
)

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	if !g.DueDate.IsZero() {
		g.DueDate = g.DueDate.In(time.UTC)
	}

	return nil
}

func (g *Goal) AfterSave(_ *gorm.DB) error {
	if !g.TargetAmount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	if g.CurrentAmount.IsNegative() {
		return ErrGoalCurrentNegative
	}

	if g.DueDate.IsZero() {
		return ErrGoalDueDateNotSet
	}

	return currency.Validate(g.Currency)
}

// AfterFind normalizes the due date to UTC, see DefaultModel.AfterFind.
func (g *Goal) AfterFind(tx *gorm.DB) error {
	_ = g.DefaultModel.AfterFind(tx)

	g.DueDate = g.DueDate.In(time.UTC)
	return nil
}

// ReportDate returns the date used for report date-range filtering.
// Goals are filtered by their due date.
func (g Goal) ReportDate() time.Time {
	return g.DueDate
}
