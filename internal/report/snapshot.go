// Package report implements the financial aggregation layer.
//
// All functions in this package are pure: they operate on in-memory
// snapshots of the stored records and never query the database or
// mutate their input.
package report

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// Snapshot is an in-memory copy of all records a report is computed over.
type Snapshot struct {
	Expenses []models.Expense
	Budgets  []models.Budget
	Goals    []models.Goal
	Income   []models.IncomeSource
}

// Range is an inclusive date range.
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies within the range, bounds included.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// DateParseError is returned when a date string cannot be parsed.
//
// Unparseable dates are a hard error instead of silently falling back
// to the current date, which would corrupt reports.
type DateParseError struct {
	Input string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a date", e.Input)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// ParseDate parses a date in RFC3339 or full-date ("2006-01-02") format.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err == nil {
		return t.In(time.UTC), nil
	}

	return time.Time{}, &DateParseError{Input: s, Err: err}
}

// Dated is implemented by all records that can be filtered into a
// report window. Which date field is compared depends on the entity:
// budgets use their start date, goals their due date, expenses and
// income sources their record date.
type Dated interface {
	ReportDate() time.Time
}

// InRange returns the records whose report date lies within the range,
// bounds included.
func InRange[T Dated](records []T, r Range) []T {
	var result []T
	for _, record := range records {
		if r.Contains(record.ReportDate()) {
			result = append(result, record)
		}
	}

	return result
}

// Filter returns a copy of the snapshot reduced to the records within
// the range.
func (s Snapshot) Filter(r Range) Snapshot {
	return Snapshot{
		Expenses: InRange(s.Expenses, r),
		Budgets:  InRange(s.Budgets, r),
		Goals:    InRange(s.Goals, r),
		Income:   InRange(s.Income, r),
	}
}

// FilterCategories reduces the expenses and budgets of the snapshot to
// the ones whose category matches the glob pattern. An empty pattern
// matches everything.
func (s Snapshot) FilterCategories(pattern string) Snapshot {
	if pattern == "" {
		return s
	}

	filtered := Snapshot{
		Goals:  s.Goals,
		Income: s.Income,
	}

	for _, expense := range s.Expenses {
		if glob.Glob(pattern, expense.Category) {
			filtered.Expenses = append(filtered.Expenses, expense)
		}
	}

	for _, budget := range s.Budgets {
		if glob.Glob(pattern, budget.Category) {
			filtered.Budgets = append(filtered.Budgets, budget)
		}
	}

	return filtered
}
