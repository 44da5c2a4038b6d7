// Package export renders a financial report into downloadable documents.
package export

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/currency"
	"github.com/shopspring/decimal"
)

// Filenames the documents are served under.
const (
	PDFFilename   = "comprehensive_financial_summary.pdf"
	ExcelFilename = "comprehensive_financial_summary.xlsx"
)

// Kind describes the outcome of an export.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Result reports the outcome of an export to the caller.
type Result struct {
	Type    Kind   `json:"type" example:"success"`
	Message string `json:"message" example:"Comprehensive PDF summary exported successfully!"`
}

func errorResult(format string, args ...any) Result {
	return Result{Type: Error, Message: fmt.Sprintf(format, args...)}
}

// capturePanic converts a panic from the formatting libraries into an
// error Result so an export never crashes the request. It must be
// deferred by exporters using named return values.
func capturePanic(data *[]byte, result *Result, format string) {
	if p := recover(); p != nil {
		*data = nil
		*result = errorResult(format, p)
	}
}

// Options carries the request parameters that end up in the document
// header.
type Options struct {
	Currency    string
	From        time.Time
	To          time.Time
	PeriodLabel string
}

func (o Options) dateRange() string {
	return fmt.Sprintf("%s - %s", o.From.Format("January 2, 2006"), o.To.Format("January 2, 2006"))
}

func money(amount decimal.Decimal, code string) string {
	return currency.Format(amount, code)
}

func percent(value decimal.Decimal) string {
	return value.StringFixed(1) + "%"
}

// share returns part as a percentage of total, zero when total is zero.
func share(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return part.Div(total).Mul(decimal.NewFromInt(100))
}
