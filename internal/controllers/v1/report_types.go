package v1

import (
	"strings"
	"time"

	"github.com/centsible/backend/internal/currency"
	"github.com/centsible/backend/internal/export"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/report"
	"github.com/gin-gonic/gin"
)

// ReportQuery binds the query parameters of the report endpoints.
type ReportQuery struct {
	Currency   string `form:"currency"`   // Currency to convert all amounts to. Defaults to USD.
	From       string `form:"from"`       // Start of the date range, as YYYY-MM-DD or RFC3339. Defaults to the start of the report period.
	To         string `form:"to"`         // End of the date range, as YYYY-MM-DD or RFC3339. Defaults to the end of the report period.
	ReportType string `form:"reportType"` // One of weekly, monthly, quarterly, yearly. Defaults to monthly.
	Categories string `form:"categories"` // Glob pattern to restrict the categories included, e.g. "Food*".
}

// ReportResponse is the response of the report endpoint.
type ReportResponse struct {
	Data  *report.Report `json:"data"`  // The report
	Error *string        `json:"error"` // The error, if any occurred
}

// reportForRequest assembles the report for the request's query
// parameters. It loads all records, restricts them to the requested
// date range and categories and converts everything into the requested
// currency.
func reportForRequest(c *gin.Context, now time.Time) (report.Report, export.Options, error) {
	var query ReportQuery
	_ = c.Bind(&query)

	target := strings.ToUpper(strings.TrimSpace(query.Currency))
	if target == "" {
		target = "USD"
	}

	if err := currency.Validate(target); err != nil {
		return report.Report{}, export.Options{}, err
	}

	rng := report.PeriodRange(query.ReportType, now)

	if query.From != "" {
		from, err := report.ParseDate(query.From)
		if err != nil {
			return report.Report{}, export.Options{}, err
		}
		rng.From = from
	}

	if query.To != "" {
		to, err := report.ParseDate(query.To)
		if err != nil {
			return report.Report{}, export.Options{}, err
		}
		rng.To = to
	}

	var snapshot report.Snapshot
	if err := models.DB.Find(&snapshot.Expenses).Error; err != nil {
		return report.Report{}, export.Options{}, err
	}
	if err := models.DB.Find(&snapshot.Budgets).Error; err != nil {
		return report.Report{}, export.Options{}, err
	}
	if err := models.DB.Find(&snapshot.Goals).Error; err != nil {
		return report.Report{}, export.Options{}, err
	}
	if err := models.DB.Find(&snapshot.Income).Error; err != nil {
		return report.Report{}, export.Options{}, err
	}

	snapshot = snapshot.Filter(rng).FilterCategories(query.Categories)

	built, err := report.Build(snapshot, target, now)
	if err != nil {
		return report.Report{}, export.Options{}, err
	}

	opts := export.Options{
		Currency:    target,
		From:        rng.From,
		To:          rng.To,
		PeriodLabel: report.PeriodLabel(query.ReportType),
	}

	return built, opts, nil
}
