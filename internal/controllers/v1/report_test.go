package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/export"
	"github.com/centsible/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedReportData creates records in the current month so that the
// default report period covers them.
func seedReportData(t *testing.T) {
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC)

	createTestExpense(t, v1.ExpenseEditable{
		Description: "Weekly groceries",
		Amount:      decimal.NewFromInt(100),
		Category:    "Food",
		Date:        date,
	})

	createTestExpense(t, v1.ExpenseEditable{
		Description: "Concert",
		Amount:      decimal.NewFromInt(50),
		Category:    "Entertainment",
		Date:        date,
	})

	createTestBudget(t, v1.BudgetEditable{
		Category:  "Food",
		Amount:    decimal.NewFromInt(300),
		StartDate: date,
	})

	createTestIncome(t, v1.IncomeEditable{
		Source: "Salary",
		Amount: decimal.NewFromInt(3000),
		Date:   date,
	})

	// Goals are filtered into the report by their due date
	createTestGoal(t, v1.GoalEditable{
		Name:          "Emergency fund",
		TargetAmount:  decimal.NewFromInt(5000),
		CurrentAmount: decimal.NewFromInt(1000),
		DueDate:       date,
	})
}

func (suite *TestSuiteStandard) TestReportEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Nil(suite.T(), response.Error)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "USD", response.Data.Currency)
	assert.True(suite.T(), response.Data.TotalExpenses.IsZero())
	assert.True(suite.T(), response.Data.TotalIncome.IsZero())
	assert.True(suite.T(), response.Data.SavingsRate.IsZero())
}

func (suite *TestSuiteStandard) TestReport() {
	seedReportData(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Nil(suite.T(), response.Error)
	data := response.Data

	assert.True(suite.T(), data.TotalExpenses.Equal(decimal.NewFromInt(150)), "total expenses are %s, should be 150", data.TotalExpenses)
	assert.True(suite.T(), data.TotalIncome.Equal(decimal.NewFromInt(3000)))
	assert.True(suite.T(), data.TotalBudget.Equal(decimal.NewFromInt(300)))
	assert.True(suite.T(), data.SavingsRate.Equal(decimal.NewFromInt(95)), "savings rate is %s, should be 95", data.SavingsRate)

	assert.True(suite.T(), data.ExpensesByCategory["Food"].Equal(decimal.NewFromInt(100)))
	assert.True(suite.T(), data.ExpensesByCategory["Entertainment"].Equal(decimal.NewFromInt(50)))

	require.Len(suite.T(), data.BudgetAdherence, 1)
	assert.Equal(suite.T(), "Food", data.BudgetAdherence[0].Category)

	require.Len(suite.T(), data.GoalProgress, 1)
	assert.True(suite.T(), data.GoalProgress[0].ProgressPercentage.Equal(decimal.NewFromInt(20)))

	assert.NotEmpty(suite.T(), data.Insights)
	assert.NotEmpty(suite.T(), data.Recommendations)
	assert.True(suite.T(), data.Health.Score.IsPositive())
}

// TestReportCurrencyConversion verifies that all amounts are converted
// into the requested currency.
func (suite *TestSuiteStandard) TestReportCurrencyConversion() {
	now := time.Now().UTC()
	createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(100),
		Currency: "USD",
		Date:     time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?currency=eur", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Nil(suite.T(), response.Error)
	assert.Equal(suite.T(), "EUR", response.Data.Currency)
	assert.False(suite.T(), response.Data.TotalExpenses.Equal(decimal.NewFromInt(100)), "amounts should have been converted to EUR")
	assert.True(suite.T(), response.Data.TotalExpenses.IsPositive())
}

func (suite *TestSuiteStandard) TestReportDateRange() {
	createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "In range",
		Amount:      decimal.NewFromInt(40),
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Out of range",
		Amount:      decimal.NewFromInt(60),
		Date:        time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?from=2024-03-01&to=2024-03-31", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Nil(suite.T(), response.Error)
	assert.True(suite.T(), response.Data.TotalExpenses.Equal(decimal.NewFromInt(40)), "total expenses are %s, should be 40", response.Data.TotalExpenses)
}

func (suite *TestSuiteStandard) TestReportCategoriesFilter() {
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC)

	createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(100),
		Category: "Food",
		Date:     date,
	})

	createTestExpense(suite.T(), v1.ExpenseEditable{
		Amount:   decimal.NewFromInt(50),
		Category: "Entertainment",
		Date:     date,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report?categories=Food*", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Nil(suite.T(), response.Error)
	assert.True(suite.T(), response.Data.TotalExpenses.Equal(decimal.NewFromInt(100)), "total expenses are %s, should be 100", response.Data.TotalExpenses)
}

func (suite *TestSuiteStandard) TestReportFails() {
	tests := []struct {
		name  string
		query string
	}{
		{"Unknown currency", "currency=WUB"},
		{"Bad from date", "from=yesterday"},
		{"Bad to date", "to=2024-13-45"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/report?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ReportResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestReportPDF() {
	seedReportData(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report/pdf", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/pdf", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), export.PDFFilename)
	require.Greater(suite.T(), r.Body.Len(), 4)
	assert.Equal(suite.T(), "%PDF", r.Body.String()[:4])
}

func (suite *TestSuiteStandard) TestReportPDFFails() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report/pdf?currency=WUB", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var result export.Result
	test.DecodeResponse(suite.T(), &r, &result)
	assert.Equal(suite.T(), export.Error, result.Type)
	assert.NotEmpty(suite.T(), result.Message)
}

func (suite *TestSuiteStandard) TestReportExcel() {
	seedReportData(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/report/excel", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), export.ExcelFilename)

	// xlsx files are zip archives
	require.Greater(suite.T(), r.Body.Len(), 2)
	assert.Equal(suite.T(), "PK", r.Body.String()[:2])
}

func (suite *TestSuiteStandard) TestReportOptions() {
	tests := []string{
		"http://example.com/v1/report",
		"http://example.com/v1/report/pdf",
		"http://example.com/v1/report/excel",
	}

	for _, path := range tests {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}
