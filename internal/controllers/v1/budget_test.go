package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBudget(t *testing.T, b v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if b.Category == "" {
		b.Category = "Food"
	}

	if b.Amount.IsZero() {
		b.Amount = decimal.NewFromInt(300)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.BudgetEditable{b}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.BudgetResponse{}
}

// TestBudgetsCreateDefaults verifies that currency and period default
// to USD and monthly.
func (suite *TestSuiteStandard) TestBudgetsCreateDefaults() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	assert.Equal(suite.T(), "USD", b.Data.Currency)
	assert.Equal(suite.T(), models.PeriodMonthly, b.Data.Period)
}

func (suite *TestSuiteStandard) TestBudgetsOptions() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Budget exists", createTestBudget(suite.T(), v1.BudgetEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/budgets", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetSingle() {
	b := createTestBudget(suite.T(), v1.BudgetEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing budget", b.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No budget with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")

			var budget v1.BudgetResponse
			test.DecodeResponse(t, &r, &budget)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetFilter() {
	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Category: "Food",
		Period:   models.PeriodMonthly,
	})

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Category:    "Food",
		SubCategory: "Restaurants",
		Period:      models.PeriodWeekly,
	})

	_ = createTestBudget(suite.T(), v1.BudgetEditable{
		Category: "Entertainment",
		Currency: "EUR",
		Period:   models.PeriodMonthly,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category", "category=Food", 2},
		{"Sub-category", "subCategory=Restaurants", 1},
		{"Period", "period=monthly", 2},
		{"Currency", "currency=EUR", 1},
		{"Currency not used", "currency=JPY", 0},
		{"Limit 1", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.BudgetListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsCreateInvalidPeriod() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/budgets", `[{ "category": "Food", "period": "biweekly" }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrBudgetPeriodInvalid.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestBudgetsUpdate() {
	budget := createTestBudget(suite.T(), v1.BudgetEditable{Category: "Food"})

	r := test.Request(suite.T(), http.MethodPatch, budget.Data.Links.Self, map[string]any{
		"amount": "450",
		"period": "yearly",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var b v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &b)

	assert.True(suite.T(), b.Data.Amount.Equal(decimal.NewFromInt(450)))
	assert.Equal(suite.T(), models.PeriodYearly, b.Data.Period)
}

func (suite *TestSuiteStandard) TestBudgetsDelete() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing budget", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				b := createTestBudget(t, v1.BudgetEditable{})
				tt.id = b.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestBudgetsGetSorted verifies that budgets are sorted by start date,
// newest first.
func (suite *TestSuiteStandard) TestBudgetsGetSorted() {
	b1 := createTestBudget(suite.T(), v1.BudgetEditable{
		Category:  "Older",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	b2 := createTestBudget(suite.T(), v1.BudgetEditable{
		Category:  "Newer",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var budgets v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &budgets)

	require.Len(suite.T(), budgets.Data, 2, "Budget list has wrong length")

	assert.Equal(suite.T(), b2.Data.Category, budgets.Data[0].Category)
	assert.Equal(suite.T(), b1.Data.Category, budgets.Data[1].Category)
}
