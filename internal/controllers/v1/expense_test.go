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

func createTestExpense(t *testing.T, e v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if e.Category == "" {
		e.Category = "Food"
	}

	if e.Date.IsZero() {
		e.Date = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ExpenseEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ExpenseResponse{}
}

// TestExpensesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, v1.ExpenseEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ExpenseListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		id     string // path at the expenses endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No expense with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Expense exists", createTestExpense(suite.T(), v1.ExpenseEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestExpensesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing expense", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No expense with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")

			var expense v1.ExpenseResponse
			test.DecodeResponse(t, &r, &expense)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Weekly groceries",
		Amount:      decimal.NewFromInt(54),
		Category:    "Food",
		SubCategory: "Groceries",
		PaidTo:      "Marketside",
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Cinema tickets",
		Amount:      decimal.NewFromInt(30),
		Category:    "Entertainment",
		Notes:       "Two tickets for the evening show",
	})

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Takeout",
		Amount:      decimal.NewFromInt(25),
		Currency:    "EUR",
		Category:    "Food",
		SubCategory: "Restaurants",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category Food", "category=Food", 2},
		{"Category not existing", "category=Rent", 0},
		{"Sub-category", "subCategory=Groceries", 1},
		{"Currency", "currency=EUR", 1},
		{"Payee", "paidTo=Marketside", 1},
		{"Fuzzy description", "description=tickets", 1},
		{"Search in notes", "search=evening", 1},
		{"Search case-insensitive", "search=TAKEOUT", 1},
		{"Offset 2", "offset=2", 1},
		{"Offset 0, limit 2", "offset=0&limit=2", 2},
		{"Limit 4", "limit=4", 3},
		{"Limit 0", "limit=0", 0},
		{"Limit -1", "limit=-1", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ExpenseListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int // expected HTTP status
		testFunc func(t *testing.T, e v1.ExpenseCreateResponse)
	}{
		{
			"Broken Body", `[{ "description": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, e v1.ExpenseCreateResponse) {
				assert.Equal(t, "the body of your request contains invalid or un-parseable data. Please check and try again", *e.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, e v1.ExpenseCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *e.Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var e v1.ExpenseCreateResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

// TestExpensesCreateDefaults verifies that the currency defaults to USD.
func (suite *TestSuiteStandard) TestExpensesCreateDefaults() {
	e := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Defaulted"})

	assert.Equal(suite.T(), "USD", e.Data.Currency)
}

// Verify that updating expenses works as desired
func (suite *TestSuiteStandard) TestExpensesUpdate() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Original description"})

	tests := []struct {
		name     string         // name of the test
		expense  map[string]any // the updates to perform. This is not a struct because that would set all fields on the request
		testFunc func(t *testing.T, e v1.ExpenseResponse)
	}{
		{
			"Description, Notes",
			map[string]any{
				"description": "Updated description",
				"notes":       "A note!",
			},
			func(t *testing.T, e v1.ExpenseResponse) {
				assert.Equal(t, "Updated description", e.Data.Description)
				assert.Equal(t, "A note!", e.Data.Notes)
			},
		},
		{
			"Amount",
			map[string]any{
				"amount": "72.31",
			},
			func(t *testing.T, e v1.ExpenseResponse) {
				assert.True(t, e.Data.Amount.Equal(decimal.RequireFromString("72.31")))
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, expense.Data.Links.Self, tt.expense)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var e v1.ExpenseResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"description": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "description": 2" }`, http.StatusBadRequest},
		{"Non-existing expense", uuid.New().String(), `{"description": "Whatever"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				expense := createTestExpense(suite.T(), v1.ExpenseEditable{
					Description: "Auto-created for test",
				})

				tt.id = expense.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestExpensesDelete verifies all cases for expense deletions.
func (suite *TestSuiteStandard) TestExpensesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing expense", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				e := createTestExpense(t, v1.ExpenseEditable{})
				tt.id = e.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestExpensesGetSorted verifies that expenses are sorted by date, newest first.
func (suite *TestSuiteStandard) TestExpensesGetSorted() {
	e1 := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Oldest",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	e2 := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Newest",
		Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	})

	e3 := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Middle",
		Date:        time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)

	require.Len(suite.T(), expenses.Data, 3, "Expense list has wrong length")

	assert.Equal(suite.T(), e2.Data.Description, expenses.Data[0].Description)
	assert.Equal(suite.T(), e3.Data.Description, expenses.Data[1].Description)
	assert.Equal(suite.T(), e1.Data.Description, expenses.Data[2].Description)
}

func (suite *TestSuiteStandard) TestExpensesPagination() {
	for i := 0; i < 10; i++ {
		createTestExpense(suite.T(), v1.ExpenseEditable{Description: fmt.Sprint(i)})
	}

	tests := []struct {
		name          string
		offset        uint
		limit         int
		expectedCount int
		expectedTotal int64
	}{
		{"All", 0, -1, 10, 10},
		{"First 5", 0, 5, 5, 10},
		{"Last 5", 5, -1, 5, 10},
		{"Offset 3", 3, -1, 7, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?offset=%d&limit=%d", tt.offset, tt.limit), "")
			test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

			var expenses v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &expenses)

			assert.Equal(suite.T(), tt.offset, expenses.Pagination.Offset)
			assert.Equal(suite.T(), tt.limit, expenses.Pagination.Limit)
			assert.Equal(suite.T(), tt.expectedCount, expenses.Pagination.Count)
			assert.Equal(suite.T(), tt.expectedTotal, expenses.Pagination.Total)
		})
	}
}
