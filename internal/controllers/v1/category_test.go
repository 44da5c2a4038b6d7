package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCategory(t *testing.T, c v1.CategoryEditable, expectedStatus ...int) v1.CategoryResponse {
	if c.Name == "" {
		c.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.CategoryEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.CategoryResponse{}
}

// TestCategoriesNameUnique verifies that category names must be unique.
func (suite *TestSuiteStandard) TestCategoriesNameUnique() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "Food"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrCategoryNameNotUnique.Error(), *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestCategoriesGetSingle() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing category", c.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No category with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")

			var category v1.CategoryResponse
			test.DecodeResponse(t, &r, &category)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Groceries",
		Note: "Everything eaten or drunk",
	})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Daily stuff",
		Note: "Groceries, drug store, …",
	})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Rent",
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Name", "name=Groceries", 1},
		{"Fuzzy name", "name=s", 2},
		{"Note", "note=eaten", 1},
		{"Search", "search=groceries", 2},
		{"Offset and limit", "offset=1&limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.CategoryListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestCategoriesLinks verifies that the links to the category's expenses
// and budgets are set.
func (suite *TestSuiteStandard) TestCategoriesLinks() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})

	assert.Contains(suite.T(), c.Data.Links.Expenses, "/v1/expenses?category=Food")
	assert.Contains(suite.T(), c.Data.Links.Budgets, "/v1/budgets?category=Food")
}

func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"name": "Food & Drink",
		"note": "Renamed",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var c v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &c)

	assert.Equal(suite.T(), "Food & Drink", c.Data.Name)
	assert.Equal(suite.T(), "Renamed", c.Data.Note)
}

func (suite *TestSuiteStandard) TestCategoriesDelete() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing category", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				c := createTestCategory(t, v1.CategoryEditable{})
				tt.id = c.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", tt.id), "")
			test.AssertHTTPStatus(t, &recorder, tt.status)
		})
	}
}

// TestCategoriesGetSorted verifies that categories are sorted by name.
func (suite *TestSuiteStandard) TestCategoriesGetSorted() {
	c1 := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Zulu is the last one"})
	c2 := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Alphabetically first"})
	c3 := createTestCategory(suite.T(), v1.CategoryEditable{Name: "In the middle"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)

	require.Len(suite.T(), categories.Data, 3, "Category list has wrong length")

	assert.Equal(suite.T(), c2.Data.Name, categories.Data[0].Name)
	assert.Equal(suite.T(), c3.Data.Name, categories.Data[1].Name)
	assert.Equal(suite.T(), c1.Data.Name, categories.Data[2].Name)
}
