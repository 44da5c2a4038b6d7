package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/centsible/backend/internal/bank"
	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBanksNotConfigured verifies that the bank endpoints respond with
// HTTP 503 when no Plaid credentials are configured.
func (suite *TestSuiteStandard) TestBanksNotConfigured() {
	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"Link token", http.MethodPost, "http://example.com/v1/banks/link-token", ""},
		{"Exchange", http.MethodPost, "http://example.com/v1/banks/exchange", v1.ExchangeEditable{PublicToken: "public-sandbox-123"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusServiceUnavailable)
		})
	}
}

// TestBanksListEmpty verifies that listing connections works without a
// configured client as long as there is nothing to fetch balances for.
func (suite *TestSuiteStandard) TestBanksListEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/banks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BankConnectionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

// TestBanksListNotConfigured verifies that balances for stored
// connections cannot be fetched without credentials.
func (suite *TestSuiteStandard) TestBanksListNotConfigured() {
	connection := models.BankConnection{
		InstitutionName: "First Platypus Bank",
		ItemID:          "item-sandbox-123",
		AccessToken:     "access-sandbox-123",
	}
	require.Nil(suite.T(), models.DB.Create(&connection).Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/banks", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusServiceUnavailable)

	var response v1.BankConnectionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), bank.ErrNotConfigured.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestBanksDelete() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Non-existing connection", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/banks/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestBanksOptions() {
	tests := []struct {
		path     string
		expected string
	}{
		{"http://example.com/v1/banks", "OPTIONS, GET"},
		{"http://example.com/v1/banks/link-token", "OPTIONS, POST"},
		{"http://example.com/v1/banks/exchange", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.expected, r.Header().Get("allow"))
		})
	}
}
