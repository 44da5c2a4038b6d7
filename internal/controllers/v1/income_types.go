package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters of an income source.
type IncomeEditable struct {
	Source            string                 `json:"source" example:"Salary" default:""`
	Amount            decimal.Decimal        `json:"amount" example:"3000"`
	Currency          string                 `json:"currency" example:"USD" default:"USD"`
	Frequency         models.IncomeFrequency `json:"frequency" example:"monthly" default:"once"`
	Category          string                 `json:"category" example:"Employment" default:""`
	Date              time.Time              `json:"date" example:"2024-06-01T00:00:00Z"`
	IsRecurring       bool                   `json:"isRecurring" example:"true" default:"false"`
	RecurringInterval string                 `json:"recurringInterval" example:"monthly" default:""`
}

func (editable IncomeEditable) model() models.IncomeSource {
	currencyCode := editable.Currency
	if currencyCode == "" {
		currencyCode = "USD"
	}

	frequency := editable.Frequency
	if frequency == "" {
		frequency = models.FrequencyOnce
	}

	return models.IncomeSource{
		Source:            editable.Source,
		Amount:            editable.Amount,
		Currency:          currencyCode,
		Frequency:         frequency,
		Category:          editable.Category,
		Date:              editable.Date,
		IsRecurring:       editable.IsRecurring,
		RecurringInterval: editable.RecurringInterval,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/income/a6c1304e-3bc3-4a25-b2d0-cde4f7dbb0dd"` // The income source itself
}

// Income is the API representation of an income source.
type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.IncomeSource) Income {
	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Source:            model.Source,
			Amount:            model.Amount,
			Currency:          model.Currency,
			Frequency:         model.Frequency,
			Category:          model.Category,
			Date:              model.Date,
			IsRecurring:       model.IsRecurring,
			RecurringInterval: model.RecurringInterval,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/income/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of income sources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created income sources or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, IncomeResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the income source
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	Source    string `form:"source" filterField:"false"` // By source name
	Currency  string `form:"currency"`                   // By currency code
	Frequency string `form:"frequency"`                  // By frequency
	Category  string `form:"category"`                   // By category
	Offset    uint   `form:"offset" filterField:"false"` // The offset of the first income source returned. Defaults to 0.
	Limit     int    `form:"limit" filterField:"false"`  // Maximum number of income sources to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() models.IncomeSource {
	return models.IncomeSource{
		Currency:  f.Currency,
		Frequency: models.IncomeFrequency(f.Frequency),
		Category:  f.Category,
	}
}
