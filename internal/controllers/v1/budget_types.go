package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters of a budget.
type BudgetEditable struct {
	Category    string              `json:"category" example:"Food" default:""`
	SubCategory string              `json:"subCategory" example:"Groceries" default:""`
	Amount      decimal.Decimal     `json:"amount" example:"300"`
	Currency    string              `json:"currency" example:"USD" default:"USD"`
	Period      models.BudgetPeriod `json:"period" example:"monthly" default:"monthly"`
	StartDate   time.Time           `json:"startDate" example:"2024-06-01T00:00:00Z"`
	EndDate     time.Time           `json:"endDate" example:"2024-06-30T00:00:00Z"`
}

func (editable BudgetEditable) model() models.Budget {
	currencyCode := editable.Currency
	if currencyCode == "" {
		currencyCode = "USD"
	}

	period := editable.Period
	if period == "" {
		period = models.PeriodMonthly
	}

	return models.Budget{
		Category:    editable.Category,
		SubCategory: editable.SubCategory,
		Amount:      editable.Amount,
		Currency:    currencyCode,
		Period:      period,
		StartDate:   editable.StartDate,
		EndDate:     editable.EndDate,
	}
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
}

// Budget is the API representation of a budget.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			Category:    model.Category,
			SubCategory: model.SubCategory,
			Amount:      model.Amount,
			Currency:    model.Currency,
			Period:      model.Period,
			StartDate:   model.StartDate,
			EndDate:     model.EndDate,
		},
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/budgets/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                          // List of budgets
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type BudgetCreateResponse struct {
	Data  []BudgetResponse `json:"data"`                                                          // List of the created budgets or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *BudgetCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, BudgetResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Category    string `form:"category"`                   // By category
	SubCategory string `form:"subCategory"`                // By sub-category
	Currency    string `form:"currency"`                   // By currency code
	Period      string `form:"period"`                     // By period
	Offset      uint   `form:"offset" filterField:"false"` // The offset of the first budget returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`  // Maximum number of budgets to return. Defaults to 50.
}

func (f BudgetQueryFilter) model() models.Budget {
	return models.Budget{
		Category:    f.Category,
		SubCategory: f.SubCategory,
		Currency:    f.Currency,
		Period:      models.BudgetPeriod(f.Period),
	}
}
