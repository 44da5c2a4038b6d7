package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters of an expense.
type ExpenseEditable struct {
	Description string          `json:"description" example:"Weekly groceries" default:""`
	Amount      decimal.Decimal `json:"amount" example:"54.30"`
	Currency    string          `json:"currency" example:"USD" default:"USD"`
	Category    string          `json:"category" example:"Food" default:""`
	SubCategory string          `json:"subCategory" example:"Groceries" default:""`
	Date        time.Time       `json:"date" example:"2024-06-01T00:00:00Z"`
	PaidTo      string          `json:"paidTo" example:"Marketside" default:""`
	Notes       string          `json:"notes" example:"" default:""`
}

func (editable ExpenseEditable) model() models.Expense {
	currencyCode := editable.Currency
	if currencyCode == "" {
		currencyCode = "USD"
	}

	return models.Expense{
		Description: editable.Description,
		Amount:      editable.Amount,
		Currency:    currencyCode,
		Category:    editable.Category,
		SubCategory: editable.SubCategory,
		Date:        editable.Date,
		PaidTo:      editable.PaidTo,
		Notes:       editable.Notes,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/d1b4fdd1-a3f3-4fc1-a2ac-c4a1cab54c18"` // The expense itself
}

// Expense is the API representation of an expense.
type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Description: model.Description,
			Amount:      model.Amount,
			Currency:    model.Currency,
			Category:    model.Category,
			SubCategory: model.SubCategory,
			Date:        model.Date,
			PaidTo:      model.PaidTo,
			Notes:       model.Notes,
		},
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/expenses/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category    string `form:"category"`                        // By category
	SubCategory string `form:"subCategory"`                     // By sub-category
	Currency    string `form:"currency"`                        // By currency code
	PaidTo      string `form:"paidTo"`                          // By payee
	Description string `form:"description" filterField:"false"` // By text in the description
	Search      string `form:"search" filterField:"false"`      // Search for this text in description and notes
	Offset      uint   `form:"offset" filterField:"false"`      // The offset of the first expense returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`       // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	return models.Expense{
		Category:    f.Category,
		SubCategory: f.SubCategory,
		Currency:    f.Currency,
		PaidTo:      f.PaidTo,
	}
}
