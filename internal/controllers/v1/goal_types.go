package v1

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GoalEditable represents all user configurable parameters of a goal.
type GoalEditable struct {
	Name                string             `json:"name" example:"New car" default:""`
	TargetAmount        decimal.Decimal    `json:"targetAmount" example:"10000"`
	CurrentAmount       decimal.Decimal    `json:"currentAmount" example:"2500"`
	Currency            string             `json:"currency" example:"USD" default:"USD"`
	DueDate             time.Time          `json:"dueDate" example:"2026-01-01T00:00:00Z"`
	MonthlyContribution decimal.Decimal    `json:"monthlyContribution" example:"250"`
	InterestRate        decimal.Decimal    `json:"interestRate" example:"2.5"`
	Milestones          []models.Milestone `json:"milestones"`
}

func (editable GoalEditable) model() models.Goal {
	currencyCode := editable.Currency
	if currencyCode == "" {
		currencyCode = "USD"
	}

	return models.Goal{
		Name:                editable.Name,
		TargetAmount:        editable.TargetAmount,
		CurrentAmount:       editable.CurrentAmount,
		Currency:            currencyCode,
		DueDate:             editable.DueDate,
		MonthlyContribution: editable.MonthlyContribution,
		InterestRate:        editable.InterestRate,
		Milestones:          editable.Milestones,
	}
}

type GoalLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/goals/f3b093ab-98dc-4d17-9bfb-cbd494b0b0c9"` // The goal itself
}

// Goal is the API representation of a goal. It includes the computed
// progress of the goal at the time of the request.
type Goal struct {
	models.DefaultModel
	GoalEditable
	Progress decimal.Decimal `json:"progress" example:"25"` // Percentage of the target amount that has been saved
	Links    GoalLinks       `json:"links"`
}

func newGoal(c *gin.Context, model models.Goal) Goal {
	progress := decimal.Zero
	if model.TargetAmount.IsPositive() {
		progress = model.CurrentAmount.Div(model.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:                model.Name,
			TargetAmount:        model.TargetAmount,
			CurrentAmount:       model.CurrentAmount,
			Currency:            model.Currency,
			DueDate:             model.DueDate,
			MonthlyContribution: model.MonthlyContribution,
			InterestRate:        model.InterestRate,
			Milestones:          model.Milestones,
		},
		Progress: progress,
		Links: GoalLinks{
			Self: fmt.Sprintf("%s/goals/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                          // List of goals
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type GoalCreateResponse struct {
	Data  []GoalResponse `json:"data"`                                                          // List of the created goals or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, GoalResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Data  *Goal   `json:"data"`                                                          // Data for the goal
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type GoalQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Currency string `form:"currency"`                   // By currency code
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

func (f GoalQueryFilter) model() models.Goal {
	return models.Goal{
		Currency: f.Currency,
	}
}
