package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all user configurable parameters of a category.
type CategoryEditable struct {
	Name string `json:"name" example:"Food" default:""`                     // Name of the category
	Note string `json:"note" example:"Everything eaten or drunk" default:""` // Notes about the category
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name: editable.Name,
		Note: editable.Note,
	}
}

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`         // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=Food"`                              // Expenses in this category
	Budgets  string `json:"budgets" example:"https://example.com/api/v1/budgets?category=Food"`                                // Budgets for this category
}

// Category is the API representation of a category.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	base := httputil.RequestPathV1(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: CategoryLinks{
			Self:     fmt.Sprintf("%s/categories/%s", base, model.ID),
			Expenses: fmt.Sprintf("%s/expenses?category=%s", base, model.Name),
			Budgets:  fmt.Sprintf("%s/budgets?category=%s", base, model.Name),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Note   string `form:"note" filterField:"false"`   // By note
	Search string `form:"search" filterField:"false"` // Search for this text in name and note
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}
