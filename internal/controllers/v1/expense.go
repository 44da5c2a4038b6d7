package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// @Summary		Create expenses
// @Description	Creates new expenses
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	httpStatus := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		expense := editable.model()

		err = models.DB.Create(&expense).Error
		if err != nil {
			httpStatus = r.appendError(err, httpStatus)
			continue
		}

		data := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(httpStatus, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			category	query	string	false	"Filter by category"
// @Param			subCategory	query	string	false	"Filter by sub-category"
// @Param			currency	query	string	false	"Filter by currency code"
// @Param			paidTo		query	string	false	"Filter by payee"
// @Param			description	query	string	false	"Filter by text in the description"
// @Param			search		query	string	false	"Search for this text in description and notes"
// @Param			offset		query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("date DESC").
		Where(filter.model(), queryFields...)

	q = likeFilter(q, setFields, "description", "Description", filter.Description)
	q = searchFilter(models.DB, q, filter.Search, "description", "notes")

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	deleteResource(c, models.Expense{})
}
