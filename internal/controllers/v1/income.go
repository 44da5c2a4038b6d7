package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterIncomeRoutes registers the routes for income sources with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomeSources)
		r.POST("", CreateIncomeSources)
	}

	// Income source with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncomeSource)
		r.PATCH("/:id", UpdateIncomeSource)
		r.DELETE("/:id", DeleteIncomeSource)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/v1/income [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.IncomeSource{})
}

// @Summary		Create income sources
// @Description	Creates new income sources
// @Tags			Income
// @Produce		json
// @Success		201		{object}	IncomeCreateResponse
// @Failure		400		{object}	IncomeCreateResponse
// @Failure		500		{object}	IncomeCreateResponse
// @Param			income	body		[]IncomeEditable	true	"Income sources"
// @Router			/v1/income [post]
func CreateIncomeSources(c *gin.Context) {
	var editables []IncomeEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	httpStatus := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, editable := range editables {
		income := editable.model()

		err = models.DB.Create(&income).Error
		if err != nil {
			httpStatus = r.appendError(err, httpStatus)
			continue
		}

		data := newIncome(c, income)
		r.Data = append(r.Data, IncomeResponse{Data: &data})
	}

	c.JSON(httpStatus, r)
}

// @Summary		Get income sources
// @Description	Returns a list of income sources
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/v1/income [get]
// @Param			source		query	string	false	"Filter by source name"
// @Param			currency	query	string	false	"Filter by currency code"
// @Param			frequency	query	string	false	"Filter by frequency"
// @Param			category	query	string	false	"Filter by category"
// @Param			offset		query	uint	false	"The offset of the first income source returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of income sources to return. Defaults to 50."
func GetIncomeSources(c *gin.Context) {
	var filter IncomeQueryFilter

	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("date DESC").
		Where(filter.model(), queryFields...)

	q = likeFilter(q, setFields, "source", "Source", filter.Source)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var sources []models.IncomeSource
	err := q.Find(&sources).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Income, 0, len(sources))
	for _, income := range sources {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get income source
// @Description	Returns a specific income source
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income/{id} [get]
func GetIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var income models.IncomeSource
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Update income source
// @Description	Update an existing income source. Only values to be updated need to be specified.
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income source"
// @Router			/v1/income/{id} [patch]
func UpdateIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var income models.IncomeSource
	err = models.DB.First(&income, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var data IncomeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&income).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	r := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &r})
}

// @Summary		Delete income source
// @Description	Deletes an income source
// @Tags			Income
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/income/{id} [delete]
func DeleteIncomeSource(c *gin.Context) {
	deleteResource(c, models.IncomeSource{})
}
