package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterGoalRoutes registers the routes for goals with
// the RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoals)
	}

	// Goal with ID
	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.GET("/:id", GetGoal)
		r.PATCH("/:id", UpdateGoal)
		r.DELETE("/:id", DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/v1/goals [options]
func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [options]
func OptionsGoalDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Goal{})
}

// @Summary		Create goals
// @Description	Creates new goals
// @Tags			Goals
// @Produce		json
// @Success		201		{object}	GoalCreateResponse
// @Failure		400		{object}	GoalCreateResponse
// @Failure		500		{object}	GoalCreateResponse
// @Param			goals	body		[]GoalEditable	true	"Goals"
// @Router			/v1/goals [post]
func CreateGoals(c *gin.Context) {
	var editables []GoalEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), GoalCreateResponse{
			Error: &e,
		})
		return
	}

	httpStatus := http.StatusCreated
	r := GoalCreateResponse{}

	for _, editable := range editables {
		goal := editable.model()

		err = models.DB.Create(&goal).Error
		if err != nil {
			httpStatus = r.appendError(err, httpStatus)
			continue
		}

		data := newGoal(c, goal)
		r.Data = append(r.Data, GoalResponse{Data: &data})
	}

	c.JSON(httpStatus, r)
}

// @Summary		Get goals
// @Description	Returns a list of goals
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalListResponse
// @Failure		400	{object}	GoalListResponse
// @Failure		500	{object}	GoalListResponse
// @Router			/v1/goals [get]
// @Param			name		query	string	false	"Filter by name"
// @Param			currency	query	string	false	"Filter by currency code"
// @Param			offset		query	uint	false	"The offset of the first goal returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of goals to return. Defaults to 50."
func GetGoals(c *gin.Context) {
	var filter GoalQueryFilter

	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("due_date ASC").
		Where(filter.model(), queryFields...)

	q = likeFilter(q, setFields, "name", "Name", filter.Name)

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var goals []models.Goal
	err := q.Find(&goals).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Goal, 0, len(goals))
	for _, goal := range goals {
		data = append(data, newGoal(c, goal))
	}

	c.JSON(http.StatusOK, GoalListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	GoalResponse
// @Failure		400	{object}	GoalResponse
// @Failure		404	{object}	GoalResponse
// @Failure		500	{object}	GoalResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [get]
func GetGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var goal models.Goal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	data := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &data})
}

// @Summary		Update goal
// @Description	Update an existing goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	GoalResponse
// @Failure		400		{object}	GoalResponse
// @Failure		404		{object}	GoalResponse
// @Failure		500		{object}	GoalResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		GoalEditable	true	"Goal"
// @Router			/v1/goals/{id} [patch]
func UpdateGoal(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var goal models.Goal
	err = models.DB.First(&goal, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, GoalEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	var data GoalEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&goal).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoalResponse{
			Error: &s,
		})
		return
	}

	r := newGoal(c, goal)
	c.JSON(http.StatusOK, GoalResponse{Data: &r})
}

// @Summary		Delete goal
// @Description	Deletes a goal
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/goals/{id} [delete]
func DeleteGoal(c *gin.Context) {
	deleteResource(c, models.Goal{})
}
