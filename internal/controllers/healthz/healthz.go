// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the healthz routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET")
	c.Status(http.StatusNoContent)
}

// @Summary		Health check
// @Description	Returns the health of the backend, checking the database connection
// @Tags			General
// @Success		200
// @Failure		500
// @Router			/healthz [get]
func Get(c *gin.Context) {
	db, err := models.DB.DB()
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := db.Ping(); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
