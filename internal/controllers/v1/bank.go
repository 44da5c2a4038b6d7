package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/bank"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterBankRoutes registers the routes for bank connections with
// the RouterGroup that is passed. The client may be nil, in which case
// all endpoints respond with HTTP 503.
func RegisterBankRoutes(r *gin.RouterGroup, client *bank.Client) {
	// Root group
	{
		r.OPTIONS("", OptionsBankList)
		r.GET("", GetBankConnections(client))
	}

	r.OPTIONS("/link-token", OptionsBankPost)
	r.POST("/link-token", CreateLinkToken(client))

	r.OPTIONS("/exchange", OptionsBankPost)
	r.POST("/exchange", ExchangePublicToken(client))

	// Bank connection with ID
	{
		r.OPTIONS("/:id", OptionsBankDetail)
		r.DELETE("/:id", DeleteBankConnection(client))
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Success		204
// @Router			/v1/banks [options]
func OptionsBankList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Success		204
// @Router			/v1/banks/link-token [options]
func OptionsBankPost(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Banks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [options]
func OptionsBankDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.BankConnection{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Create link token
// @Description	Starts a bank link flow. The returned token is used by the frontend to open the institution picker.
// @Tags			Banks
// @Produce		json
// @Success		201	{object}	LinkTokenResponse
// @Failure		500	{object}	LinkTokenResponse
// @Failure		503	{object}	LinkTokenResponse
// @Router			/v1/banks/link-token [post]
func CreateLinkToken(client *bank.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := client.CreateLinkToken(c.Request.Context(), uuid.NewString())
		if err != nil {
			s := err.Error()
			c.JSON(status(err), LinkTokenResponse{
				Error: &s,
			})
			return
		}

		c.JSON(http.StatusCreated, LinkTokenResponse{Data: &LinkToken{LinkToken: token}})
	}
}

// @Summary		Complete bank link
// @Description	Exchanges the public token from a completed link flow and stores the connection
// @Tags			Banks
// @Produce		json
// @Success		201			{object}	BankConnectionResponse
// @Failure		400			{object}	BankConnectionResponse
// @Failure		500			{object}	BankConnectionResponse
// @Failure		503			{object}	BankConnectionResponse
// @Param			exchange	body		ExchangeEditable	true	"Exchange"
// @Router			/v1/banks/exchange [post]
func ExchangePublicToken(client *bank.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var editable ExchangeEditable
		err := httputil.BindData(c, &editable)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BankConnectionResponse{
				Error: &s,
			})
			return
		}

		accessToken, itemID, err := client.ExchangePublicToken(c.Request.Context(), editable.PublicToken)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BankConnectionResponse{
				Error: &s,
			})
			return
		}

		connection := models.BankConnection{
			InstitutionName: editable.InstitutionName,
			ItemID:          itemID,
			AccessToken:     accessToken,
		}

		err = models.DB.Create(&connection).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BankConnectionResponse{
				Error: &s,
			})
			return
		}

		data := newBankConnection(c, connection, nil)
		c.JSON(http.StatusCreated, BankConnectionResponse{Data: &data})
	}
}

// @Summary		Get bank connections
// @Description	Returns all linked institutions with their accounts and balances
// @Tags			Banks
// @Produce		json
// @Success		200	{object}	BankConnectionListResponse
// @Failure		500	{object}	BankConnectionListResponse
// @Failure		503	{object}	BankConnectionListResponse
// @Router			/v1/banks [get]
func GetBankConnections(client *bank.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var connections []models.BankConnection
		err := models.DB.Order("institution_name ASC").Find(&connections).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BankConnectionListResponse{
				Error: &s,
			})
			return
		}

		data := make([]BankConnection, 0, len(connections))
		for _, connection := range connections {
			accounts, err := client.Accounts(c.Request.Context(), connection.AccessToken)
			if err != nil {
				s := err.Error()
				c.JSON(status(err), BankConnectionListResponse{
					Error: &s,
				})
				return
			}

			data = append(data, newBankConnection(c, connection, accounts))
		}

		c.JSON(http.StatusOK, BankConnectionListResponse{Data: data})
	}
}

// @Summary		Delete bank connection
// @Description	Unlinks the institution and deletes the stored connection
// @Tags			Banks
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Failure		503	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/banks/{id} [delete]
func DeleteBankConnection(client *bank.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri URIID
		err := c.ShouldBindUri(&uri)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		var connection models.BankConnection
		err = models.DB.First(&connection, uri.ID).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		err = client.RemoveItem(c.Request.Context(), connection.AccessToken)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		err = models.DB.Delete(&connection).Error
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.JSON(http.StatusNoContent, nil)
	}
}
