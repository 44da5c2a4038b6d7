package v1

import (
	"fmt"

	"github.com/centsible/backend/internal/bank"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// LinkTokenResponse is the response for a link token request.
type LinkTokenResponse struct {
	Data  *LinkToken `json:"data"`  // The created link token
	Error *string    `json:"error"` // The error, if any occurred
}

type LinkToken struct {
	LinkToken string `json:"linkToken" example:"link-sandbox-6e8b1b69-9d36-4a47-a3f3-7e0baf6ca80d"` // Token to open the institution picker with
}

// ExchangeEditable is the body for completing a link flow.
type ExchangeEditable struct {
	PublicToken     string `json:"publicToken" example:"public-sandbox-37bb0823-a88a-458f-a43f-56dca4d0e2e4"` // The public token returned by the link flow
	InstitutionName string `json:"institutionName" example:"First Platypus Bank" default:""`                  // Name of the institution that was linked
}

type BankConnectionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/banks/b1c0e9a0-6f3b-4a55-8c9f-54a3ab5bad83"` // The bank connection itself
}

// BankConnection is the API representation of a linked institution.
// The access token never leaves the server.
type BankConnection struct {
	models.DefaultModel
	InstitutionName string              `json:"institutionName" example:"First Platypus Bank"` // Name of the institution
	ItemID          string              `json:"itemId" example:"DWVAAPWq4RHGlEaNyGKRTAnPLaEmo8Cvq7na6"`
	Accounts        []bank.Account      `json:"accounts"` // The connection's accounts with their balances
	Links           BankConnectionLinks `json:"links"`
}

func newBankConnection(c *gin.Context, model models.BankConnection, accounts []bank.Account) BankConnection {
	return BankConnection{
		DefaultModel:    model.DefaultModel,
		InstitutionName: model.InstitutionName,
		ItemID:          model.ItemID,
		Accounts:        accounts,
		Links: BankConnectionLinks{
			Self: fmt.Sprintf("%s/banks/%s", httputil.RequestPathV1(c), model.ID),
		},
	}
}

type BankConnectionResponse struct {
	Data  *BankConnection `json:"data"`  // Data for the bank connection
	Error *string         `json:"error"` // The error, if any occurred
}

type BankConnectionListResponse struct {
	Data  []BankConnection `json:"data"`  // List of bank connections
	Error *string          `json:"error"` // The error, if any occurred
}
