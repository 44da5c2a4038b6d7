// Package bank connects the backend to financial institutions through
// the Plaid API.
package bank

import (
	"context"
	"errors"

	"github.com/plaid/plaid-go/v27/plaid"
	"github.com/shopspring/decimal"
)

// ErrNotConfigured is returned when bank linking is attempted without
// Plaid credentials.
var ErrNotConfigured = errors.New("bank linking is not configured on this server")

// Config holds the Plaid credentials.
type Config struct {
	ClientID    string
	Secret      string
	Environment string // "sandbox" or "production", defaults to sandbox
}

// Configured returns true when credentials are set.
func (c Config) Configured() bool {
	return c.ClientID != "" && c.Secret != ""
}

// Client wraps the Plaid API for linking bank accounts and reading
// their balances.
type Client struct {
	api *plaid.APIClient
}

// Account is a linked bank account with its current balance.
type Account struct {
	Name    string          `json:"name" example:"Plaid Checking"`
	Mask    string          `json:"mask" example:"0000"`
	Type    string          `json:"type" example:"depository"`
	Balance decimal.Decimal `json:"balance" example:"110.94"`
}

// NewClient builds a client from the configuration. It returns nil when
// the configuration is incomplete, callers treat a nil client as
// bank linking being disabled.
func NewClient(config Config) *Client {
	if !config.Configured() {
		return nil
	}

	environment := plaid.Sandbox
	if config.Environment == "production" {
		environment = plaid.Production
	}

	cfg := plaid.NewConfiguration()
	cfg.AddDefaultHeader("PLAID-CLIENT-ID", config.ClientID)
	cfg.AddDefaultHeader("PLAID-SECRET", config.Secret)
	cfg.UseEnvironment(environment)

	return &Client{api: plaid.NewAPIClient(cfg)}
}

// CreateLinkToken starts the linking flow for a client session. The
// returned token is handed to the frontend to open the institution
// picker.
func (c *Client) CreateLinkToken(ctx context.Context, userID string) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}

	request := plaid.NewLinkTokenCreateRequest(
		"Centsible",
		"en",
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
		*plaid.NewLinkTokenCreateRequestUser(userID),
	)
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})

	response, _, err := c.api.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		return "", err
	}

	return response.GetLinkToken(), nil
}

// ExchangePublicToken trades the public token from a completed link
// flow for a permanent access token and the item ID identifying the
// connection.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (accessToken, itemID string, err error) {
	if c == nil {
		return "", "", ErrNotConfigured
	}

	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)

	response, _, err := c.api.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return "", "", err
	}

	return response.GetAccessToken(), response.GetItemId(), nil
}

// Accounts lists the accounts of a linked connection.
func (c *Client) Accounts(ctx context.Context, accessToken string) ([]Account, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	request := plaid.NewAccountsGetRequest(accessToken)

	response, _, err := c.api.PlaidApi.AccountsGet(ctx).AccountsGetRequest(*request).Execute()
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(response.GetAccounts()))
	for _, account := range response.GetAccounts() {
		balance := decimal.Zero
		balances := account.GetBalances()
		if current, ok := balances.GetCurrentOk(); ok && current != nil {
			balance = decimal.NewFromFloat(*current)
		}

		accounts = append(accounts, Account{
			Name:    account.GetName(),
			Mask:    account.GetMask(),
			Type:    string(account.GetType()),
			Balance: balance,
		})
	}

	return accounts, nil
}

// RemoveItem unlinks a connection on the Plaid side. The access token
// is invalid afterwards.
func (c *Client) RemoveItem(ctx context.Context, accessToken string) error {
	if c == nil {
		return ErrNotConfigured
	}

	request := plaid.NewItemRemoveRequest(accessToken)

	_, _, err := c.api.PlaidApi.ItemRemove(ctx).ItemRemoveRequest(*request).Execute()
	return err
}
