// Package currency implements the fixed currency table and the
// conversion between currencies using USD as the pivot.
package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	x_currency "golang.org/x/text/currency"
)

// ErrUnknownCurrency is returned for currency codes that are not part of
// the supported currency table.
var ErrUnknownCurrency = errors.New("unknown currency code")

// Currency is a supported currency with its display symbol.
type Currency struct {
	Code   string `json:"code" example:"EUR"`
	Symbol string `json:"symbol" example:"€"`
}

// Currencies is the fixed set of supported currencies.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "JPY", Symbol: "¥"},
	{Code: "CAD", Symbol: "C$"},
	{Code: "AUD", Symbol: "A$"},
	{Code: "CHF", Symbol: "CHF"},
	{Code: "CNY", Symbol: "¥"},
	{Code: "INR", Symbol: "₹"},
	{Code: "KRW", Symbol: "₩"},
}

// rates maps a currency code to its exchange rate relative to USD = 1.
//
// The rates are static. They are not fetched from a rate provider, so
// converted values are approximations for reporting, not for settlement.
var rates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.85"),
	"GBP": decimal.RequireFromString("0.73"),
	"JPY": decimal.RequireFromString("110.33"),
	"CAD": decimal.RequireFromString("1.25"),
	"AUD": decimal.RequireFromString("1.34"),
	"CHF": decimal.RequireFromString("0.92"),
	"CNY": decimal.RequireFromString("6.47"),
	"INR": decimal.RequireFromString("74.38"),
	"KRW": decimal.RequireFromString("1136.93"),
}

// Valid reports whether the code is a supported currency.
func Valid(code string) bool {
	_, ok := rates[code]
	return ok
}

// Validate checks that code is a well-formed ISO 4217 code and part of the
// supported currency table.
func Validate(code string) error {
	// Reject codes that are not well-formed ISO 4217 before looking
	// them up, so "usd " or "US" get a clear error too.
	if _, err := x_currency.ParseISO(code); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	if !Valid(code) {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	return nil
}

// Convert converts an amount between two currencies by routing it through
// USD. The amount is returned unchanged when both codes are equal.
func Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if err := Validate(from); err != nil {
		return decimal.Zero, err
	}

	if err := Validate(to); err != nil {
		return decimal.Zero, err
	}

	// Identity conversions must be exact, not rate/rate.
	if from == to {
		return amount, nil
	}

	inUSD := amount.Div(rates[from])
	return inUSD.Mul(rates[to]), nil
}

// Symbol returns the display symbol for a currency code. It returns the
// empty string for unknown codes.
func Symbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}

	return ""
}

// Format renders an amount with the currency's symbol and two decimal places.
func Format(amount decimal.Decimal, code string) string {
	return Symbol(code) + amount.StringFixed(2)
}
