package models

import (
	"strings"

	"gorm.io/gorm"
)

// BankConnection represents a linked bank item at the aggregation
// provider.
//
// The access token scopes all requests for the item's accounts and must
// never leave the server, so it is excluded from JSON serialization.
type BankConnection struct {
	DefaultModel
	InstitutionName string
	ItemID          string `gorm:"uniqueIndex"`
	AccessToken     string `json:"-"`
}

func (b *BankConnection) BeforeSave(_ *gorm.DB) error {
	b.InstitutionName = strings.TrimSpace(b.InstitutionName)

	return nil
}
