package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category represents an expense category.
//
// Expenses and budgets reference categories by name, not by ID, so that
// records imported from bank statements can carry categories that have
// not been configured yet.
type Category struct {
	DefaultModel
	Name string `gorm:"uniqueIndex"`
	Note string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}
