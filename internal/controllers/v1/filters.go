package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// likeFilter adds a substring match on column for value. When the query
// parameter was set to an empty string, it matches the empty value
// instead.
func likeFilter(query *gorm.DB, setFields []string, column, field, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter adds a substring match for the search term over the
// passed columns.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" {
		return query
	}

	match := db.Where(fmt.Sprintf("%s LIKE ?", columns[0]), fmt.Sprintf("%%%s%%", search))
	for _, column := range columns[1:] {
		match = match.Or(db.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", search)))
	}

	return query.Where(match)
}
