// Package types implements special types for the backend.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
//
// Report aggregation buckets dates by month in UTC, independent of the
// server's or the client's location.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs, evaluated in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.In(time.UTC).Date()
	return NewMonth(year, month)
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// ShortName returns the short English month name, e.g. "Mar".
func (m Month) ShortName() string {
	return time.Time(m).Format("Jan")
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return time.Time(m).MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The month is expected to be an RFC3339 timestamp or a full date;
// everything except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	// This allows to parse strings in the "2006-01-02" format
	match, err := regexp.MatchString("^[0-9]{4}-[0-9]{2}-[0-9]{2}$", value)
	if err != nil {
		return err
	}

	// This is the default pattern
	pattern := "2006-01-02T15:04:05Z07:00"
	if match {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the time instant is in the month, evaluated in UTC.
func (m Month) Contains(t time.Time) bool {
	t = t.In(time.UTC)
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// First returns the first instant of the month.
func (m Month) First() time.Time {
	return time.Time(m)
}

// Last returns the last instant of the month.
func (m Month) Last() time.Time {
	return time.Time(m.AddDate(0, 1)).Add(-time.Nanosecond)
}
