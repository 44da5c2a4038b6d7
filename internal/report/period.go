package report

import (
	"time"
)

// Report period identifiers accepted by the reporting endpoints.
const (
	PeriodWeekly    = "weekly"
	PeriodMonthly   = "monthly"
	PeriodQuarterly = "quarterly"
	PeriodYearly    = "yearly"
)

// PeriodRange translates a report period into the calendar range that
// contains now: the week starting on Sunday, the calendar month, the
// calendar quarter or the calendar year. Unknown periods fall back to
// monthly. All calculations are done in UTC.
func PeriodRange(period string, now time.Time) Range {
	now = now.UTC()
	year, month, day := now.Date()

	var from, to time.Time
	switch period {
	case PeriodWeekly:
		from = time.Date(year, month, day-int(now.Weekday()), 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 0, 6)
	case PeriodQuarterly:
		quarter := (int(month) - 1) / 3
		from = time.Date(year, time.Month(quarter*3+1), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 3, -1)
	case PeriodYearly:
		from = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		to = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		from = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, -1)
	}

	return Range{From: from, To: to}
}

// PeriodLabel is the human readable label used in exported documents.
func PeriodLabel(period string) string {
	switch period {
	case PeriodWeekly:
		return "Weekly Report"
	case PeriodQuarterly:
		return "Quarterly Report"
	case PeriodYearly:
		return "Yearly Report"
	default:
		return "Monthly Report"
	}
}
