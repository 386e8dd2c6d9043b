/*
month.go - Visible-range iteration

PURPOSE:
  The displayed range is driven externally (the selected month); the
  engine's only calendar-math responsibility is producing the day strings
  of that range so each one can be aggregated independently. Rendering of
  the resulting grid stays outside this package.
*/
package calendar

import "time"

// MonthDays returns the canonical day strings of every date in the given
// month, in order.
func MonthDays(year int, month time.Month) []string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := []string{}
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateFormat))
	}
	return days
}

// RangeSummaries aggregates every date in days. This is the "once per
// visible range" driver: one DaySummary per cell, in display order.
func RangeSummaries(trainings []Training, leaves []Leave, days []string, viewer *UserInfo) []DaySummary {
	summaries := make([]DaySummary, 0, len(days))
	for _, d := range days {
		summaries = append(summaries, AggregateDay(trainings, leaves, d, viewer))
	}
	return summaries
}
