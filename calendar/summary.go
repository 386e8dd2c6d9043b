/*
summary.go - Header and range roll-ups

PURPOSE:
  Counts consumed by the header badges ("today's trainings", "today's
  leaves") and the stat cards. Uses the same string-equality date
  bucketing as the day aggregator; there is deliberately no second
  date-parsing path that could drift from the grid.
*/
package calendar

// DayCounts holds the per-date counts shown in the header badges.
type DayCounts struct {
	Date          string `json:"date"`
	TrainingCount int    `json:"training_count"`
	LeaveCount    int    `json:"leave_count"`
}

// Summarize counts the trainings and (already filtered) leaves falling on
// the given date.
func Summarize(trainings []Training, leaves []Leave, date string) DayCounts {
	c := DayCounts{Date: date}
	for _, t := range trainings {
		if t.Date == date {
			c.TrainingCount++
		}
	}
	for _, l := range leaves {
		if l.Date == date {
			c.LeaveCount++
		}
	}
	return c
}

// TotalCounts holds the whole-payload totals shown in the stat cards.
// LeaveCount reflects the current filter state, the other two do not.
type TotalCounts struct {
	TrainingCount int `json:"training_count"`
	LeaveCount    int `json:"leave_count"`
	PlatformCount int `json:"platform_count"`
}

// Totals computes the stat-card totals from a payload and its filtered
// leave set.
func Totals(p Payload, filteredLeaves []Leave) TotalCounts {
	return TotalCounts{
		TrainingCount: len(p.Trainings),
		LeaveCount:    len(filteredLeaves),
		PlatformCount: len(p.Platforms),
	}
}
