/*
aggregate.go - Per-day classification

PURPOSE:
  Computes everything a single calendar cell needs to paint itself: the
  trainings and (already filtered) leaves on that date, the subset of
  those leaves belonging to the viewer, and the conflict flag.

KEY RULES:
  - A day is a conflict day iff it has at least one training AND at least
    one post-filter leave.
  - Ownership matching is a case-insensitive substring test of the
    viewer's username against the leave's display name, attempted only
    when a username is present. Upstream data guarantees no durable
    user-id linkage, so this is a known approximation: it can both
    false-positive on substring collisions and false-negative on
    display-name drift. It is kept as an isolated predicate so it can be
    swapped for exact id matching without touching the aggregation
    contract.

DESIGN:
  Pure function of its four arguments. No mutation of inputs, no hidden
  cross-date state; call it independently per displayed date.
*/
package calendar

import "strings"

// DaySummary is the aggregate view of a single calendar day.
type DaySummary struct {
	Date         string     `json:"date"`
	DayTrainings []Training `json:"trainings"`
	DayLeaves    []Leave    `json:"leaves"`
	UserLeaves   []Leave    `json:"user_leaves"`
	HasConflict  bool       `json:"has_conflict"`
}

// AggregateDay classifies a single date. Leaves are expected to already be
// filtered; viewer may be nil, in which case UserLeaves is always empty.
func AggregateDay(trainings []Training, leaves []Leave, date string, viewer *UserInfo) DaySummary {
	day := DaySummary{
		Date:         date,
		DayTrainings: []Training{},
		DayLeaves:    []Leave{},
		UserLeaves:   []Leave{},
	}

	for _, t := range trainings {
		if t.Date == date {
			day.DayTrainings = append(day.DayTrainings, t)
		}
	}
	for _, l := range leaves {
		if l.Date == date {
			day.DayLeaves = append(day.DayLeaves, l)
			if IsViewerLeave(l, viewer) {
				day.UserLeaves = append(day.UserLeaves, l)
			}
		}
	}

	day.HasConflict = len(day.DayTrainings) > 0 && len(day.DayLeaves) > 0
	return day
}

// IsViewerLeave reports whether a leave belongs to the viewer. The match
// is a case-insensitive substring test of the viewer's username against
// the leave owner's display name, and is only attempted when a username
// is present.
func IsViewerLeave(l Leave, viewer *UserInfo) bool {
	if !viewer.HasHandle() {
		return false
	}
	return strings.Contains(strings.ToLower(l.UserName), strings.ToLower(viewer.Username))
}
