/*
filter.go - Leave filtering

PURPOSE:
  Selects the subset of a leave collection matching the active filter
  state. Filtering is a pure conjunction: a leave is retained iff it
  satisfies every selector that is not "all".

DESIGN:
  - Order-preserving: the output keeps the input's relative order.
  - The platform selector arrives as text (UI state); the leave carries a
    numeric platform id. Comparison normalizes both to text.
  - Pure and deterministic; safe to re-run on every filter change.
*/
package calendar

import "strconv"

// FilterLeaves returns the leaves matching every active selector in
// filters. The input slice is never mutated; input order is preserved.
func FilterLeaves(leaves []Leave, filters FilterState) []Leave {
	result := []Leave{}
	for _, l := range leaves {
		if MatchesFilters(l, filters) {
			result = append(result, l)
		}
	}
	return result
}

// MatchesFilters reports whether a single leave passes the filter
// conjunction.
func MatchesFilters(l Leave, filters FilterState) bool {
	if filters.Platform != FilterAll && strconv.Itoa(l.PlatformID) != filters.Platform {
		return false
	}
	if filters.LeaveType != FilterAll && string(l.Type) != filters.LeaveType {
		return false
	}
	if filters.TimeFilter != FilterAll && l.Time != filters.TimeFilter {
		return false
	}
	return true
}
