/*
strength.go - Platform strength roll-up

PURPOSE:
  Derives per-platform availability for a date from the informational
  personnel counts: how many people a platform has, how many are absent
  on the date, and the resulting availability percentage.

PRECISION:
  Percentages are computed in decimal.Decimal and rounded to one place.
  Platform sizes are small, so 11/12 as a float would display as
  91.66666667 without careful formatting; decimal keeps the arithmetic
  exact and the rounding explicit.

NOTE:
  PersonnelCount is not validated against actual leave membership
  upstream, so Available can in principle go negative on inconsistent
  data. It is clamped to zero.
*/
package calendar

import "github.com/shopspring/decimal"

// PlatformStrength is the availability picture of one platform on one day.
type PlatformStrength struct {
	PlatformID   int             `json:"platform_id"`
	Name         string          `json:"name"`
	Personnel    int             `json:"personnel"`
	Absent       int             `json:"absent"`
	Available    int             `json:"available"`
	Availability decimal.Decimal `json:"availability_pct"` // 0-100, one decimal place
}

// StrengthByPlatform computes the per-platform strength for a date from
// the (already filtered) leave set. Platforms with a zero personnel count
// report 0% availability rather than dividing by zero.
func StrengthByPlatform(platforms []Platform, leaves []Leave, date string) []PlatformStrength {
	absent := map[int]int{}
	for _, l := range leaves {
		if l.Date == date {
			absent[l.PlatformID]++
		}
	}

	result := make([]PlatformStrength, 0, len(platforms))
	for _, p := range platforms {
		s := PlatformStrength{
			PlatformID: p.ID,
			Name:       p.DisplayName(),
			Personnel:  p.PersonnelCount,
			Absent:     absent[p.ID],
		}
		s.Available = s.Personnel - s.Absent
		if s.Available < 0 {
			s.Available = 0
		}
		if s.Personnel > 0 {
			s.Availability = decimal.NewFromInt(int64(s.Available)).
				Div(decimal.NewFromInt(int64(s.Personnel))).
				Mul(decimal.NewFromInt(100)).
				Round(1)
		}
		result = append(result, s)
	}
	return result
}
