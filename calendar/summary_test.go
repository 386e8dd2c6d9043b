package calendar_test

import (
	"testing"
	"time"

	"github.com/mec/calendar-engine/calendar"
)

// =============================================================================
// HEADER COUNT TESTS
// =============================================================================

func TestSummarize_CountsMatchAggregateDay(t *testing.T) {
	// The header badges and the grid must bucket identically: the counts
	// from Summarize equal the lengths from AggregateDay for every date.

	trainings := []calendar.Training{
		training(1, "2025-01-15"), training(2, "2025-01-15"), training(3, "2025-01-20"),
	}
	leaves := []calendar.Leave{
		namedLeave(1, "A", "2025-01-15"), namedLeave(2, "B", "2025-01-16"),
	}

	for _, date := range []string{"2025-01-14", "2025-01-15", "2025-01-16", "2025-01-20"} {
		counts := calendar.Summarize(trainings, leaves, date)
		day := calendar.AggregateDay(trainings, leaves, date, nil)

		if counts.TrainingCount != len(day.DayTrainings) {
			t.Errorf("%s: training count %d != aggregated %d", date, counts.TrainingCount, len(day.DayTrainings))
		}
		if counts.LeaveCount != len(day.DayLeaves) {
			t.Errorf("%s: leave count %d != aggregated %d", date, counts.LeaveCount, len(day.DayLeaves))
		}
	}
}

func TestTotals_LeaveCountReflectsFilterState(t *testing.T) {
	p := calendar.Payload{
		Trainings: []calendar.Training{training(1, "2025-01-15")},
		Leaves: []calendar.Leave{
			leave(1, 1, calendar.LeaveOff, "", "2025-01-15"),
			leave(2, 2, calendar.LeaveOff, "", "2025-01-16"),
		},
		Platforms: []calendar.Platform{{ID: 1, Name: "Alpha", PersonnelCount: 12}},
	}
	filtered := calendar.FilterLeaves(p.Leaves, filters("1", "all", "all"))

	totals := calendar.Totals(p, filtered)

	if totals.TrainingCount != 1 || totals.LeaveCount != 1 || totals.PlatformCount != 1 {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

// =============================================================================
// MONTH RANGE TESTS
// =============================================================================

func TestMonthDays_CoversWholeMonth(t *testing.T) {
	days := calendar.MonthDays(2025, time.January)

	if len(days) != 31 {
		t.Fatalf("expected 31 days, got %d", len(days))
	}
	if days[0] != "2025-01-01" || days[30] != "2025-01-31" {
		t.Errorf("unexpected bounds: %s .. %s", days[0], days[len(days)-1])
	}
}

func TestMonthDays_LeapFebruary(t *testing.T) {
	if got := len(calendar.MonthDays(2024, time.February)); got != 29 {
		t.Errorf("expected 29 days in Feb 2024, got %d", got)
	}
	if got := len(calendar.MonthDays(2025, time.February)); got != 28 {
		t.Errorf("expected 28 days in Feb 2025, got %d", got)
	}
}

func TestRangeSummaries_OneSummaryPerDayInOrder(t *testing.T) {
	trainings := []calendar.Training{training(1, "2025-01-15")}
	days := calendar.MonthDays(2025, time.January)

	summaries := calendar.RangeSummaries(trainings, nil, days, nil)

	if len(summaries) != len(days) {
		t.Fatalf("expected %d summaries, got %d", len(days), len(summaries))
	}
	for i, s := range summaries {
		if s.Date != days[i] {
			t.Fatalf("position %d: expected date %s, got %s", i, days[i], s.Date)
		}
	}
	if len(summaries[14].DayTrainings) != 1 {
		t.Errorf("expected the Jan 15 cell to carry the training")
	}
}

// =============================================================================
// PLATFORM STRENGTH TESTS
// =============================================================================

func TestStrengthByPlatform_ComputesAvailability(t *testing.T) {
	platforms := []calendar.Platform{
		{ID: 1, Name: "Alpha", PersonnelCount: 12},
		{ID: 2, Name: "Bravo", PersonnelCount: 10},
	}
	leaves := []calendar.Leave{
		leave(1, 1, calendar.LeaveOff, "", "2025-01-15"),
		leave(2, 1, calendar.LeaveLeave, "", "2025-01-15"),
		leave(3, 2, calendar.LeaveOff, "", "2025-01-16"), // different day
	}

	strengths := calendar.StrengthByPlatform(platforms, leaves, "2025-01-15")

	if len(strengths) != 2 {
		t.Fatalf("expected 2 platforms, got %d", len(strengths))
	}

	alpha := strengths[0]
	if alpha.Absent != 2 || alpha.Available != 10 {
		t.Errorf("alpha: expected 2 absent / 10 available, got %d / %d", alpha.Absent, alpha.Available)
	}
	if alpha.Availability.String() != "83.3" {
		t.Errorf("alpha: expected 83.3%%, got %s", alpha.Availability)
	}

	bravo := strengths[1]
	if bravo.Absent != 0 || bravo.Availability.String() != "100" {
		t.Errorf("bravo: expected full strength, got %+v", bravo)
	}
}

func TestStrengthByPlatform_ZeroPersonnel_NoDivideByZero(t *testing.T) {
	platforms := []calendar.Platform{{ID: 3, PersonnelCount: 0}}

	strengths := calendar.StrengthByPlatform(platforms, nil, "2025-01-15")

	if !strengths[0].Availability.IsZero() {
		t.Errorf("expected 0%% availability, got %s", strengths[0].Availability)
	}
	if strengths[0].Name != "Platform 3" {
		t.Errorf("expected fallback display name, got %s", strengths[0].Name)
	}
}

func TestStrengthByPlatform_InconsistentData_ClampsAtZero(t *testing.T) {
	// PersonnelCount is informational only; more absences than personnel
	// must not produce a negative availability.
	platforms := []calendar.Platform{{ID: 1, PersonnelCount: 1}}
	leaves := []calendar.Leave{
		leave(1, 1, calendar.LeaveOff, "", "2025-01-15"),
		leave(2, 1, calendar.LeaveOff, "", "2025-01-15"),
	}

	strengths := calendar.StrengthByPlatform(platforms, leaves, "2025-01-15")

	if strengths[0].Available != 0 {
		t.Errorf("expected available clamped to 0, got %d", strengths[0].Available)
	}
}
