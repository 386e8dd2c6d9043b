/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built datasets that populate the store with realistic
	schedule data for testing and demos. Each scenario resets the store
	and loads a payload exercising specific calendar states.

AVAILABLE SCENARIOS:

	demo-month:    Two platforms, trainings and leaves spread over a month
	conflict-week: A week where trainings and leaves collide daily
	empty-unit:    Platforms only - renders the empty-state calendar

HOW SCENARIOS WORK:
 1. Reset the store (clear all data)
 2. Save the scenario's payload

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "demo-month"}

NOTE:

	Scenarios reset the store. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
  - store/sqlite: SavePayload
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mec/calendar-engine/calendar"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "demo-month",
		Name:        "Demo Month",
		Description: "Two platforms with trainings and leaves spread over January 2025",
	},
	{
		ID:          "conflict-week",
		Name:        "Conflict Week",
		Description: "A field-exercise week colliding with approved leaves every day",
	},
	{
		ID:          "empty-unit",
		Name:        "Empty Unit",
		Description: "Platforms only, no trainings or leaves (empty-state calendar)",
	},
}

// ListScenarios returns available scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario resets the store and loads the requested scenario.
// POST /api/scenarios/load
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	p, ok := scenarioPayload(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Unknown scenario: %s", req.ScenarioID), nil)
		return
	}

	ctx := r.Context()
	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset store", err)
		return
	}
	if err := h.Store.SavePayload(ctx, p); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
		return
	}

	h.currentScenario = req.ScenarioID
	writeJSON(w, http.StatusOK, map[string]string{"loaded": req.ScenarioID})
}

// ResetDatabase clears all schedule data.
// POST /api/scenarios/reset
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset store", err)
		return
	}
	h.currentScenario = ""
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// scenarioPayload returns the dataset for a scenario id.
func scenarioPayload(id string) (calendar.Payload, bool) {
	switch id {
	case "demo-month":
		return demoMonthPayload(), true
	case "conflict-week":
		return conflictWeekPayload(), true
	case "empty-unit":
		return emptyUnitPayload(), true
	default:
		return calendar.Payload{}, false
	}
}

// =============================================================================
// SCENARIO DATA
// =============================================================================

var demoPlatforms = []calendar.Platform{
	{ID: 1, Name: "Alpha", PersonnelCount: 12},
	{ID: 2, Name: "Bravo", PersonnelCount: 10},
}

func demoMonthPayload() calendar.Payload {
	return calendar.Payload{
		Platforms: demoPlatforms,
		Trainings: []calendar.Training{
			{
				ID: 1, Title: "Field Training Exercise", Type: calendar.TrainingExercise,
				Date: "2025-01-15", StartTime: "08:00", EndTime: "17:00",
				Location: "Training Area 1", RequiredPlatforms: []int{1, 2},
				Description: "Full day field training",
			},
			{
				ID: 2, Title: "Live Firing", Type: calendar.TrainingTraining,
				Date: "2025-01-20", StartTime: "07:30", EndTime: "12:00",
				Location: "Range 3", RequiredPlatforms: []int{1},
			},
			{
				ID: 3, Title: "Vehicle Servicing", Type: calendar.TrainingMaintenance,
				Date: "2025-01-22", Location: "Motor Pool",
			},
			{
				ID: 4, Title: "Stores Audit", Type: calendar.TrainingAdmin,
				Date: "2025-01-28",
			},
		},
		Leaves: []calendar.Leave{
			{
				ID: 1, UserID: 101, UserName: "CPL John Tan", PlatformID: 1,
				Type: calendar.LeaveOff, Date: "2025-01-15", Time: calendar.HalfDayAM,
				ApprovedByIC: true, Details: "Medical appointment",
			},
			{
				ID: 2, UserID: 102, UserName: "LCP Alex Lim", PlatformID: 2,
				Type: calendar.LeaveLeave, Date: "2025-01-17",
				ApprovedByIC: true, ApprovedByPC: true,
			},
			{
				ID: 3, UserID: 103, UserName: "PTE Marcus Wong", PlatformID: 1,
				Type: calendar.LeaveOLeave, Date: "2025-01-20", Time: calendar.HalfDayPM,
			},
			{
				ID: 4, UserID: 104, UserName: "SGT Daniel Lee", PlatformID: 2,
				Type: calendar.LeaveOff, Date: "2025-01-27",
				ApprovedByPC: true,
			},
		},
	}
}

func conflictWeekPayload() calendar.Payload {
	p := calendar.Payload{Platforms: demoPlatforms}
	names := []string{"CPL John Tan", "LCP Alex Lim", "PTE Marcus Wong", "SGT Daniel Lee", "3SG Ryan Ng"}
	for i := 0; i < 5; i++ {
		date := fmt.Sprintf("2025-02-%02d", 10+i)
		p.Trainings = append(p.Trainings, calendar.Training{
			ID: i + 1, Title: "Exercise Thunder", Type: calendar.TrainingExercise,
			Date: date, Location: "Training Area 2",
		})
		p.Leaves = append(p.Leaves, calendar.Leave{
			ID: i + 1, UserID: 101 + i, UserName: names[i], PlatformID: 1 + i%2,
			Type: calendar.LeaveLeave, Date: date,
			ApprovedByIC: true, ApprovedByPC: true,
		})
	}
	return p
}

func emptyUnitPayload() calendar.Payload {
	return calendar.Payload{
		Platforms: demoPlatforms,
		Trainings: []calendar.Training{},
		Leaves:    []calendar.Leave{},
	}
}
