/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. The schedule payload
  itself travels as calendar.Payload - its wire shape IS the contract the
  mini-app normalizes - so only the shapes unique to the HTTP surface
  live here.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - calendar/types.go: Payload, DaySummary, DayCounts, PlatformStrength
*/
package api

import "github.com/mec/calendar-engine/calendar"

// SummaryResponse bundles everything the header and stat cards display
// for one date.
type SummaryResponse struct {
	Date     string                      `json:"date"`
	Day      calendar.DayCounts          `json:"day"`
	Totals   calendar.TotalCounts        `json:"totals"`
	Strength []calendar.PlatformStrength `json:"strength"`
}

// MonthResponse is one DaySummary per date of the requested month.
type MonthResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []calendar.DaySummary `json:"days"`
}

// IngestResponse reports what a raw payload normalized into.
type IngestResponse struct {
	Trainings int `json:"trainings"`
	Leaves    int `json:"leaves"`
	Platforms int `json:"platforms"`
}

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
