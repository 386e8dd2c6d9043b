/*
handlers.go - HTTP handlers for the schedule API

PURPOSE:
  Exposes the schedule store and the aggregation engine over HTTP. The
  mini-app fetches the raw payload from here (or receives it through the
  chat bridge) and runs the same engine client-side; operators use the
  day/summary endpoints directly.

ENDPOINTS:
  Schedule:
    GET    /api/schedule               Full payload (trainings, leaves, platforms)
    POST   /api/schedule/ingest        Normalize a raw payload into the store

  Aggregation:
    GET    /api/days/{date}            DaySummary for one date
    GET    /api/months/{year}/{month}  DaySummary per date of a month
    GET    /api/summary                Header counts + totals + platform strength

  Scenarios:
    GET    /api/scenarios              List demo scenarios
    POST   /api/scenarios/load         Load a demo scenario
    POST   /api/scenarios/reset        Clear all data

FILTER QUERY PARAMETERS:
  The aggregation endpoints accept platform, leaveType and timeFilter
  query parameters (defaulting to "all") and an optional username for
  viewer-leave highlighting. They are passed straight into the engine's
  FilterState; the conjunction semantics live there, not here.

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed date or month
  - 404: Unknown scenario
  - 500: Store failures

SEE ALSO:
  - dto.go: Response shapes unique to the HTTP surface
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mec/calendar-engine/calendar"
	"github.com/mec/calendar-engine/payload"
	"github.com/mec/calendar-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// Track currently loaded scenario
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// SCHEDULE HANDLERS
// =============================================================================

// GetSchedule returns the full payload. An empty store yields an empty
// payload, which the mini-app renders as an empty-state calendar; "no
// payload at all" only exists on the chat-bridge side.
// GET /api/schedule
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	p, err := h.Store.LoadPayload(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedule", err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// IngestSchedule accepts an arbitrary raw payload, runs it through the
// normalizer and persists the result. The normalizer is total, so this
// endpoint never rejects a body for shape - an unrecognizable one simply
// normalizes to nothing.
// POST /api/schedule/ingest
func (h *Handler) IngestSchedule(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	p := payload.Normalize(body)
	if err := h.Store.SavePayload(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save schedule", err)
		return
	}

	writeJSON(w, http.StatusOK, IngestResponse{
		Trainings: len(p.Trainings),
		Leaves:    len(p.Leaves),
		Platforms: len(p.Platforms),
	})
}

// =============================================================================
// AGGREGATION HANDLERS
// =============================================================================

// GetDay returns the DaySummary for a single date.
// GET /api/days/{date}
func (h *Handler) GetDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse(calendar.DateFormat, date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	p, err := h.Store.LoadPayload(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedule", err)
		return
	}

	filtered := calendar.FilterLeaves(p.Leaves, filtersFromQuery(r))
	day := calendar.AggregateDay(p.Trainings, filtered, date, viewerFromQuery(r))
	writeJSON(w, http.StatusOK, day)
}

// GetMonth returns one DaySummary per date of the requested month.
// GET /api/months/{year}/{month}
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid year", err)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "Invalid month (use 1-12)", err)
		return
	}

	p, err := h.Store.LoadPayload(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedule", err)
		return
	}

	filtered := calendar.FilterLeaves(p.Leaves, filtersFromQuery(r))
	days := calendar.MonthDays(year, time.Month(month))
	summaries := calendar.RangeSummaries(p.Trainings, filtered, days, viewerFromQuery(r))

	writeJSON(w, http.StatusOK, MonthResponse{Year: year, Month: month, Days: summaries})
}

// GetSummary returns the header counts, stat-card totals and platform
// strength for a date (today when omitted).
// GET /api/summary?date=YYYY-MM-DD
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = calendar.Today()
	} else if _, err := time.Parse(calendar.DateFormat, date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	p, err := h.Store.LoadPayload(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load schedule", err)
		return
	}

	filtered := calendar.FilterLeaves(p.Leaves, filtersFromQuery(r))
	writeJSON(w, http.StatusOK, SummaryResponse{
		Date:     date,
		Day:      calendar.Summarize(p.Trainings, filtered, date),
		Totals:   calendar.Totals(p, filtered),
		Strength: calendar.StrengthByPlatform(p.Platforms, filtered, date),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// filtersFromQuery builds a FilterState from query parameters, defaulting
// absent selectors to "all".
func filtersFromQuery(r *http.Request) calendar.FilterState {
	f := calendar.DefaultFilters()
	q := r.URL.Query()
	if v := q.Get("platform"); v != "" {
		f.Platform = v
	}
	if v := q.Get("leaveType"); v != "" {
		f.LeaveType = v
	}
	if v := q.Get("timeFilter"); v != "" {
		f.TimeFilter = v
	}
	return f
}

// viewerFromQuery builds the optional viewer identity. Without a username
// there is no viewer, and no leave is ever flagged as the viewer's own.
func viewerFromQuery(r *http.Request) *calendar.UserInfo {
	username := r.URL.Query().Get("username")
	if username == "" {
		return nil
	}
	return &calendar.UserInfo{Username: username}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
