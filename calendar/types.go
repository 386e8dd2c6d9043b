/*
Package calendar provides the core day-aggregation and filtering engine
for the unit training/leave calendar.

PURPOSE:
  This package contains the typed record shapes and the pure algorithms
  that classify calendar days: which trainings and leaves fall on a date,
  whether the date is a conflict day, and whether any of the leaves belong
  to the person viewing the calendar.

KEY CONCEPTS IN THIS FILE (types.go):
  - Training: A scheduled unit activity occupying a calendar day
  - Leave: A personnel absence record, optionally half-day
  - Platform: An organizational sub-unit personnel belong to
  - UserInfo: The (best-effort) identity of the viewer
  - FilterState: The three orthogonal leave selectors
  - Payload: The normalized bundle handed over by the host

DESIGN PRINCIPLES:
  1. Dates are calendar-day strings ("2006-01-02") end-to-end. Records
     never carry parsed time objects; every day comparison is string
     equality, so the grid and the header can never drift apart by a
     time-zone offset.
  2. Statelessness: nothing in this package retains state across calls.
     All functions are pure over their inputs and safe for concurrent use.
  3. Records are immutable once loaded; a new payload replaces them
     wholesale.

USAGE:
  filtered := calendar.FilterLeaves(payload.Leaves, filters)
  day := calendar.AggregateDay(payload.Trainings, filtered, "2025-01-15", viewer)
  if day.HasConflict { ... }

SEE ALSO:
  - filter.go: Leave filtering
  - aggregate.go: Per-day classification
  - summary.go: Range and header roll-ups
  - payload package: Normalization of raw host payloads
*/
package calendar

import (
	"fmt"
	"time"
)

// DateFormat is the canonical calendar-day layout. Every date string in
// the system uses this form.
const DateFormat = "2006-01-02"

// Today returns the current date as a canonical day string.
func Today() string {
	return time.Now().Format(DateFormat)
}

// =============================================================================
// TRAINING
// =============================================================================

type TrainingType string

const (
	TrainingExercise    TrainingType = "EXERCISE"
	TrainingTraining    TrainingType = "TRAINING"
	TrainingMaintenance TrainingType = "MAINTENANCE"
	TrainingAdmin       TrainingType = "ADMIN"
)

// Training is a scheduled unit activity occupying a calendar day.
type Training struct {
	ID                int          `json:"id"`
	Title             string       `json:"title"`
	Type              TrainingType `json:"type"`
	Date              string       `json:"date"` // YYYY-MM-DD
	StartTime         string       `json:"start_time,omitempty"`
	EndTime           string       `json:"end_time,omitempty"`
	Location          string       `json:"location,omitempty"`
	RequiredPlatforms []int        `json:"required_platforms,omitempty"`
	Description       string       `json:"description,omitempty"`
}

// =============================================================================
// LEAVE
// =============================================================================

type LeaveType string

const (
	LeaveOff    LeaveType = "OFF"
	LeaveLeave  LeaveType = "LEAVE"
	LeaveOLeave LeaveType = "OLEAVE"
)

// HalfDay markers. An empty Time field means a full-day leave.
const (
	HalfDayAM = "AM"
	HalfDayPM = "PM"
)

// Leave is a personnel absence record for a single day.
//
// The two approval flags are independent and carry no ordering constraint
// between them. PlatformID is not checked against the platform list;
// unknown platform ids are tolerated.
type Leave struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	UserName     string    `json:"user_name"`
	PlatformID   int       `json:"platform_id"`
	Type         LeaveType `json:"type"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Time         string    `json:"time,omitempty"` // AM, PM or empty (full day)
	ApprovedByIC bool      `json:"approved_by_ic"`
	ApprovedByPC bool      `json:"approved_by_pc"`
	Details      string    `json:"details,omitempty"`
}

// FullyApproved reports whether both approval roles have signed off.
func (l Leave) FullyApproved() bool { return l.ApprovedByIC && l.ApprovedByPC }

// IsHalfDay reports whether the leave covers only part of the day.
func (l Leave) IsHalfDay() bool { return l.Time == HalfDayAM || l.Time == HalfDayPM }

// =============================================================================
// PLATFORM
// =============================================================================

// Platform is an organizational sub-unit. PersonnelCount is informational
// only and is not validated against actual leave or training membership.
type Platform struct {
	ID             int    `json:"id"`
	Name           string `json:"name,omitempty"`
	PersonnelCount int    `json:"personnel_count"`
}

// DisplayName returns the platform name, falling back to "Platform {id}"
// when no name was supplied.
func (p Platform) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("Platform %d", p.ID)
}

// =============================================================================
// USER IDENTITY
// =============================================================================

// UserInfo is the best-effort identity of the person viewing the calendar.
// All fields are optional; it is used only for "is this leave mine"
// matching. A missing username means no leave is ever flagged as the
// viewer's own.
type UserInfo struct {
	ID         int64  `json:"id,omitempty"`
	Username   string `json:"username,omitempty"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Rank       string `json:"rank,omitempty"`
	PlatformID int    `json:"platform_id,omitempty"`
	IsIC       bool   `json:"is_ic,omitempty"`
	IsPC       bool   `json:"is_pc,omitempty"`
}

// HasHandle reports whether the identity carries a username usable for
// ownership matching.
func (u *UserInfo) HasHandle() bool { return u != nil && u.Username != "" }

// =============================================================================
// FILTER STATE
// =============================================================================

// FilterAll is the selector value meaning "no restriction".
const FilterAll = "all"

// FilterState holds the three independent, orthogonal leave selectors.
// Platform holds a platform id as text (selectors arrive from the UI as
// strings), LeaveType one of OFF/LEAVE/OLEAVE, TimeFilter AM or PM.
// A leave passes iff it satisfies every non-"all" selector.
type FilterState struct {
	Platform   string `json:"platform"`
	LeaveType  string `json:"leaveType"`
	TimeFilter string `json:"timeFilter"`
}

// DefaultFilters returns the unrestricted filter state.
func DefaultFilters() FilterState {
	return FilterState{Platform: FilterAll, LeaveType: FilterAll, TimeFilter: FilterAll}
}

// IsAll reports whether no selector is active.
func (f FilterState) IsAll() bool {
	return f.Platform == FilterAll && f.LeaveType == FilterAll && f.TimeFilter == FilterAll
}

// =============================================================================
// PAYLOAD
// =============================================================================

// Payload is the normalized bundle of collections the host hands over.
// Collections are never nil after normalization; absence of a usable
// payload altogether is signalled by the host bridge before normalization
// runs, not by an empty Payload.
type Payload struct {
	Trainings []Training `json:"trainings"`
	Leaves    []Leave    `json:"leaves"`
	Platforms []Platform `json:"platforms"`
	UserInfo  UserInfo   `json:"userInfo"`
}

// IsEmpty reports whether all three collections are empty. An empty
// payload renders as an empty-state calendar, which is distinct from "no
// payload at all".
func (p Payload) IsEmpty() bool {
	return len(p.Trainings) == 0 && len(p.Leaves) == 0 && len(p.Platforms) == 0
}
