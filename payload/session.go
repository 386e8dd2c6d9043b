/*
session.go - Host-bridge payload resolution

PURPOSE:
  Models the contract with the host shell: one arbitrary value handed over
  exactly once per session, retrievable through three channels checked in
  fixed priority order. Resolution distinguishes "no payload at all"
  (surfaced as a blocking message) from "payload present but empty"
  (rendered as an empty-state calendar), which plain normalization cannot.

CHANNELS (first non-empty wins):
  1. DataParam:  URL-encoded document passed as a query parameter
  2. StartParam: document passed when the mini-app was opened
  3. InitData:   the generic session-info bag (identity only)

ERRORS:
  calendar.ErrNoHostContext - not running inside the host shell at all
  calendar.ErrNoPayload     - host present, every channel empty
*/
package payload

import "github.com/mec/calendar-engine/calendar"

// Session is what the host shell exposes to one mini-app session.
type Session struct {
	InHost     bool
	DataParam  string
	StartParam string
	InitData   any
}

// Raw returns the first available raw payload value, or the session error
// describing why none exists.
func (s Session) Raw() (any, error) {
	if !s.InHost {
		return nil, calendar.ErrNoHostContext
	}
	if s.DataParam != "" {
		return s.DataParam, nil
	}
	if s.StartParam != "" {
		return s.StartParam, nil
	}
	if s.InitData != nil {
		return s.InitData, nil
	}
	return nil, calendar.ErrNoPayload
}

// Resolve retrieves and normalizes the session's payload in one step.
func (s Session) Resolve() (calendar.Payload, error) {
	raw, err := s.Raw()
	if err != nil {
		return calendar.Payload{}, err
	}
	return Normalize(raw), nil
}
