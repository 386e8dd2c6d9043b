/*
Package payload normalizes raw host payloads into typed collections.

PURPOSE:
  The host environment delivers schedule data through at least three
  distinct channels, and controls none of their shapes:

  1. An already-structured object exposing trainings + leaves collections
  2. A textual document (JSON, possibly URL-encoded) passed as a query or
     start parameter
  3. A generic session-info bag carrying at most a nested user identity

  Normalize is liberal in what it accepts: it is a total function that
  dispatches over these three mutually exclusive shapes in fixed priority
  order and degrades per-field to empty collections rather than failing
  the caller. It never panics and never returns an error.

SHAPE DISPATCH (first match wins):
  structured: has both a trainings and a leaves collection. Platforms and
              userInfo default to empty when absent.
  textual:    parsed as JSON, URL-decoding first if needed. On parse
              failure, falls through to the bag branch (logged, never
              fatal).
  bag:        only a nested "user" field is mined for identity; all three
              collections default to empty.

WHAT THIS PACKAGE DOES NOT DECIDE:
  "No payload at all" versus "payload present but empty" is a host-bridge
  distinction (calendar.ErrNoPayload), made before Normalize runs.
  Normalize always returns a usable Payload.

SEE ALSO:
  - calendar/types.go: Payload and the record shapes
  - bot package: The host bridge that retrieves the raw value
*/
package payload

import (
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/mec/calendar-engine/calendar"
)

// envelope is the loose intermediate form every branch decodes through.
// Each field is kept raw so one malformed field cannot poison the others.
type envelope struct {
	Trainings json.RawMessage `json:"trainings"`
	Leaves    json.RawMessage `json:"leaves"`
	Platforms json.RawMessage `json:"platforms"`
	UserInfo  json.RawMessage `json:"userInfo"`
	User      json.RawMessage `json:"user"`
}

// isStructured is the first shape predicate: both collections are present.
func (e envelope) isStructured() bool {
	return e.Trainings != nil && e.Leaves != nil
}

// Normalize converts an arbitrary host value into a Payload. It is total:
// any input, including nil, numbers and malformed text, yields a Payload
// with all four fields defined.
func Normalize(raw any) calendar.Payload {
	switch v := raw.(type) {
	case nil:
		return empty()
	case calendar.Payload:
		return withDefaults(v)
	case *calendar.Payload:
		if v == nil {
			return empty()
		}
		return withDefaults(*v)
	case string:
		return normalizeText(v)
	case []byte:
		return normalizeText(string(v))
	default:
		return normalizeObject(v)
	}
}

// normalizeObject handles the structured and bag branches. The value is
// round-tripped through JSON into the loose envelope; anything that
// cannot be represented as JSON degrades to the empty payload.
func normalizeObject(raw any) calendar.Payload {
	data, err := json.Marshal(raw)
	if err != nil {
		logrus.WithError(err).Debug("payload: value not representable, degrading to empty")
		return empty()
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Not an object at all (number, bool, array): bag branch with no user.
		return empty()
	}

	if env.isStructured() {
		return fromEnvelope(env)
	}
	return fromBag(env)
}

// normalizeText handles the textual branch: parse as JSON, trying the
// URL-decoded form as well. Unlike the structured branch, a parsed
// document is extracted per-field whether or not both collections are
// present. Unparsable text falls through to the bag branch, which for a
// string means the empty payload.
func normalizeText(text string) calendar.Payload {
	var env envelope
	if err := json.Unmarshal([]byte(text), &env); err == nil {
		return fromEnvelope(env)
	}

	if decoded, err := url.QueryUnescape(text); err == nil && decoded != text {
		if err := json.Unmarshal([]byte(decoded), &env); err == nil {
			return fromEnvelope(env)
		}
	}

	logrus.WithField("len", len(text)).Debug("payload: unparsable text payload, degrading to empty")
	return empty()
}

// fromEnvelope decodes all four fields with per-field defaulting.
func fromEnvelope(env envelope) calendar.Payload {
	p := calendar.Payload{
		Trainings: decodeList[calendar.Training](env.Trainings, "trainings"),
		Leaves:    decodeList[calendar.Leave](env.Leaves, "leaves"),
		Platforms: decodeList[calendar.Platform](env.Platforms, "platforms"),
	}
	p.UserInfo = decodeUser(env.UserInfo)
	return p
}

// fromBag is the last-resort branch: only a nested user identity is mined.
func fromBag(env envelope) calendar.Payload {
	p := empty()
	p.UserInfo = decodeUser(env.User)
	return p
}

func decodeUser(raw json.RawMessage) calendar.UserInfo {
	var u calendar.UserInfo
	if raw == nil {
		return u
	}
	if err := json.Unmarshal(raw, &u); err != nil {
		logrus.WithError(err).Debug("payload: malformed user identity, defaulting to empty")
		return calendar.UserInfo{}
	}
	return u
}

func decodeList[T any](raw json.RawMessage, field string) []T {
	if raw == nil {
		return []T{}
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		logrus.WithError(err).WithField("field", field).Debug("payload: malformed collection, defaulting to empty")
		return []T{}
	}
	if list == nil {
		return []T{}
	}
	return list
}

func empty() calendar.Payload {
	return calendar.Payload{
		Trainings: []calendar.Training{},
		Leaves:    []calendar.Leave{},
		Platforms: []calendar.Platform{},
	}
}

// withDefaults fills nil collections on an already-typed payload.
func withDefaults(p calendar.Payload) calendar.Payload {
	if p.Trainings == nil {
		p.Trainings = []calendar.Training{}
	}
	if p.Leaves == nil {
		p.Leaves = []calendar.Leave{}
	}
	if p.Platforms == nil {
		p.Platforms = []calendar.Platform{}
	}
	return p
}
