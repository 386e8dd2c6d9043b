/*
errors.go - Session-level error taxonomy

PURPOSE:
  Only two error conditions ever reach the user, both raised by the host
  bridge before the engine runs:

  1. No host context - the app is not running inside the expected host
     shell. Fatal to the session, no retry.
  2. No payload - host context present but no usable data was handed over.
     Distinct from a payload whose collections are all empty, which
     renders as an empty calendar instead.

  Malformed fields and unparsable text payloads are absorbed inside the
  payload normalizer and never surface here. The filter and aggregation
  functions are total over normalized data and cannot fail at all.

USAGE:
  if errors.Is(err, calendar.ErrNoPayload) {
      // show "use /calendar in the chat" message
  }
*/
package calendar

import "errors"

var (
	// ErrNoHostContext is returned when the application is not running
	// inside the expected host shell.
	ErrNoHostContext = errors.New("not running inside host context")

	// ErrNoPayload is returned when the host is present but supplied no
	// usable schedule data.
	ErrNoPayload = errors.New("no schedule payload available")
)

// IsSessionError reports whether err is one of the user-facing session
// errors, as opposed to an internal failure.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNoHostContext) || errors.Is(err, ErrNoPayload)
}
