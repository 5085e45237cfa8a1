package ltcheck

import (
	"errors"
	"fmt"
)

// ErrNoRule is returned by SpellErrors for an entry without a rule.
var ErrNoRule = errors.New("ltcheck: error has no rule")

// ServiceError reports a failed call to the checking service: a non-2xx
// status, a transport failure (StatusCode 0, Err set) or a verb the
// service does not accept.
type ServiceError struct {
	Op         string // "check", "languages"
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("ltcheck: %s: %v", e.Op, e.Err)
	case e.StatusCode == 0:
		return fmt.Sprintf("ltcheck: %s: %s", e.Op, e.Body)
	}
	return fmt.Sprintf("ltcheck: %s: status %d\n%s", e.Op, e.StatusCode, e.Body)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// QuotaExceededError is returned before any request when the text is
// longer than the configured per-request limit.
type QuotaExceededError struct {
	Limit  int
	Length int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("ltcheck: text has %d characters, limit per request is %d", e.Length, e.Limit)
}

// MalformedResponseError reports a response that does not match the
// schema. Index is the offending match, -1 for the document itself.
type MalformedResponseError struct {
	Index  int
	Field  string
	Reason string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	msg := "ltcheck: malformed response"
	if e.Index >= 0 {
		msg += fmt.Sprintf(": match %d", e.Index)
	}
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// PositionError is returned by Goto for a position outside [1, Len].
type PositionError struct {
	N   int
	Len int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("ltcheck: position %d invalid (have %d)", e.N, e.Len)
}
