package match

import "fmt"

// MatchError is returned by Matcher.Apply when no registered case is
// applicable to the value — the match-expression equivalent of a missing
// default branch. It carries the unmatched value for diagnostics.
type MatchError struct {
	Value any
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("match: no case applicable to %v", e.Value)
}

// CaseError reports an invalid case registration: a nil handler, or a
// handler whose parameter type cannot be resolved. Registration calls panic
// with a *CaseError; the case list remains unchanged.
type CaseError struct {
	Reason string
	cause  error
}

func (e *CaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("match: invalid case: %s: %v", e.Reason, e.cause)
	}
	return "match: invalid case: " + e.Reason
}

func (e *CaseError) Unwrap() error {
	return e.cause
}

// HandlerError wraps a panic raised by the handler of an applicable case.
// It distinguishes handler-level failures from the matcher's own no-match
// failure and is recoverable by the caller. Truly fatal conditions (out of
// memory, stack exhaustion) abort the runtime and never reach recover, so
// every HandlerError is non-fatal by construction.
type HandlerError struct {
	Recovered any // the recovered panic value
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("match: case handler failed: %v", e.Recovered)
}

// Unwrap returns the recovered panic value if it was an error, nil otherwise.
func (e *HandlerError) Unwrap() error {
	if err, ok := e.Recovered.(error); ok {
		return err
	}
	return nil
}
