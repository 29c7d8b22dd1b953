package domain

import "fmt"

// ValidationError reports a missing or unusable required field. It is
// surfaced to the caller and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup that required a record which does not
// exist. List-style reads never return it: an unknown user simply yields an
// empty result.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// TransportError reports a failed call across an external boundary (the
// chatbot service). It is recoverable: callers show a message and move on.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
