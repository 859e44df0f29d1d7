package firestore

import (
	"fmt"
	"strings"
)

// ApplicantNotFound is returned when an application document ID does not resolve.
type ApplicantNotFound string

func (e ApplicantNotFound) Error() string {
	return string(e)
}

// TeamNotFound is returned when no team document exists with the given name.
type TeamNotFound string

func (e TeamNotFound) Error() string {
	return string(e)
}

// MatchNotFound is returned when a match document ID does not resolve.
type MatchNotFound string

func (e MatchNotFound) Error() string {
	return string(e)
}

// ConflictError is returned when a keyed create collides with an existing document.
type ConflictError string

func (e ConflictError) Error() string {
	return string(e)
}

// ValidationError reports malformed or missing input before anything is written.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FailedWrite records one document write that failed inside a multi-document operation.
type FailedWrite struct {
	Key string
	Err error
}

func (f FailedWrite) String() string {
	return fmt.Sprintf("%s: %v", f.Key, f.Err)
}

// PartialFailureError reports a multi-document operation that only partially committed.
// Succeeded and Failed together cover every write that was attempted, so the caller
// can decide on a compensating action instead of guessing from a boolean.
type PartialFailureError struct {
	Op        string
	Succeeded []string
	Failed    []FailedWrite
}

func (e *PartialFailureError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %d of %d writes failed", e.Op, len(e.Failed), len(e.Failed)+len(e.Succeeded)))
	for _, f := range e.Failed {
		sb.WriteString("\n  ")
		sb.WriteString(f.String())
	}
	return sb.String()
}
