package proc

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an expected field is missing from a record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidData is returned when a record field cannot be parsed.
	ErrInvalidData = errors.New("invalid data")
)

// RecordError describes a failure to read or parse a per-process record.
type RecordError struct {
	PID    string // numeric pid or "self"
	Record string // "status" or "comm"
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("proc record %s/%s: %v", e.PID, e.Record, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
