// Package errors defines the error taxonomy for the batch job.
//
// Failures fall into two classes: input errors (missing or malformed source
// files, unparsable dates or clock values) abort the run and are not worth
// retrying, while persistence errors (connection or insert failures against
// the reporting database) are transient from the job's point of view and an
// operator may re-run the job once the database recovers. Re-runs are safe
// because the writer upserts on the reporting table's natural key.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure classes
var (
	ErrInput       = errors.New("input error")
	ErrPersistence = errors.New("persistence error")
)

// Class identifies the failure class of a JobError
type Class string

const (
	ClassInput       Class = "input"
	ClassPersistence Class = "persistence"
)

// JobError wraps an underlying error with its failure class and the
// pipeline stage it occurred in.
type JobError struct {
	Err   error
	Class Class
	Stage string
}

// Error implements the error interface
func (e *JobError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Class, e.Stage, e.Err)
}

// Unwrap returns the wrapped error
func (e *JobError) Unwrap() error {
	return e.Err
}

// Is matches JobErrors against the class sentinels, so callers can use
// errors.Is(err, ErrPersistence) without knowing about JobError.
func (e *JobError) Is(target error) bool {
	switch target {
	case ErrInput:
		return e.Class == ClassInput
	case ErrPersistence:
		return e.Class == ClassPersistence
	}
	return false
}

// Input wraps an error as a fatal input error
func Input(stage string, err error) *JobError {
	return &JobError{Err: err, Class: ClassInput, Stage: stage}
}

// Inputf creates a fatal input error from a format string
func Inputf(stage string, format string, args ...any) *JobError {
	return &JobError{Err: fmt.Errorf(format, args...), Class: ClassInput, Stage: stage}
}

// Persistence wraps an error as an operator-retriable persistence error
func Persistence(stage string, err error) *JobError {
	return &JobError{Err: err, Class: ClassPersistence, Stage: stage}
}

// IsRetriable reports whether the error is worth retrying by re-running
// the job (persistence failures are, input failures are not).
func IsRetriable(err error) bool {
	return errors.Is(err, ErrPersistence)
}

// Is checks if the error matches a target error
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As attempts to convert an error to a specific type
func As(err error, target any) bool {
	return errors.As(err, target)
}
