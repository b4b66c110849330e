package store

import (
	"errors"
	"fmt"
)

// Common store errors. Domain operations return these (wrapped with context)
// instead of panicking; nothing here is fatal to the process.
var (
	// ErrNotFound is the generic kind behind the entity-specific not-found
	// errors below.
	ErrNotFound = errors.New("not found")

	ErrUserNotFound       = fmt.Errorf("%w: user", ErrNotFound)
	ErrSessionNotFound    = fmt.Errorf("%w: session", ErrNotFound)
	ErrLectureNotFound    = fmt.Errorf("%w: lecture", ErrNotFound)
	ErrQuizNotFound       = fmt.Errorf("%w: quiz", ErrNotFound)
	ErrAssignmentNotFound = fmt.Errorf("%w: assignment", ErrNotFound)
	ErrRequestNotFound    = fmt.Errorf("%w: request", ErrNotFound)

	// ErrAuthFailed is the single authentication kind at the store boundary;
	// the two wrapped variants let the UI word its message.
	ErrAuthFailed     = errors.New("authentication failed")
	ErrUnknownUser    = fmt.Errorf("%w: unknown id", ErrAuthFailed)
	ErrBadCredentials = fmt.Errorf("%w: name or password mismatch", ErrAuthFailed)

	// Validation errors: caller-correctable input problems.
	ErrInvalidRole     = errors.New("role must be seeker or provider")
	ErrInvalidDuration = errors.New("duration must be between 1 and 120 minutes")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5 stars")
	ErrAnswerCount     = errors.New("answer count does not match question count")
	ErrEmptyField      = errors.New("required field is empty")

	// State conflicts: the operation is valid but the current state forbids it.
	ErrAlreadyEnrolled  = errors.New("user is already enrolled in this session")
	ErrSessionFull      = errors.New("session is full")
	ErrNotEnrolled      = errors.New("user is not enrolled in this session")
	ErrDuplicateRequest = errors.New("an identical request is already pending")
	ErrWrongRole        = errors.New("operation is not available for this role")
)
