package notes

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidID               = errors.New("invalid note id")
	ErrIDGenerationUnsupported = errors.New("note id generation not supported by backend")
)

// ConnectionError is returned when the initial connection to a backend
// cannot be established.
type ConnectionError struct {
	Backend string
	Err     error
}

func NewConnectionError(backend string, err error) *ConnectionError {
	return &ConnectionError{
		Backend: backend,
		Err:     err,
	}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to %s: %s", e.Backend, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failure reported by the backend during a store call.
type PersistenceError struct {
	Backend string
	Op      string
	Err     error
}

func NewPersistenceError(backend, op string, err error) *PersistenceError {
	return &PersistenceError{
		Backend: backend,
		Op:      op,
		Err:     err,
	}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Backend, e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func IsPersistenceError(err error) bool {
	var pErr *PersistenceError
	return errors.As(err, &pErr)
}
