package editor

import (
	"errors"
	"strconv"
)

var (
	// ErrInterrupted is returned by a LineReader when the user aborts the
	// read with ctrl-c or end of input.
	ErrInterrupted = errors.New("interrupted")

	// ErrIncomplete wraps a *MissingError returned by Build at the end of a
	// session. It means the builder was driven past a field it never got.
	ErrIncomplete = errors.New("record incomplete")

	// ErrOutOfRange is the cause of a *ParseError for an integer outside the
	// field's bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownField is returned by SetValue for a key the schema lacks.
	ErrUnknownField = errors.New("unknown field")
)

// ParseError reports an answer that could not be converted to its field's
// type. The partial record is left unchanged.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return "invalid " + e.Field + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(field string, err error) *ParseError {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &ParseError{Field: field, Err: err}
}

// MissingError reports a required field that was never set.
type MissingError struct {
	Field string
}

func (e *MissingError) Error() string {
	return e.Field + " is required"
}
