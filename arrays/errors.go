package arrays

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrEmptyInput indicates that the text to parse is blank.
	ErrEmptyInput = errors.New("arrays: empty input")

	// ErrParse indicates that a token could not be read as a finite number.
	// The concrete error is a *ParseError naming the token.
	ErrParse = errors.New("arrays: not a valid number")

	// ErrInvalidSize indicates an element count outside the accepted window.
	ErrInvalidSize = errors.New("arrays: invalid size")

	// ErrInvalidRange indicates a value range with min > max.
	ErrInvalidRange = errors.New("arrays: invalid value range")
)

// ParseError reports the first token of the input that is not a number.
// It matches ErrParse under errors.Is.
type ParseError struct {
	// Token is the offending token after whitespace trimming ("" for an empty value).
	Token string
	// Pos is the zero-based position of the token in the comma-separated list.
	Pos int
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("arrays: empty value at position %d", e.Pos)
	}
	return fmt.Sprintf("arrays: %s is not a valid number", strconv.Quote(e.Token))
}

// Unwrap exposes ErrParse to errors.Is.
func (e *ParseError) Unwrap() error { return ErrParse }
