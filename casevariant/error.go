package casevariant

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a kind of error returned by the search.
type ErrorCode int

const (
	// ErrInvalidSeed indicates the seed is empty or contains characters
	// other than ASCII digits and lowercase ASCII letters.
	ErrInvalidSeed ErrorCode = iota

	// ErrSearchSpaceTooLarge indicates the seed has more letters than a
	// uint64 variant index can address.
	ErrSearchSpaceTooLarge

	// ErrUnknownStrategy indicates the requested search strategy is not
	// supported.
	ErrUnknownStrategy

	// ErrCancelled indicates the search was stopped by its context before
	// the search space was exhausted.
	ErrCancelled
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInvalidSeed:         "ErrInvalidSeed",
	ErrSearchSpaceTooLarge: "ErrSearchSpaceTooLarge",
	ErrUnknownStrategy:     "ErrUnknownStrategy",
	ErrCancelled:           "ErrCancelled",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error provides a single type for errors that can happen during a search.
// Err holds the underlying error, if any.
type Error struct {
	ErrorCode   ErrorCode
	Description string
	Err         error
}

// Error satisfies the error interface.
func (e Error) Error() string {
	if e.Err != nil {
		return e.Description + ": " + e.Err.Error()
	}
	return e.Description
}

// Unwrap returns the underlying error.
func (e Error) Unwrap() error {
	return e.Err
}

func searchError(c ErrorCode, desc string, err error) Error {
	return Error{ErrorCode: c, Description: desc, Err: err}
}

// IsError returns whether err is an Error carrying the given code.
func IsError(err error, code ErrorCode) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	return e.ErrorCode == code
}
