package bigint

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("bigint")

// Failure taxonomy. Every error returned by this package wraps exactly one
// of these sentinels, so callers can dispatch with errors.Is.
var (
	// ErrInvalidInput marks out-of-domain arguments, such as a negative
	// bit index or a malformed word array.
	ErrInvalidInput = Error.New("invalid input")

	// ErrFormat marks an input string that does not match any recognized
	// numeric style.
	ErrFormat = Error.New("invalid number format")

	// ErrOverflow marks a result whose bit length would exceed the
	// representable maximum, or a checked conversion that cannot hold the
	// value.
	ErrOverflow = Error.New("overflow")

	// ErrDivideByZero marks a division or remainder with a zero divisor.
	ErrDivideByZero = Error.New("divide by zero")
)
