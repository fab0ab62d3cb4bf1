// Package errs defines the error taxonomy shared by the exact-arithmetic
// kernel: overflow of the word budget, domain/precondition violations, and
// accumulator operations a given backend does not implement. Callers use
// errors.Is against the three sentinels to classify a failure; the
// wrapping helpers attach the operation name and offending operands (or
// their sizes, for large values) as a short diagnostic message.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow means a result would exceed the kernel's bit/word budget.
	ErrOverflow = errors.New("result exceeds maximum word budget")
	// ErrDomain means an argument violated an operation's precondition.
	ErrDomain = errors.New("invalid argument")
	// ErrUnsupported means an accumulator backend does not implement the
	// requested optional operation.
	ErrUnsupported = errors.New("operation not supported by this backend")
)

// Overflow wraps ErrOverflow with the operation name and a short detail.
func Overflow(op, detail string) error {
	return fmt.Errorf("%s: %s: %w", op, detail, ErrOverflow)
}

// Domain wraps ErrDomain with the operation name and a short detail.
func Domain(op, detail string) error {
	return fmt.Errorf("%s: %s: %w", op, detail, ErrDomain)
}

// Unsupported wraps ErrUnsupported with the operation name.
func Unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnsupported)
}
