package chunk

import (
	"errors"
	"fmt"
)

// Sentinel errors for chunking.
var (
	// ErrInvalidParameter indicates a request or constructor argument that
	// cannot be honoured. The caller must fix the request; retrying is futile.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOverlapTooLarge indicates an overlap window larger than the
	// effective chunk size. It wraps ErrInvalidParameter.
	ErrOverlapTooLarge = fmt.Errorf("%w: overlap window cannot exceed chunk size", ErrInvalidParameter)
)

// Error wraps chunking errors with the operation and parameter involved.
type Error struct {
	Op    string // Operation that failed ("new", "chunk")
	Param string // Offending parameter ("overlap_words", "chunk_size")
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Param, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsInvalidParameter reports whether err was caused by a bad argument.
func IsInvalidParameter(err error) bool {
	return errors.Is(err, ErrInvalidParameter)
}
