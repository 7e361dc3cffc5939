package tokens

import (
	"errors"
	"fmt"
)

// Sentinel errors for token estimation and budgeting.
var (
	// ErrInvalidProfile indicates a budget profile whose buffer leaves no
	// usable tokens in one of its tiers.
	ErrInvalidProfile = errors.New("invalid budget profile")

	// ErrInvalidSize indicates a non-positive piece size was passed to Split.
	ErrInvalidSize = errors.New("piece size must be positive")

	// ErrUnknownEncoding indicates the requested tokenizer is not registered.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// ProfileError describes which budget of a profile failed validation.
type ProfileError struct {
	Profile string     // Profile name, may be empty
	Budget  BudgetKind // Budget that failed
	Raw     int        // Raw budget in tokens
	Buffer  int        // Safety buffer in tokens
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	name := e.Profile
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("%v: profile %s: %s budget %d must exceed buffer %d and be positive",
		ErrInvalidProfile, name, e.Budget, e.Raw, e.Buffer)
}

// Unwrap returns ErrInvalidProfile for errors.Is support.
func (e *ProfileError) Unwrap() error {
	return ErrInvalidProfile
}
