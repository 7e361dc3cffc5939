package truncate

import (
	"fmt"
	"strings"

	"github.com/randalmurphal/chunkkit/tokens"
)

// Strategy selects which part of an oversized text is dropped.
type Strategy int

const (
	// FromEnd removes content from the end (default).
	FromEnd Strategy = iota

	// FromMiddle removes content from the middle, keeping start and end.
	FromMiddle

	// FromStart removes content from the start.
	FromStart
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case FromEnd:
		return "end"
	case FromMiddle:
		return "middle"
	case FromStart:
		return "start"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a strategy name to a Strategy. Empty means FromEnd.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "end", "":
		return FromEnd, nil
	case "middle":
		return FromMiddle, nil
	case "start":
		return FromStart, nil
	}
	return FromEnd, fmt.Errorf("unknown truncation strategy %q", s)
}

// DefaultEndMarker marks text removed at the end or start.
const DefaultEndMarker = "..."

// DefaultMiddleMarker marks text removed from the middle.
const DefaultMiddleMarker = "\n...[content truncated]...\n"

// Truncator cuts text down to a profile's budgets. Results always count
// strictly below the effective budget, the same test the chunk package's
// fit predicates apply, so a truncated text is guaranteed to fit.
// A Truncator is immutable and safe for concurrent use.
type Truncator struct {
	counter  tokens.Counter
	profile  tokens.Profile
	strategy Strategy
	marker   string

	markerSet bool
}

// Option configures a Truncator.
type Option func(*Truncator)

// WithStrategy sets the truncation strategy.
func WithStrategy(s Strategy) Option {
	return func(t *Truncator) {
		t.strategy = s
	}
}

// WithMarker sets the text inserted where content was removed.
// An empty marker removes content silently.
func WithMarker(marker string) Option {
	return func(t *Truncator) {
		t.marker = marker
		t.markerSet = true
	}
}

// New creates a truncator for profile. The marker defaults to the
// strategy's default marker unless WithMarker is given.
func New(counter tokens.Counter, profile tokens.Profile, opts ...Option) (*Truncator, error) {
	if counter == nil {
		return nil, fmt.Errorf("truncate: counter is required")
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	t := &Truncator{
		counter:  counter,
		profile:  profile,
		strategy: FromEnd,
	}
	for _, opt := range opts {
		opt(t)
	}
	if !t.markerSet {
		t.marker = DefaultEndMarker
		if t.strategy == FromMiddle {
			t.marker = DefaultMiddleMarker
		}
	}
	return t, nil
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Marker returns the truncator's marker.
func (t *Truncator) Marker() string {
	return t.marker
}

// Truncate reduces text to fit the effective budget of kind.
// Returns the result and whether truncation occurred.
func (t *Truncator) Truncate(text string, kind tokens.BudgetKind) (string, bool) {
	return t.TruncateTo(text, t.profile.Effective(kind))
}

// TruncateTo reduces text so it counts strictly below limit.
// Returns the result and whether truncation occurred.
func (t *Truncator) TruncateTo(text string, limit int) (string, bool) {
	if t.counter.Count(text) < limit {
		return text, false
	}
	if limit <= 0 {
		return "", true
	}

	marker := t.marker
	if t.counter.Count(marker) >= limit {
		marker = ""
	}

	switch t.strategy {
	case FromMiddle:
		return t.keepBoth(text, marker, limit), true
	case FromStart:
		return t.keepTail(text, marker, limit), true
	default:
		return t.keepHead(text, marker, limit), true
	}
}
