package tokens

import (
	"fmt"
	"strings"
)

// DefaultBuffer is the safety margin, in tokens, subtracted from every raw
// budget to absorb estimator imprecision. Every built-in profile uses it.
const DefaultBuffer = 100

// BudgetKind selects one of the three budgets of a Profile.
type BudgetKind int

// Budget kinds, one per downstream operation.
const (
	// BudgetDefault bounds a regular chat completion chunk.
	BudgetDefault BudgetKind = iota
	// BudgetMaximum bounds the largest input the model accepts.
	BudgetMaximum
	// BudgetEmbedding bounds a single embedding input.
	BudgetEmbedding
)

// String returns the budget name.
func (k BudgetKind) String() string {
	switch k {
	case BudgetDefault:
		return "default"
	case BudgetMaximum:
		return "maximum"
	case BudgetEmbedding:
		return "embedding"
	default:
		return "unknown"
	}
}

// ParseBudgetKind converts a budget name back to a BudgetKind.
func ParseBudgetKind(s string) (BudgetKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "chat":
		return BudgetDefault, nil
	case "maximum", "max":
		return BudgetMaximum, nil
	case "embedding", "embed":
		return BudgetEmbedding, nil
	}
	return BudgetDefault, fmt.Errorf("unknown budget kind %q", s)
}

// Profile describes the token budgets of one model/provider/tier entry.
// Each effective budget is its raw budget minus Buffer.
//
// Profile is a value type; holders keep their own copy, so a profile
// cannot change underneath a component that has validated it.
type Profile struct {
	// Name identifies the profile in logs and errors, e.g. "openai/large".
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" mapstructure:"name"`

	// Default is the raw budget for a regular chat chunk.
	Default int `json:"default" yaml:"default" toml:"default" mapstructure:"default"`

	// Maximum is the raw budget for the largest accepted input.
	Maximum int `json:"maximum" yaml:"maximum" toml:"maximum" mapstructure:"maximum"`

	// Embedding is the raw budget for a single embedding input.
	Embedding int `json:"embedding" yaml:"embedding" toml:"embedding" mapstructure:"embedding"`

	// Buffer is subtracted from every raw budget.
	Buffer int `json:"buffer" yaml:"buffer" toml:"buffer" mapstructure:"buffer"`
}

// NewProfile creates a validated profile.
func NewProfile(name string, def, maximum, embedding, buffer int) (Profile, error) {
	p := Profile{
		Name:      name,
		Default:   def,
		Maximum:   maximum,
		Embedding: embedding,
		Buffer:    buffer,
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Validate checks that every budget leaves a positive effective size.
// Returns a *ProfileError wrapping ErrInvalidProfile on failure.
func (p Profile) Validate() error {
	for _, kind := range []BudgetKind{BudgetDefault, BudgetMaximum, BudgetEmbedding} {
		raw := p.Raw(kind)
		if raw <= 0 || p.Buffer < 0 || p.Buffer >= raw {
			return &ProfileError{Profile: p.Name, Budget: kind, Raw: raw, Buffer: p.Buffer}
		}
	}
	return nil
}

// Raw returns the unbuffered budget for kind.
func (p Profile) Raw(kind BudgetKind) int {
	switch kind {
	case BudgetMaximum:
		return p.Maximum
	case BudgetEmbedding:
		return p.Embedding
	default:
		return p.Default
	}
}

// Effective returns the budget for kind with the buffer subtracted.
func (p Profile) Effective(kind BudgetKind) int {
	return p.Raw(kind) - p.Buffer
}

// Fits reports whether a token count fits the effective budget for kind.
// The comparison is strict: a count equal to the budget does not fit.
func (p Profile) Fits(kind BudgetKind, tokens int) bool {
	return tokens < p.Effective(kind)
}

// Remaining returns the effective budget left for kind after usedTokens.
func (p Profile) Remaining(kind BudgetKind, usedTokens int) int {
	remaining := p.Effective(kind) - usedTokens
	if remaining < 0 {
		return 0
	}
	return remaining
}
