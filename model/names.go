// Package model maps model tiers and providers to token budgets.
//
// The package implements a tiered capability table:
//   - Fast tier ("small"): cheap, high-volume models
//   - Default tier ("large"): the general-purpose model of a provider
//   - Thinking tier ("reasoning"): reasoning models with large windows
package model

import (
	"fmt"
	"strings"
)

// Tier represents a model capability tier.
type Tier int

// Tier constants representing model capability levels.
const (
	TierFast Tier = iota
	TierDefault
	TierThinking
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierFast:
		return "fast"
	case TierDefault:
		return "default"
	case TierThinking:
		return "thinking"
	default:
		return "unknown"
	}
}

// ParseTier converts a tier name to a Tier. Both the tier names and the
// size aliases ("small", "large", "reasoning") are accepted.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast", "small", "mini":
		return TierFast, nil
	case "default", "large", "":
		return TierDefault, nil
	case "thinking", "reasoning", "reasoner":
		return TierThinking, nil
	}
	return TierDefault, fmt.Errorf("unknown tier %q", s)
}

// Provider names a model vendor or runtime.
type Provider string

// Known providers.
const (
	ProviderOpenAI    Provider = "openai"
	ProviderDeepSeek  Provider = "deepseek"
	ProviderAnthropic Provider = "anthropic"
	ProviderOllama    Provider = "ollama"
)

// Providers returns all known providers.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderDeepSeek, ProviderAnthropic, ProviderOllama}
}

// ParseProvider converts a provider name to a Provider.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderOpenAI, ProviderDeepSeek, ProviderAnthropic, ProviderOllama:
		return p, nil
	case "":
		return ProviderOpenAI, nil
	case "claude":
		return ProviderAnthropic, nil
	}
	return "", fmt.Errorf("unknown provider %q", s)
}

// ProviderForModel infers the provider from a concrete model identifier.
// For example, "deepseek-reasoner" maps to ProviderDeepSeek and
// "claude-sonnet-4-20250514" to ProviderAnthropic.
// Returns false if the identifier matches no known family.
func ProviderForModel(name string) (Provider, bool) {
	lower := strings.ToLower(name)

	// DeepSeek first: "deepseek-r1" is also served by local runtimes,
	// but its budgets follow the DeepSeek entry.
	if strings.Contains(lower, "deepseek") {
		return ProviderDeepSeek, true
	}
	if strings.Contains(lower, "claude") || strings.Contains(lower, "opus") ||
		strings.Contains(lower, "sonnet") || strings.Contains(lower, "haiku") {
		return ProviderAnthropic, true
	}
	if strings.HasPrefix(lower, "gpt-") || strings.HasPrefix(lower, "text-embedding") ||
		isOSeries(lower) {
		return ProviderOpenAI, true
	}
	for _, family := range []string{"llama", "mistral", "qwen", "gemma", "phi"} {
		if strings.Contains(lower, family) {
			return ProviderOllama, true
		}
	}
	return "", false
}

// TierForModel returns the tier for a concrete model identifier.
// Unknown identifiers map to TierDefault.
func TierForModel(name string) Tier {
	lower := strings.ToLower(name)

	// Reasoning models first: "o3-mini" is a reasoning model despite "mini".
	if strings.Contains(lower, "reasoner") || strings.Contains(lower, "-r1") ||
		strings.Contains(lower, "opus") || isOSeries(lower) {
		return TierThinking
	}
	if strings.Contains(lower, "-mini") || strings.Contains(lower, "-nano") ||
		strings.Contains(lower, "haiku") || strings.Contains(lower, "small") {
		return TierFast
	}
	return TierDefault
}

// isOSeries matches OpenAI reasoning models such as "o1", "o3-mini", "o4-mini".
func isOSeries(lower string) bool {
	return len(lower) >= 2 && lower[0] == 'o' && lower[1] >= '1' && lower[1] <= '9'
}
