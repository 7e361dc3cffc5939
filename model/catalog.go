package model

import (
	"errors"
	"fmt"
	"sort"

	"github.com/randalmurphal/chunkkit/tokens"
)

// ErrNoFallback indicates a catalog without the fallback entry.
var ErrNoFallback = errors.New("catalog has no fallback entry")

// FallbackTier and FallbackProvider identify the entry Lookup returns for
// pairs the catalog does not know.
const (
	FallbackTier     = TierDefault
	FallbackProvider = ProviderOpenAI
)

// Capability pairs a chat model and an embedding model with the token
// budgets and tokenizer encoding used to size their inputs.
type Capability struct {
	Provider       Provider
	Tier           Tier
	ChatModel      string
	EmbeddingModel string

	// Encoding names the tokenizer used for estimates, see tokens.New.
	Encoding string

	Profile tokens.Profile
}

type catalogKey struct {
	tier     Tier
	provider Provider
}

// Catalog is an immutable tier x provider table of capabilities.
type Catalog struct {
	entries map[catalogKey]Capability
}

// NewCatalog builds a catalog from entries. Later entries replace earlier
// ones for the same tier and provider. Every profile is validated, and the
// fallback entry (default tier, OpenAI) must be present.
func NewCatalog(entries ...Capability) (*Catalog, error) {
	c := &Catalog{entries: make(map[catalogKey]Capability, len(entries))}
	for _, e := range entries {
		if err := e.Profile.Validate(); err != nil {
			return nil, fmt.Errorf("catalog entry %s/%s: %w", e.Provider, e.Tier, err)
		}
		c.entries[catalogKey{tier: e.Tier, provider: e.Provider}] = e
	}
	if _, ok := c.entries[catalogKey{tier: FallbackTier, provider: FallbackProvider}]; !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoFallback, FallbackProvider, FallbackTier)
	}
	return c, nil
}

// MustNewCatalog creates a catalog, panicking on error.
// Use only with entries known to be valid.
func MustNewCatalog(entries ...Capability) *Catalog {
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(fmt.Sprintf("model.MustNewCatalog: %v", err))
	}
	return c
}

// DefaultCatalog returns the built-in capability table.
func DefaultCatalog() *Catalog {
	return MustNewCatalog(defaultCapabilities()...)
}

// Lookup returns the capability for a tier and provider. Unknown pairs
// fall back to the default-tier OpenAI entry; Lookup never fails.
func (c *Catalog) Lookup(tier Tier, provider Provider) Capability {
	if e, ok := c.entries[catalogKey{tier: tier, provider: provider}]; ok {
		return e
	}
	return c.entries[catalogKey{tier: FallbackTier, provider: FallbackProvider}]
}

// Has reports whether the catalog holds an exact entry for the pair.
func (c *Catalog) Has(tier Tier, provider Provider) bool {
	_, ok := c.entries[catalogKey{tier: tier, provider: provider}]
	return ok
}

// With returns a new catalog with entries added or replaced.
// The receiver is not modified.
func (c *Catalog) With(entries ...Capability) (*Catalog, error) {
	merged := make([]Capability, 0, len(c.entries)+len(entries))
	merged = append(merged, c.Entries()...)
	merged = append(merged, entries...)
	return NewCatalog(merged...)
}

// Entries returns all capabilities ordered by provider, then tier.
func (c *Catalog) Entries() []Capability {
	result := make([]Capability, 0, len(c.entries))
	for _, e := range c.entries {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Provider != result[j].Provider {
			return result[i].Provider < result[j].Provider
		}
		return result[i].Tier < result[j].Tier
	})
	return result
}

// defaultCapabilities is the static table behind DefaultCatalog.
// All entries share tokens.DefaultBuffer.
func defaultCapabilities() []Capability {
	entry := func(p Provider, t Tier, chat, embed, enc string, def, maximum, embedding int) Capability {
		return Capability{
			Provider:       p,
			Tier:           t,
			ChatModel:      chat,
			EmbeddingModel: embed,
			Encoding:       enc,
			Profile: tokens.Profile{
				Name:      string(p) + "/" + t.String(),
				Default:   def,
				Maximum:   maximum,
				Embedding: embedding,
				Buffer:    tokens.DefaultBuffer,
			},
		}
	}

	return []Capability{
		entry(ProviderOpenAI, TierFast, "gpt-4o-mini", "text-embedding-3-small", tokens.EncodingO200K, 16000, 128000, 8191),
		entry(ProviderOpenAI, TierDefault, "gpt-4o", "text-embedding-3-large", tokens.EncodingO200K, 16000, 128000, 8191),
		entry(ProviderOpenAI, TierThinking, "o3-mini", "text-embedding-3-large", tokens.EncodingO200K, 32000, 200000, 8191),

		// DeepSeek has no embedding endpoint; inputs are embedded with OpenAI.
		entry(ProviderDeepSeek, TierFast, "deepseek-chat", "text-embedding-3-small", tokens.EncodingCL100K, 8000, 64000, 8191),
		entry(ProviderDeepSeek, TierDefault, "deepseek-chat", "text-embedding-3-small", tokens.EncodingCL100K, 16000, 64000, 8191),
		entry(ProviderDeepSeek, TierThinking, "deepseek-reasoner", "text-embedding-3-small", tokens.EncodingCL100K, 32000, 64000, 8191),

		// Claude's tokenizer is not public; cl100k_base is a close stand-in.
		entry(ProviderAnthropic, TierFast, "claude-haiku-4-5", "voyage-3-lite", tokens.EncodingCL100K, 16000, 200000, 32000),
		entry(ProviderAnthropic, TierDefault, "claude-sonnet-4-5", "voyage-3", tokens.EncodingCL100K, 32000, 200000, 32000),
		entry(ProviderAnthropic, TierThinking, "claude-opus-4-1", "voyage-3-large", tokens.EncodingCL100K, 32000, 200000, 32000),

		entry(ProviderOllama, TierFast, "llama3.2", "nomic-embed-text", tokens.EncodingCL100K, 4000, 128000, 8192),
		entry(ProviderOllama, TierDefault, "llama3.1", "nomic-embed-text", tokens.EncodingCL100K, 8000, 128000, 8192),
		entry(ProviderOllama, TierThinking, "deepseek-r1", "nomic-embed-text", tokens.EncodingCL100K, 8000, 128000, 8192),
	}
}
