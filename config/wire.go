package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/randalmurphal/chunkkit/chunk"
	"github.com/randalmurphal/chunkkit/model"
	"github.com/randalmurphal/chunkkit/tokens"
	"github.com/randalmurphal/chunkkit/truncate"
)

// Catalog returns the built-in catalog with the configured overrides
// applied. An override for a pair the catalog lacks starts from the
// fallback entry.
func (c *Config) Catalog() (*model.Catalog, error) {
	base := model.DefaultCatalog()
	if len(c.Profiles) == 0 {
		return base, nil
	}

	overrides := make([]model.Capability, 0, len(c.Profiles))
	for i, p := range c.Profiles {
		provider, err := model.ParseProvider(p.Provider)
		if err != nil {
			return nil, fmt.Errorf("%w: profiles[%d]: %w", ErrInvalidConfig, i, err)
		}
		tier, err := model.ParseTier(p.Tier)
		if err != nil {
			return nil, fmt.Errorf("%w: profiles[%d]: %w", ErrInvalidConfig, i, err)
		}
		if p.Encoding != "" && !tokens.IsRegistered(p.Encoding) {
			return nil, fmt.Errorf("%w: profiles[%d]: encoding %q is not registered", ErrInvalidConfig, i, p.Encoding)
		}
		overrides = append(overrides, p.apply(base.Lookup(tier, provider), provider, tier))
	}

	catalog, err := base.With(overrides...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return catalog, nil
}

func (p ProfileOverride) apply(e model.Capability, provider model.Provider, tier model.Tier) model.Capability {
	if e.Provider != provider || e.Tier != tier {
		e.Provider, e.Tier = provider, tier
		e.Profile.Name = string(provider) + "/" + tier.String()
	}
	if p.ChatModel != "" {
		e.ChatModel = p.ChatModel
	}
	if p.EmbeddingModel != "" {
		e.EmbeddingModel = p.EmbeddingModel
	}
	if p.Encoding != "" {
		e.Encoding = p.Encoding
	}
	if p.Default > 0 {
		e.Profile.Default = p.Default
	}
	if p.Maximum > 0 {
		e.Profile.Maximum = p.Maximum
	}
	if p.Embedding > 0 {
		e.Profile.Embedding = p.Embedding
	}
	if p.Buffer != nil {
		e.Profile.Buffer = *p.Buffer
	}
	return e
}

// Capability resolves the selected catalog entry, with Model and Encoding
// overrides applied.
func (c *Config) Capability() (model.Capability, error) {
	provider, tier, err := c.selection()
	if err != nil {
		return model.Capability{}, err
	}
	catalog, err := c.Catalog()
	if err != nil {
		return model.Capability{}, err
	}

	capability := catalog.Lookup(tier, provider)
	if c.Model != "" {
		capability.ChatModel = c.Model
	}
	if c.Encoding != "" {
		capability.Encoding = c.Encoding
	}
	return capability, nil
}

// Tokenizer creates the tokenizer for the selected capability.
func (c *Config) Tokenizer() (tokens.Tokenizer, error) {
	capability, err := c.Capability()
	if err != nil {
		return nil, err
	}
	return tokens.New(capability.Encoding)
}

// Logger returns a logger writing to w at the configured level and format.
// An unparseable level falls back to info.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.LogFormat, LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewChunker builds a chunker from the selected capability's tokenizer and
// profile.
func (c *Config) NewChunker(opts ...chunk.Option) (*chunk.Chunker, error) {
	capability, err := c.Capability()
	if err != nil {
		return nil, err
	}
	tokenizer, err := tokens.New(capability.Encoding)
	if err != nil {
		return nil, fmt.Errorf("tokenizer for %s/%s: %w", capability.Provider, capability.Tier, err)
	}
	return chunk.New(tokenizer, capability.Profile, opts...)
}

// NewTruncator builds a truncator from the selected capability's
// tokenizer and profile using the configured strategy. Options are applied
// after the strategy.
func (c *Config) NewTruncator(opts ...truncate.Option) (*truncate.Truncator, error) {
	strategy, err := truncate.ParseStrategy(c.Truncation)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	capability, err := c.Capability()
	if err != nil {
		return nil, err
	}
	tokenizer, err := tokens.New(capability.Encoding)
	if err != nil {
		return nil, fmt.Errorf("tokenizer for %s/%s: %w", capability.Provider, capability.Tier, err)
	}
	return truncate.New(tokenizer, capability.Profile, append([]truncate.Option{truncate.WithStrategy(strategy)}, opts...)...)
}

// Request builds a chunk request for text with the configured parameters.
func (c *Config) Request(text string) chunk.Request {
	return chunk.Request{
		Text:         text,
		ChunkSize:    c.ChunkSize,
		OverlapWords: c.OverlapWords,
	}
}
