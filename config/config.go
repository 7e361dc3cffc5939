package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/randalmurphal/chunkkit/model"
	"github.com/randalmurphal/chunkkit/tokens"
	"github.com/randalmurphal/chunkkit/truncate"
)

// ErrInvalidConfig indicates a configuration that cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config selects a model capability and the chunking parameters applied
// to every request built from it.
type Config struct {
	// --- Capability Selection ---

	// Provider is the model provider.
	// Values: "openai", "deepseek", "anthropic", "ollama". Empty infers it
	// from Model, falling back to "openai".
	Provider string `json:"provider,omitempty" yaml:"provider" toml:"provider" mapstructure:"provider" jsonschema:"enum=openai,enum=deepseek,enum=anthropic,enum=ollama,enum=claude"`

	// Tier is the capability tier.
	// Values: "fast", "default", "thinking". Empty infers it from Model.
	Tier string `json:"tier,omitempty" yaml:"tier" toml:"tier" mapstructure:"tier" jsonschema:"enum=fast,enum=default,enum=thinking,enum=small,enum=mini,enum=large,enum=reasoning,enum=reasoner"`

	// Model overrides the catalog's chat model for the selected entry.
	// Optional.
	Model string `json:"model,omitempty" yaml:"model" toml:"model" mapstructure:"model"`

	// Encoding overrides the catalog's tokenizer, see tokens.Available.
	// Optional.
	Encoding string `json:"encoding,omitempty" yaml:"encoding" toml:"encoding" mapstructure:"encoding"`

	// --- Chunking ---

	// ChunkSize is the default requested chunk size in tokens.
	// 0 uses the profile's effective default budget.
	ChunkSize int `json:"chunk_size,omitempty" yaml:"chunk_size" toml:"chunk_size" mapstructure:"chunk_size" jsonschema:"minimum=0"`

	// OverlapWords enables overlapping chunks. 0 disables overlap.
	OverlapWords int `json:"overlap_words,omitempty" yaml:"overlap_words" toml:"overlap_words" mapstructure:"overlap_words" jsonschema:"minimum=0"`

	// Truncation is the strategy used by NewTruncator: "end", "middle" or
	// "start". Empty means "end".
	Truncation string `json:"truncation,omitempty" yaml:"truncation" toml:"truncation" mapstructure:"truncation" jsonschema:"enum=end,enum=middle,enum=start"`

	// --- Logging ---

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level,omitempty" yaml:"log_level" toml:"log_level" mapstructure:"log_level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`

	// LogFormat is "text" or "json".
	LogFormat string `json:"log_format,omitempty" yaml:"log_format" toml:"log_format" mapstructure:"log_format" jsonschema:"enum=text,enum=json"`

	// --- Catalog Overrides ---

	// Profiles replaces or adds catalog entries.
	Profiles []ProfileOverride `json:"profiles,omitempty" yaml:"profiles" toml:"profiles" mapstructure:"profiles"`
}

// ProfileOverride adjusts one catalog entry. Zero values keep the
// catalog's value; Buffer is a pointer so an explicit 0 can be set.
type ProfileOverride struct {
	Provider string `json:"provider" yaml:"provider" toml:"provider" mapstructure:"provider" jsonschema:"required"`
	Tier     string `json:"tier" yaml:"tier" toml:"tier" mapstructure:"tier" jsonschema:"required"`

	ChatModel      string `json:"chat_model,omitempty" yaml:"chat_model" toml:"chat_model" mapstructure:"chat_model"`
	EmbeddingModel string `json:"embedding_model,omitempty" yaml:"embedding_model" toml:"embedding_model" mapstructure:"embedding_model"`
	Encoding       string `json:"encoding,omitempty" yaml:"encoding" toml:"encoding" mapstructure:"encoding"`

	Default   int  `json:"default,omitempty" yaml:"default" toml:"default" mapstructure:"default" jsonschema:"minimum=0"`
	Maximum   int  `json:"maximum,omitempty" yaml:"maximum" toml:"maximum" mapstructure:"maximum" jsonschema:"minimum=0"`
	Embedding int  `json:"embedding,omitempty" yaml:"embedding" toml:"embedding" mapstructure:"embedding" jsonschema:"minimum=0"`
	Buffer    *int `json:"buffer,omitempty" yaml:"buffer" toml:"buffer" mapstructure:"buffer" jsonschema:"minimum=0"`
}

// DefaultConfig returns a Config with no overlap and info-level text logs.
// Provider and Tier are left empty so a configured Model can select them;
// with no Model they resolve to the default OpenAI entry.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: LogFormatText,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the CHUNKKIT_ prefix and take precedence over
// existing values. Unparseable numbers are ignored.
//
// Supported variables:
//   - CHUNKKIT_PROVIDER: Provider name
//   - CHUNKKIT_TIER: Tier name
//   - CHUNKKIT_MODEL: Chat model override
//   - CHUNKKIT_ENCODING: Tokenizer override
//   - CHUNKKIT_CHUNK_SIZE: Requested chunk size
//   - CHUNKKIT_OVERLAP_WORDS: Overlap window
//   - CHUNKKIT_TRUNCATION: Truncation strategy
//   - CHUNKKIT_LOG_LEVEL: Log level
//   - CHUNKKIT_LOG_FORMAT: Log format
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("CHUNKKIT_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("CHUNKKIT_TIER"); v != "" {
		c.Tier = v
	}
	if v := os.Getenv("CHUNKKIT_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("CHUNKKIT_ENCODING"); v != "" {
		c.Encoding = v
	}
	if v := os.Getenv("CHUNKKIT_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ChunkSize = n
		}
	}
	if v := os.Getenv("CHUNKKIT_OVERLAP_WORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.OverlapWords = n
		}
	}
	if v := os.Getenv("CHUNKKIT_TRUNCATION"); v != "" {
		c.Truncation = v
	}
	if v := os.Getenv("CHUNKKIT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CHUNKKIT_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid. Names that do not parse
// are errors here, even though catalog lookups of unknown pairs fall back.
func (c *Config) Validate() error {
	if _, _, err := c.selection(); err != nil {
		return err
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("%w: chunk_size must be >= 0, got %d", ErrInvalidConfig, c.ChunkSize)
	}
	if c.OverlapWords < 0 {
		return fmt.Errorf("%w: overlap_words must be >= 0, got %d", ErrInvalidConfig, c.OverlapWords)
	}
	if c.Encoding != "" && !tokens.IsRegistered(c.Encoding) {
		return fmt.Errorf("%w: encoding %q is not registered", ErrInvalidConfig, c.Encoding)
	}
	if _, err := truncate.ParseStrategy(c.Truncation); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "", LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}

	capability, err := c.Capability()
	if err != nil {
		return err
	}
	if c.OverlapWords > 0 {
		size := capability.Profile.Effective(tokens.BudgetDefault)
		if c.ChunkSize > 0 {
			size = min(size, c.ChunkSize)
		}
		if c.OverlapWords > size {
			return fmt.Errorf("%w: overlap_words %d exceeds chunk size %d", ErrInvalidConfig, c.OverlapWords, size)
		}
	}
	return nil
}

// selection resolves the provider and tier, inferring them from Model
// when not set.
func (c *Config) selection() (model.Provider, model.Tier, error) {
	providerName := c.Provider
	if providerName == "" && c.Model != "" {
		if p, ok := model.ProviderForModel(c.Model); ok {
			providerName = string(p)
		}
	}
	provider, err := model.ParseProvider(providerName)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var tier model.Tier
	if c.Tier == "" && c.Model != "" {
		tier = model.TierForModel(c.Model)
	} else if tier, err = model.ParseTier(c.Tier); err != nil {
		return "", 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return provider, tier, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	return level, nil
}

// WithProvider returns a copy of the config with the specified provider.
func (c Config) WithProvider(provider string) Config {
	c.Provider = provider
	return c
}

// WithTier returns a copy of the config with the specified tier.
func (c Config) WithTier(tier string) Config {
	c.Tier = tier
	return c
}

// WithModel returns a copy of the config with the specified model.
func (c Config) WithModel(name string) Config {
	c.Model = name
	return c
}

// WithEncoding returns a copy of the config with the specified tokenizer.
func (c Config) WithEncoding(encoding string) Config {
	c.Encoding = encoding
	return c
}

// WithChunking returns a copy of the config with the specified chunk size
// and overlap window.
func (c Config) WithChunking(chunkSize, overlapWords int) Config {
	c.ChunkSize = chunkSize
	c.OverlapWords = overlapWords
	return c
}

// WithProfile returns a copy of the config with an additional catalog
// override.
func (c Config) WithProfile(p ProfileOverride) Config {
	// Copy to avoid modifying original
	profiles := make([]ProfileOverride, len(c.Profiles), len(c.Profiles)+1)
	copy(profiles, c.Profiles)
	c.Profiles = append(profiles, p)
	return c
}
